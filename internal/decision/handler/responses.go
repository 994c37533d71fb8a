package handler

import "github.com/akasenomm/intern-decision-engine-backend/internal/decision"

// DecisionResponse is the HTTP response for POST /loan/decision.
// Either the loan fields or ErrorMessage is set; the others encode as null.
type DecisionResponse struct {
	LoanAmount   *int    `json:"loanAmount"`
	LoanPeriod   *int    `json:"loanPeriod"`
	ErrorMessage *string `json:"errorMessage"`
}

// FromDecision converts an approved decision.
func FromDecision(d *decision.Decision) *DecisionResponse {
	amount, period := d.LoanAmount, d.LoanPeriod
	return &DecisionResponse{LoanAmount: &amount, LoanPeriod: &period}
}

// FromMessage builds a rejection response.
func FromMessage(msg string) *DecisionResponse {
	return &DecisionResponse{ErrorMessage: &msg}
}
