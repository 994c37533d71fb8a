package decision

import (
	"errors"

	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
)

// Reason identifies which rule rejected a request.
type Reason string

const (
	ReasonInvalidPersonalCode Reason = "invalid_personal_code"
	ReasonInvalidAge          Reason = "invalid_age"
	ReasonInvalidCountry      Reason = "invalid_country"
	ReasonInvalidLoanAmount   Reason = "invalid_loan_amount"
	ReasonInvalidLoanPeriod   Reason = "invalid_loan_period"
	ReasonNoValidLoan         Reason = "no_valid_loan"
)

// Category sentinels. Every *Error matches exactly one of them via errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoValidLoan  = errors.New("no valid loan")
)

// Rule violations. Messages are shown to clients verbatim.
var (
	ErrInvalidPersonalCode = &Error{Reason: ReasonInvalidPersonalCode, Message: "Invalid personal ID code!"}
	ErrRestrictedAge       = &Error{Reason: ReasonInvalidAge, Message: "Restricted age"}
	ErrInvalidCountry      = &Error{Reason: ReasonInvalidCountry, Message: "Invalid country!"}
	ErrInvalidLoanAmount   = &Error{Reason: ReasonInvalidLoanAmount, Message: "Invalid loan amount!"}
	ErrInvalidLoanPeriod   = &Error{Reason: ReasonInvalidLoanPeriod, Message: "Invalid loan period!"}
	ErrDebtor              = &Error{Reason: ReasonNoValidLoan, Message: "No valid loan for debtor"}
	ErrNoLoanWithinPeriod  = &Error{Reason: ReasonNoValidLoan, Message: "No valid loan found!"}
)

const ageExtractionMessage = "Could not extract age from personal code"

// Error is a rejected decision request.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the category sentinels and any *Error with the same Reason and
// Message. Variants sharing a Reason stay distinguishable.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNoValidLoan:
		return e.Reason == ReasonNoValidLoan
	case ErrInvalidInput:
		return e.Reason != ReasonNoValidLoan
	}
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason && t.Message == e.Message
}

// DomainCode maps the rejection onto the shared transport codes.
func (e *Error) DomainCode() dErrors.Code {
	if e.Reason == ReasonNoValidLoan {
		return dErrors.CodeNotFound
	}
	return dErrors.CodeValidation
}

func ageExtractionError(err error) *Error {
	return &Error{Reason: ReasonInvalidAge, Message: ageExtractionMessage, Err: err}
}

// ReasonOf returns the Reason carried by err, or "" when err is not a rejection.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
