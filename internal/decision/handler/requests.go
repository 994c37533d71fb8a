package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecisionRequest is the HTTP request body for POST /loan/decision.
// Only structural checks live here; business bounds are the validator's job.
type DecisionRequest struct {
	PersonalCode string `json:"personalCode" validate:"required,max=20"`
	LoanAmount   *int   `json:"loanAmount" validate:"required"`
	LoanPeriod   *int   `json:"loanPeriod" validate:"required"`
	Country      string `json:"country" validate:"required,max=20"`
}

// Validate checks required fields and normalises strings.
// Implements httputil.Validatable.
func (r *DecisionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.PersonalCode = strings.TrimSpace(r.PersonalCode)
	r.Country = strings.TrimSpace(r.Country)

	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return dErrors.Wrap(err, dErrors.CodeValidation, fieldMessage(fieldErrs[0]))
		}
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid request")
	}
	return nil
}

// ToDomain converts a validated request.
func (r *DecisionRequest) ToDomain() decision.Request {
	return decision.Request{
		PersonalCode: r.PersonalCode,
		LoanAmount:   *r.LoanAmount,
		LoanPeriod:   *r.LoanPeriod,
		Country:      decision.ParseCountry(r.Country),
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
