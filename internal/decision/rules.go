package decision

import (
	"context"
	"errors"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision/ports"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
)

// Validator gates requests before the engine runs.
type Validator struct {
	policy   Policy
	identity ports.IdentityCodeParser
}

// NewValidator returns a Validator for policy backed by identity.
func NewValidator(policy Policy, identity ports.IdentityCodeParser) (*Validator, error) {
	if identity == nil {
		return nil, errors.New("identity code parser is required")
	}
	return &Validator{policy: policy, identity: identity}, nil
}

// Verify returns the first violated rule, or nil.
// Age is evaluated at requestcontext.Now(ctx).
// Rule priority (fail-fast):
//  1. Personal code validity
//  2. Age extraction
//  3. Country known and age within its window
//  4. Loan amount bounds
//  5. Loan period bounds
func (v *Validator) Verify(ctx context.Context, req Request) error {
	if !v.identity.IsValid(req.PersonalCode) {
		return ErrInvalidPersonalCode
	}

	age, err := v.identity.Age(req.PersonalCode, requestcontext.Now(ctx))
	if err != nil {
		return ageExtractionError(err)
	}

	if err := checkAge(v.policy, req.Country, age); err != nil {
		return err
	}
	if err := checkLoanAmount(v.policy, req.LoanAmount); err != nil {
		return err
	}
	return checkLoanPeriod(v.policy, req.LoanPeriod)
}

func checkAge(p Policy, c Country, age int) error {
	maxAge, ok := p.MaxAllowedAge(c)
	if !ok {
		return ErrInvalidCountry
	}
	if age < p.MinCustomerAge || age > maxAge {
		return ErrRestrictedAge
	}
	return nil
}

func checkLoanAmount(p Policy, amount int) error {
	if amount < p.MinLoanAmount || amount > p.MaxLoanAmount {
		return ErrInvalidLoanAmount
	}
	return nil
}

func checkLoanPeriod(p Policy, period int) error {
	if period < p.MinLoanPeriod || period > p.MaxLoanPeriod {
		return ErrInvalidLoanPeriod
	}
	return nil
}
