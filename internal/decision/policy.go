package decision

import (
	"errors"
	"fmt"
	"maps"
)

// Policy holds the jurisdiction constants every decision is evaluated against.
// Build it with NewPolicy or DefaultPolicy; it is not mutated afterwards.
type Policy struct {
	MinLoanAmount  int
	MaxLoanAmount  int
	MinLoanPeriod  int
	MaxLoanPeriod  int
	MinCustomerAge int

	Segment1Modifier int
	Segment2Modifier int
	Segment3Modifier int

	lifeExpectancy map[Country]int
}

// DefaultPolicy returns the production constants.
func DefaultPolicy() Policy {
	return Policy{
		MinLoanAmount:    2000,
		MaxLoanAmount:    10000,
		MinLoanPeriod:    12,
		MaxLoanPeriod:    60,
		MinCustomerAge:   18,
		Segment1Modifier: 100,
		Segment2Modifier: 300,
		Segment3Modifier: 1000,
		lifeExpectancy: map[Country]int{
			CountryEstonia:   76,
			CountryLatvia:    73,
			CountryLithuania: 75,
		},
	}
}

// NewPolicy copies base, installs lifeExpectancy and validates the result.
func NewPolicy(base Policy, lifeExpectancy map[Country]int) (Policy, error) {
	p := base
	p.lifeExpectancy = maps.Clone(lifeExpectancy)
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Validate reports inconsistent bounds or modifiers.
func (p Policy) Validate() error {
	var errs []error
	if p.MinLoanAmount <= 0 || p.MinLoanAmount > p.MaxLoanAmount {
		errs = append(errs, fmt.Errorf("loan amount bounds [%d, %d] are invalid", p.MinLoanAmount, p.MaxLoanAmount))
	}
	if p.MinLoanPeriod <= 0 || p.MinLoanPeriod > p.MaxLoanPeriod {
		errs = append(errs, fmt.Errorf("loan period bounds [%d, %d] are invalid", p.MinLoanPeriod, p.MaxLoanPeriod))
	}
	if p.MinCustomerAge < 0 {
		errs = append(errs, fmt.Errorf("minimum customer age %d is negative", p.MinCustomerAge))
	}
	for seg, m := range map[Segment]int{Segment1: p.Segment1Modifier, Segment2: p.Segment2Modifier, Segment3: p.Segment3Modifier} {
		switch {
		case m <= 0:
			errs = append(errs, fmt.Errorf("%s modifier must be positive, got %d", seg, m))
		case m*p.MinLoanPeriod < p.MinLoanAmount && p.MinLoanAmount%m != 0:
			// Widened periods are floored, so the offer would land below the minimum.
			errs = append(errs, fmt.Errorf("%s modifier %d must divide minimum loan amount %d", seg, m, p.MinLoanAmount))
		}
	}
	if len(p.lifeExpectancy) == 0 {
		errs = append(errs, errors.New("at least one country life expectancy is required"))
	}
	for c, years := range p.lifeExpectancy {
		switch {
		case !c.Known():
			errs = append(errs, fmt.Errorf("life expectancy for unsupported country %q", c))
		case years <= 0:
			errs = append(errs, fmt.Errorf("life expectancy %s=%d is invalid", c, years))
		case years-p.MaxLoanPeriod/12 < p.MinCustomerAge:
			errs = append(errs, fmt.Errorf("life expectancy %s=%d leaves no eligible age above %d", c, years, p.MinCustomerAge))
		}
	}
	return errors.Join(errs...)
}

// LifeExpectancy returns the configured life expectancy for c.
func (p Policy) LifeExpectancy(c Country) (int, bool) {
	years, ok := p.lifeExpectancy[c]
	return years, ok
}

// Countries returns a copy of the life expectancy table.
func (p Policy) Countries() map[Country]int {
	return maps.Clone(p.lifeExpectancy)
}

// MaxAllowedAge is the oldest age accepted in c: life expectancy minus the
// longest loan period in whole years.
func (p Policy) MaxAllowedAge(c Country) (int, bool) {
	years, ok := p.LifeExpectancy(c)
	if !ok {
		return 0, false
	}
	return years - p.MaxLoanPeriod/12, true
}

// Modifier returns the credit modifier for seg. Debtors have none.
func (p Policy) Modifier(seg Segment) (int, bool) {
	switch seg {
	case Segment1:
		return p.Segment1Modifier, true
	case Segment2:
		return p.Segment2Modifier, true
	case Segment3:
		return p.Segment3Modifier, true
	default:
		return 0, false
	}
}
