package decision

import "strings"

// Country identifies the jurisdiction whose life expectancy bounds the
// customer's maximum age.
type Country string

const (
	CountryEstonia   Country = "ESTONIA"
	CountryLatvia    Country = "LATVIA"
	CountryLithuania Country = "LITHUANIA"
)

// ParseCountry normalises s; it does not check the country is known to a Policy.
func ParseCountry(s string) Country {
	return Country(strings.ToUpper(strings.TrimSpace(s)))
}

// Known reports whether c is a supported jurisdiction.
func (c Country) Known() bool {
	switch c {
	case CountryEstonia, CountryLatvia, CountryLithuania:
		return true
	}
	return false
}

func (c Country) String() string {
	return string(c)
}

// Request is a loan decision request. Amount is in euros, period in months.
type Request struct {
	PersonalCode string
	LoanAmount   int
	LoanPeriod   int
	Country      Country
}

// Decision is an approved loan offer.
type Decision struct {
	LoanAmount int
	LoanPeriod int

	// Segment and PeriodAdjusted describe how the offer was reached.
	// They are not part of the client response.
	Segment        Segment
	PeriodAdjusted bool
}
