// Package personalcode validates Estonian personal identification codes
// (isikukood) and derives birth date, gender and age from them.
//
// Format: GYYMMDDSSSC
//
//	G      century and gender (1-8)
//	YYMMDD birth date
//	SSS    serial number
//	C      check digit
package personalcode

import (
	"errors"
	"fmt"
	"time"
)

const codeLength = 11

var (
	ErrInvalidFormat     = errors.New("personal code must be 11 digits with a century digit 1-8")
	ErrInvalidChecksum   = errors.New("personal code check digit mismatch")
	ErrInvalidBirthDate  = errors.New("personal code encodes an impossible birth date")
	ErrBirthDateInFuture = errors.New("personal code birth date is after the reference time")
)

// Gender encoded by the first digit.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var (
	firstWeights  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	secondWeights = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// Estonian is a stateless parser for Estonian personal codes.
// The zero value is ready to use.
type Estonian struct{}

// NewEstonian returns an Estonian parser.
func NewEstonian() Estonian {
	return Estonian{}
}

// IsValid reports whether code is well-formed, encodes a real calendar date
// and carries the correct check digit.
func (Estonian) IsValid(code string) bool {
	_, err := parse(code)
	return err == nil
}

// BirthDate returns the birth date encoded in code, at UTC midnight.
func (Estonian) BirthDate(code string) (time.Time, error) {
	return parse(code)
}

// Gender returns the gender encoded in the first digit.
func (Estonian) Gender(code string) (Gender, error) {
	if _, err := parse(code); err != nil {
		return "", err
	}
	if digit(code[0])%2 == 0 {
		return GenderFemale, nil
	}
	return GenderMale, nil
}

// Age returns the number of whole years between the encoded birth date and at.
func (Estonian) Age(code string, at time.Time) (int, error) {
	born, err := parse(code)
	if err != nil {
		return 0, err
	}
	return yearsBetween(born, at)
}

func parse(code string) (time.Time, error) {
	if len(code) != codeLength {
		return time.Time{}, ErrInvalidFormat
	}
	for i := 0; i < codeLength; i++ {
		if code[i] < '0' || code[i] > '9' {
			return time.Time{}, ErrInvalidFormat
		}
	}
	g := digit(code[0])
	if g < 1 || g > 8 {
		return time.Time{}, ErrInvalidFormat
	}

	born, err := birthDate(code, g)
	if err != nil {
		return time.Time{}, err
	}
	if checkDigit(code) != digit(code[10]) {
		return time.Time{}, ErrInvalidChecksum
	}
	return born, nil
}

func birthDate(code string, g int) (time.Time, error) {
	century := 1800 + (g-1)/2*100
	year := century + number(code[1:3])
	month := number(code[3:5])
	day := number(code[5:7])

	born := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow; a mismatch means the date does not exist.
	if born.Year() != year || int(born.Month()) != month || born.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidBirthDate, year, month, day)
	}
	return born, nil
}

func checkDigit(code string) int {
	if sum := weightedMod11(code, firstWeights); sum < 10 {
		return sum
	}
	if sum := weightedMod11(code, secondWeights); sum < 10 {
		return sum
	}
	return 0
}

func weightedMod11(code string, weights [10]int) int {
	sum := 0
	for i, w := range weights {
		sum += digit(code[i]) * w
	}
	return sum % 11
}

func yearsBetween(born, at time.Time) (int, error) {
	at = at.UTC()
	if at.Before(born) {
		return 0, ErrBirthDateInFuture
	}
	years := at.Year() - born.Year()
	if at.Month() < born.Month() || (at.Month() == born.Month() && at.Day() < born.Day()) {
		years--
	}
	return years, nil
}

func digit(b byte) int {
	return int(b - '0')
}

func number(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + digit(s[i])
	}
	return n
}
