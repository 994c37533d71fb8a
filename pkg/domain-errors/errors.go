// Package domainerrors carries coded errors across the domain/transport boundary.
//
// Domain code returns these (or types implementing Coder) so the HTTP layer can
// pick a status without knowing about individual business rules.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies an error for transport mapping.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_error"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error is a coded error with a client-safe message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DomainCode implements Coder.
func (e *Error) DomainCode() Code {
	return e.Code
}

// Coder is implemented by module-specific error types that map onto a Code.
type Coder interface {
	DomainCode() Code
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error that keeps err in the chain.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first Coder in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var c Coder
	if errors.As(err, &c) {
		return c.DomainCode()
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
