// Package httputil centralises JSON encoding and error envelopes for handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
)

// maxBodyBytes caps request bodies; decision payloads are a few hundred bytes.
const maxBodyBytes = 1 << 16

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the generic {"error", "error_description"} envelope.
// Internal errors never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = err.Error()
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeJSON decodes a single JSON object from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dErrors.New(dErrors.CodeBadRequest, "request body is required")
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
	}
	return nil
}

// Validatable is implemented by request bodies that check and normalise
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// DecodeAndValidate decodes the body into a new T and runs its Validate.
func DecodeAndValidate[T any, PT interface {
	*T
	Validatable
}](r *http.Request) (*T, error) {
	req := new(T)
	if err := DecodeJSON(r, req); err != nil {
		return nil, err
	}
	if err := PT(req).Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
