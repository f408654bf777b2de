package apierr

import (
	"fmt"
	"net/http"
)

// Error is the API error taxonomy carried from services up to handlers.
// Status decides the HTTP mapping; Code is the stable machine-readable tag.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Invalid marks missing or malformed client input.
func Invalid(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// NotFound marks a referenced entity that does not exist.
func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

// Upstream marks a graph-store or conversational-engine failure. The detail
// is logged server-side and never leaked to the caller.
func Upstream(code string, err error) *Error {
	return New(http.StatusBadGateway, code, err)
}
