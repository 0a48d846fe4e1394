package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors, one per failure class. Every *Error unwraps to exactly
// one of these, so callers match with errors.Is.
var (
	// ErrNetwork: the transport failed before any server response arrived.
	ErrNetwork = errors.New("network error")
	// ErrService: the server responded, but with an unexpected status or a
	// shape the client cannot decode.
	ErrService = errors.New("service error")
	// ErrAuth: missing, invalid, or expired token, or bad credentials.
	ErrAuth = errors.New("unauthorized")
	// ErrValidation: the server rejected the submitted input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: unknown story or user id.
	ErrNotFound = errors.New("not found")
)

// Error is a classified API failure: the class it belongs to, a message fit
// for display, and the HTTP status if a response was received (0 when the
// failure happened below HTTP).
type Error struct {
	Kind    error
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%v (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

// classify maps a non-2xx HTTP status to its sentinel. 409 is how the
// service reports a duplicate username at signup, hence validation.
func classify(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrService
	}
}

func networkErr(err error) *Error {
	return &Error{Kind: ErrNetwork, Message: err.Error()}
}

func serviceErr(status int, msg string) *Error {
	return &Error{Kind: ErrService, Message: msg, Status: status}
}
