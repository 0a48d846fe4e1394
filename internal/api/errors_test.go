package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	e := &Error{Kind: ErrAuth, Message: "token rejected", Status: 401}
	assert.Equal(t, "unauthorized (status 401): token rejected", e.Error())

	e = &Error{Kind: ErrNetwork, Message: "connection refused"}
	assert.Equal(t, "network error: connection refused", e.Error())
}

func TestErrorUnwrapsToSentinel(t *testing.T) {
	e := &Error{Kind: ErrNotFound, Message: "gone", Status: 404}
	assert.True(t, errors.Is(e, ErrNotFound))
	assert.False(t, errors.Is(e, ErrAuth))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrAuth, classify(http.StatusUnauthorized))
	assert.Equal(t, ErrAuth, classify(http.StatusForbidden))
	assert.Equal(t, ErrValidation, classify(http.StatusBadRequest))
	assert.Equal(t, ErrValidation, classify(http.StatusConflict))
	assert.Equal(t, ErrValidation, classify(http.StatusUnprocessableEntity))
	assert.Equal(t, ErrNotFound, classify(http.StatusNotFound))
	assert.Equal(t, ErrService, classify(http.StatusBadGateway))
}

func TestErrorMessageFallbacks(t *testing.T) {
	assert.Equal(t, "nope", errorMessage([]byte(`{"error":{"message":"nope"}}`)))
	assert.Equal(t, "Conflict", errorMessage([]byte(`{"error":{"title":"Conflict"}}`)))
	assert.Equal(t, "plain", errorMessage([]byte(`{"message":"plain"}`)))
	assert.Equal(t, "raw body", errorMessage([]byte("raw body")))
	assert.Equal(t, "no error detail in response", errorMessage(nil))
}
