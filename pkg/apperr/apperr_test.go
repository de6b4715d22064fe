package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("wallet not found"), http.StatusNotFound},
		{Validation("invalid amount"), http.StatusBadRequest},
		{InvalidState("already processed"), http.StatusBadRequest},
		{Forbidden("access denied"), http.StatusForbidden},
		{Storage("failed to save", errors.New("conn reset")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to request withdrawal: %w", Validation("insufficient balance"))

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "insufficient balance", Message(err))
}

func TestIs(t *testing.T) {
	sentinel := NotFound("wallet not found")
	err := fmt.Errorf("lookup: %w", NotFound("wallet not found"))

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, NotFound("seller not found")))
	assert.False(t, errors.Is(err, Validation("wallet not found")))
}

func TestStorage_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := Storage("failed to load wallet", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "pq: relation does not exist")
	assert.Equal(t, "internal error", Message(err))
	assert.Equal(t, "storage", KindOf(err).String())
}
