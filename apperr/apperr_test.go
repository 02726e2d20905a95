package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))

	t.Run("sees through wrapping", func(t *testing.T) {
		inner := InsufficientStock("Insufficient stock")
		wrapped := fmt.Errorf("checkout failed: %w", inner)
		assert.Equal(t, KindInsufficientStock, KindOf(wrapped))
	})

	t.Run("plain errors default to internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("driver exploded")))
		assert.Equal(t, KindInternal, KindOf(nil))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindGateway, "failed to reach payment gateway", cause)

	assert.Equal(t, "failed to reach payment gateway: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindGateway, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("x"), http.StatusBadRequest},
		{InsufficientStock("x"), http.StatusBadRequest},
		{EmptyCart("x"), http.StatusBadRequest},
		{InvalidState("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{Unauthorized("x"), http.StatusUnauthorized},
		{New(KindForbidden, "x"), http.StatusForbidden},
		{New(KindGateway, "x"), http.StatusBadGateway},
		{New(KindInternal, "x"), http.StatusInternalServerError},
		{errors.New("x"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, HTTPStatus(tc.err), "%v", tc.err)
	}
}
