package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itchan-dev/authd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status-coded error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.New("Nope", http.StatusConflict))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Nope\n", rr.Body.String())
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, io.ErrUnexpectedEOF)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		// internals are not leaked to the client
		assert.NotContains(t, rr.Body.String(), io.ErrUnexpectedEOF.Error())
	})
}

func TestDecodeValidate(t *testing.T) {
	type body struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	t.Run("valid body", func(t *testing.T) {
		var b body
		err := DecodeValidate(io.NopCloser(strings.NewReader(`{"email":"a@b.com","password":"x"}`)), &b)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", b.Email)
	})

	t.Run("invalid json", func(t *testing.T) {
		var b body
		err := DecodeValidate(io.NopCloser(strings.NewReader(`{invalid::`)), &b)
		assert.True(t, errors.IsStatus(err, http.StatusUnprocessableEntity))
	})

	t.Run("missing required field", func(t *testing.T) {
		var b body
		err := DecodeValidate(io.NopCloser(strings.NewReader(`{"email":"a@b.com"}`)), &b)
		assert.True(t, errors.IsStatus(err, http.StatusUnprocessableEntity))
	})
}
