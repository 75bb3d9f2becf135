package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Court 1","extra":true}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Court 1", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)
}

func TestRespondInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	sentinel := errors.New("invalid input")

	assert.Equal(t, "name is required", Message(fmt.Errorf("%w: name is required", sentinel), sentinel, "fallback"))
	assert.Equal(t, "fallback", Message(sentinel, sentinel, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("other"), sentinel, "fallback"))
}
