package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, msg: "bad body"},
		{name: "bad request string", err: failure.BadRequestFromString("missing field"), code: http.StatusBadRequest, msg: "missing field"},
		{name: "unauthorized", err: failure.Unauthorized("invalid signature"), code: http.StatusUnauthorized, msg: "invalid signature"},
		{name: "internal", err: failure.InternalError(errors.New("gateway down")), code: http.StatusInternalServerError, msg: "gateway down"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, msg: "room not found"},
		{name: "conflict", err: failure.Conflict("room is not available"), code: http.StatusConflict, msg: "room is not available"},
		{name: "forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden, msg: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", failure.Conflict("taken"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.True(t, failure.Is(wrapped, http.StatusConflict))
	assert.False(t, failure.Is(wrapped, http.StatusNotFound))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
	assert.False(t, failure.Is(errors.New("boom"), http.StatusInternalServerError))
}
