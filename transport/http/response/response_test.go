package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lodge/shared/failure"
	"lodge/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "wrapped driver error is hidden",
			err:      fmt.Errorf("failed to get booking: %w", errors.New(`pq: invalid input syntax for type uuid: "b-1"`)),
			wantCode: http.StatusInternalServerError,
			wantMsg:  http.StatusText(http.StatusInternalServerError),
		},
		{
			name:     "explicit internal failure keeps its message",
			err:      failure.InternalError(errors.New("payment gateway unavailable")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "payment gateway unavailable",
		},
		{
			name:     "client failure keeps its message",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "wrapped client failure keeps its message",
			err:      fmt.Errorf("settle: %w", failure.Conflict("booking was modified")),
			wantCode: http.StatusConflict,
			wantMsg:  "settle: booking was modified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMsg, *body.Error)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}
