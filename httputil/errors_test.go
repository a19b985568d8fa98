package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "dishdash/errors"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(apperrors.ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(apperrors.ErrCodeConflict))
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperrors.ErrCodeBadRequest))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFor(apperrors.ErrCodeMethodNotAllowed))
	assert.Equal(t, http.StatusTooManyRequests, StatusFor(apperrors.ErrCodeRateLimited))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(apperrors.ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("SOMETHING_ELSE"))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("lookup: %w", apperrors.NotFound("Restaurant", "id", 5)),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Restaurant not found with id : 5",
		},
		{
			name:       "conflict",
			err:        apperrors.AlreadyExists("Restaurant", "website", "a.example"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantMsg:    "RESTAURANT already exists with website: a.example",
		},
		{
			name:       "uncategorized hides cause",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/restaurants/5", nil)
			req = req.WithContext(WithRequestID(req.Context(), "req-1"))
			rec := httptest.NewRecorder()

			WriteError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorDetails
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.ErrorCode)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "uri=/api/restaurants/5", body.Details)
			assert.Equal(t, "req-1", body.RequestID)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
