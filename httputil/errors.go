package httputil

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "dishdash/errors"
)

// ErrorDetails is the body returned with every non-2xx response.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
	Message   string    `json:"message"`
	ErrorCode string    `json:"errorCode"`
	RequestID string    `json:"requestId,omitempty"`
}

var statusByCode = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeNotFound:         http.StatusNotFound,
	apperrors.ErrCodeConflict:         http.StatusConflict,
	apperrors.ErrCodeBadRequest:       http.StatusBadRequest,
	apperrors.ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	apperrors.ErrCodeRateLimited:      http.StatusTooManyRequests,
	apperrors.ErrCodeInternal:         http.StatusInternalServerError,
}

// StatusFor maps an error code to its HTTP status, defaulting to 500.
func StatusFor(code apperrors.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError translates err into a status and structured body. Messages of
// uncategorized errors are logged but not exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	message := "internal server error"

	var se *apperrors.StructuredError
	if errors.As(err, &se) && code != apperrors.ErrCodeInternal {
		message = se.Message
	} else {
		slog.Error("request failed",
			slog.String("requestId", RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}

	WriteErrorCode(w, r, StatusFor(code), code, message)
}

// WriteErrorCode writes an error body for an explicit status and code.
func WriteErrorCode(w http.ResponseWriter, r *http.Request, status int, code apperrors.ErrorCode, message string) {
	RespondJSON(w, status, ErrorDetails{
		Timestamp: time.Now().UTC(),
		Details:   "uri=" + r.URL.Path,
		Message:   message,
		ErrorCode: string(code),
		RequestID: RequestIDFromContext(r.Context()),
	})
}
