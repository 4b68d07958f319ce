// Package respond provides utilities for sending HTTP responses in JSON format.
// Errors are written as a {"error": "..."} envelope whose status is chosen from
// the error kind; driver details never reach the client.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/observability/logging"
	"agency-articles/internal/observability/metrics"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error string `json:"error" example:"article not found"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes the envelope with msg as is.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorResponse{Error: msg})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind entity.Kind) int {
	switch kind {
	case entity.KindValidation:
		return http.StatusBadRequest
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindConstraintViolation:
		return http.StatusConflict
	case entity.KindBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Validation, not-found and
// constraint errors carry their own message; everything else is generic.
func Message(err error) string {
	switch entity.KindOf(err) {
	case entity.KindValidation:
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			return ve.Error()
		}
		return "invalid request"
	case entity.KindNotFound:
		var nf *entity.NotFoundError
		if errors.As(err, &nf) {
			return nf.Error()
		}
		return "not found"
	case entity.KindConstraintViolation:
		var ce *entity.ConstraintError
		if errors.As(err, &ce) {
			return ce.Error()
		}
		return "constraint violation"
	case entity.KindBackendUnavailable:
		return "backend unavailable"
	default:
		return "internal server error"
	}
}

type kindStatusKey struct{}

// WithKindStatus returns a context in which Fail records the status the error
// kind maps to, before any legacy remap. The pointer stays zero when Fail is
// never called.
func WithKindStatus(ctx context.Context) (context.Context, *int) {
	status := new(int)
	return context.WithValue(ctx, kindStatusKey{}, status), status
}

// Responder writes error envelopes. With Legacy set every failure is answered
// with 500, which is what clients of the first API version expect.
type Responder struct {
	Legacy bool
}

// Fail classifies err, logs it and writes the envelope.
func (rs Responder) Fail(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	kind := entity.KindOf(err)
	code := StatusFor(kind)
	if p, ok := r.Context().Value(kindStatusKey{}).(*int); ok {
		*p = code
	}
	if rs.Legacy {
		code = http.StatusInternalServerError
	}
	metrics.RecordErrorKind(kind.String())

	logger := logging.FromContext(r.Context())
	attrs := []any{
		slog.String("kind", kind.String()),
		slog.Int("code", code),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", SanitizeError(err)),
	}
	switch kind {
	case entity.KindInternal, entity.KindBackendUnavailable:
		logger.Error("request failed", attrs...)
	default:
		logger.Info("request rejected", attrs...)
	}

	Error(w, code, Message(err))
}
