package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"rulebook/internal/middleware"
	"rulebook/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
// The body is encoded before any header is sent, so an encoding failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, status int, data any, logger zerolog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + model.ErrCodeInternalError + `","message":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Warn().Err(err).Msg("failed to write response")
	}
}

// writeError maps err to a status code and writes it as an ErrorResponse.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status := statusFor(err)
	requestID := middleware.RequestIDFromContext(r.Context())

	resp := model.ErrorResponse{
		Error:         model.ErrCodeInternalError,
		Message:       "Internal server error",
		CorrelationID: requestID,
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		resp.Error = domainErr.Code
		resp.Message = domainErr.Message
	}

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("code", resp.Error).
		Str("request_id", requestID).
		Msg("handler error")

	writeJSON(w, status, resp, logger)
}

// statusFor maps domain error codes to HTTP status codes. Any other error is
// an internal failure.
func statusFor(err error) int {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case model.ErrCodeInvalidJSON, model.ErrCodeInvalidQuery:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// Health handles GET /health.
func Health(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"}, logger)
	}
}

// NotFound handles requests that match no route.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, model.NewDomainError(model.ErrCodeNotFound, "Route not found"), logger)
	}
}
