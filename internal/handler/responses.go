package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	RequestID  string   `json:"requestId,omitempty"`
	Details    []string `json:"details,omitempty"`
}

// Helper functions for responding

// respondJSON encodes payload before committing the status, so an
// unencodable payload becomes a 500 rather than a truncated body
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response tagged with the request ID
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, details ...string) {
	respondJSON(w, status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		RequestID:  logger.GetRequestID(r.Context()),
		Details:    details,
	})
}

// respondServiceError logs err and sends the user-facing message for it
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, r, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgConcurrencyError     = "Your account was changed in another window. Please reload and try again."
	ErrMsgInvalidLineError     = "One or more lines are not recognised"
	ErrMsgLoginInUseError      = "That account is already linked to another user"
	ErrMsgUnknownProviderError = "Unknown sign-in provider"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict, ErrMsgConcurrencyError
	case errors.Is(err, domain.ErrInvalidLine):
		return http.StatusBadRequest, ErrMsgInvalidLineError
	case errors.Is(err, domain.ErrLoginInUse):
		return http.StatusConflict, ErrMsgLoginInUseError
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusNotFound, ErrMsgUnknownProviderError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDuplicateAlexaToken),
		errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
