package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// ValidationErrorResponse lists the offending fields by their JSON names
type ValidationErrorResponse struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	RequestID  string            `json:"requestId,omitempty"`
	Fields     map[string]string `json:"fields"`
}

// DecodeAndValidateRequest reads a JSON body into req and validates it.
// On error the response has already been written and the handler returns.
//
//	var req UpdateLinePreferencesRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Update line preferences"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, action string) error {
	log := logger.FromContext(r.Context()).With("action", action)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			log.Warn(LogMsgRequestTooLarge, "limit", tooLarge.Limit)
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
		case errors.Is(err, io.EOF):
			log.Warn(LogMsgRequestDecodeFailed, "error", err)
			respondError(w, r, http.StatusBadRequest, ErrMsgEmptyRequest)
		default:
			log.Warn(LogMsgRequestDecodeFailed, "error", err)
			respondError(w, r, http.StatusBadRequest, ErrMsgInvalidRequest)
		}
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(LogMsgRequestInvalid, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    ErrMsgInvalidRequestSummary,
			RequestID:  logger.GetRequestID(r.Context()),
			Fields:     fields,
		})
		return err
	}
	return nil
}

// parseOptionalURI parses raw as a URI reference. A missing or malformed
// value yields nil.
func parseOptionalURI(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}
