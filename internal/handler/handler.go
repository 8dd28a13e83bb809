package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quickbite/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Int("status", status).Msg(message)
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP status. Validation
// failures are the caller's fault; a failed order submission is the
// remote store's.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeMissingDeliveryDetails, model.ErrCodeEmptyCart, model.ErrCodeInvalidQuantity:
		status = http.StatusBadRequest
	case model.ErrCodeRestaurantNotFound:
		status = http.StatusNotFound
	case model.ErrCodeOrderSubmissionFailed:
		status = http.StatusBadGateway
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}
