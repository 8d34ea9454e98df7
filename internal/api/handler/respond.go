// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bloglist/internal/api/types"
	"bloglist/internal/util"
)

// DefaultTimeout bounds request handling across the router.
const DefaultTimeout = 30 * time.Second

// respondWithJSON writes the payload as a JSON response with the given status.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps application errors to HTTP status codes.
// Authorization and validation failures arrive here before any repository
// mutation has been attempted; everything else falls through to a 500.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case util.IsError(err, util.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrDuplicateUsername):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case util.IsError(err, util.ErrUnauthorized), util.IsError(err, util.ErrInvalidToken):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "resource not found"
	case util.IsError(err, util.ErrPartialWrite):
		logger.Error("Partial ownership write", "error", err)
		message = "write could not be confirmed"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, types.ErrorResponse{Error: message})
}
