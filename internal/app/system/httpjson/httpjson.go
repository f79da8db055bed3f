// Package httpjson provides the JSON request/response helpers shared by the
// API feature handlers, including the mapping from the apperr taxonomy onto
// HTTP status codes.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; the largest legitimate payload is a
// quote with a full delegate list.
const maxBodyBytes = 1 << 20

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured error body: {"error": "..."}.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, map[string]string{"error": msg})
}

// Decode reads the request body into dst, rejecting unknown growth beyond
// maxBodyBytes.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// RespondError maps an apperr kind to an HTTP status and writes the error.
// Storage and unclassified errors are logged and surfaced as a generic 500
// so internal details never leak to the caller.
func RespondError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrInvalidStatus):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidLocation):
		Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperr.ErrRoutingUnavailable):
		Error(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Error(w, http.StatusForbidden, err.Error())
	default:
		logger.Error(op, zap.Error(err))
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
