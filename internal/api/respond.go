package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"nutriverse/internal/logger"
	"nutriverse/internal/shared"
	"nutriverse/internal/user"
)

type errorResponse struct {
	Error string `json:"error"`
	// Action hints the client at a recovery step, e.g. complete_profile.
	Action string `json:"action,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", zap.Error(err))
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Expected errors are
// client mistakes and are never logged at error level.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}

	var status int
	switch {
	case errors.Is(err, shared.ErrIncompleteProfile):
		status = http.StatusBadRequest
		resp.Action = "complete_profile"
	case errors.Is(err, shared.ErrNoCandidates):
		status = http.StatusUnprocessableEntity
		resp.Action = "adjust_profile"
	case errors.Is(err, shared.ErrInvalidDate), errors.Is(err, shared.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, shared.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, user.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		logger.Error("Request failed", zap.Error(err))
		status = http.StatusInternalServerError
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}
