package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"sliceql/internal/domain"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeCompileError maps compilation failures to HTTP statuses. Unknown-name
// and namespace-mismatch failures are request-validation errors; anything
// else is a server fault.
func (h *Handler) writeCompileError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.As(err, new(*domain.UnknownNameError)) || errors.As(err, new(*domain.NamespaceMismatchError)) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "compilation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
