// Package httputil centralizes JSON response writing so every handler
// produces the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "adev-backend/pkg/domain-errors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP status and a
// `{"error": "<message>"}` body. Internal errors get a generic message so
// driver details never leak to callers; everything else carries the
// caller-facing message the service attached.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Erro interno do servidor."

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal {
			message = de.Message
		}
	}

	WriteJSON(w, status, map[string]string{"error": message})
}
