package handlers

import (
	"encoding/json"
	"net/http"

	"aerozone/apierr"
	"aerozone/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with plain text. Client errors carry their message;
// server errors are logged and answered with generic.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error, generic string) {
	status, code := apierr.StatusOf(err)
	if status < http.StatusInternalServerError {
		http.Error(w, err.Error(), status)
		return
	}
	if log != nil {
		log.Error(generic,
			"error", err,
			"code", code,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
		)
	}
	http.Error(w, generic, status)
}
