package handlers

import (
	"context"
	"net/http"
	"time"

	"aerozone/db"
	"aerozone/logger"
)

type HealthHandler struct {
	DB  db.DB
	Log *logger.Logger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Ping(ctx); err != nil {
			if h.Log != nil {
				h.Log.Warn("health check failed", "error", err)
			}
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
