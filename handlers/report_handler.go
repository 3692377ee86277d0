package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aerozone/logger"
	"aerozone/models"
	"aerozone/views"
)

// RollupRenderer turns rollup rows into a PDF document.
type RollupRenderer func(ctx context.Context, rows []models.RollupRow, generatedAt time.Time) ([]byte, error)

type ReportHandler struct {
	Views   *views.Builder
	Render  RollupRenderer
	Timeout time.Duration
	Log     *logger.Logger
}

// RollupPDF streams the rollup view as a PDF attachment.
func (h *ReportHandler) RollupPDF(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Views.Rollup(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, fetchError)
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	now := time.Now()
	pdf, err := h.Render(ctx, rows, now)
	if err != nil {
		writeError(w, r, h.Log, err, "failed to generate PDF")
		return
	}

	filename := fmt.Sprintf("rollup_%d.pdf", now.Unix())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
