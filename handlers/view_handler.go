package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aerozone/logger"
	"aerozone/views"
)

const fetchError = "Error fetching data"

type ViewHandler struct {
	Views *views.Builder
	Log   *logger.Logger
}

func serveView[T any](h *ViewHandler, w http.ResponseWriter, r *http.Request, load func(context.Context) ([]T, error)) {
	rows, err := load(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, fetchError)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ViewHandler) Orders(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.OrderLines)
}

func (h *ViewHandler) Indent(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.IndentLines)
}

func (h *ViewHandler) Merged(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.Merged)
}

func (h *ViewHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.Rollup)
}

func (h *ViewHandler) GeoExport(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.GeoExport)
}

func (h *ViewHandler) RateExport(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, h.Views.RateExport)
}

// RateWorkbook serves the rate export as an XLSX download.
func (h *ViewHandler) RateWorkbook(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Views.RateExport(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, fetchError)
		return
	}

	f, err := views.RateWorkbook(rows)
	if err != nil {
		writeError(w, r, h.Log, err, "Error building workbook")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("rate_export_%d.xlsx", time.Now().Unix())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil && h.Log != nil {
		h.Log.Error("failed to write workbook", "error", err)
	}
}
