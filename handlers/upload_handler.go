package handlers

import (
	"errors"
	"io"
	"net/http"

	"aerozone/ingest"
	"aerozone/logger"
)

const defaultMaxUpload = 32 << 20

type UploadHandler struct {
	Ingestor       *ingest.Ingestor
	MaxUploadBytes int64
	Log            *logger.Logger
}

type uploadResponse struct {
	Message string `json:"message"`
	ingest.Result
}

// Upload accepts one spreadsheet in the multipart field "file".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUpload
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "File too large", http.StatusBadRequest)
			return
		}
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Could not read uploaded file", http.StatusBadRequest)
		return
	}

	res, err := h.Ingestor.Ingest(r.Context(), ingest.Upload{Filename: header.Filename, Data: data})
	if err != nil {
		writeError(w, r, h.Log, err, "Error processing file")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Message: "Upload finished", Result: res})
}
