package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Chaitanya2267/edulink/storage"
)

type FileHandler struct {
	Store          *storage.Store
	MaxUploadBytes int64
}

// POST /upload
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part in the request")
		return
	}
	defer file.Close()

	name := storage.SanitizeFilename(header.Filename)
	if name == "" {
		writeError(w, http.StatusBadRequest, "no selected file")
		return
	}

	if err := h.Store.Save(name, file); err != nil {
		log.Printf("Upload: saving %s: %v", name, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "uploaded",
		"filename": name,
	})
}

// GET /files
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	names, err := h.Store.List()
	if err != nil {
		log.Printf("ListFiles: reading upload dir: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"files": names})
}

// GET /download/{filename}
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	// The requested name gets the same sanitization as uploads, so the
	// resolved path stays inside the upload root.
	name := storage.SanitizeFilename(r.PathValue("filename"))
	if name == "" {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	f, err := h.Store.Open(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, f); err != nil {
		log.Printf("Download: streaming %s: %v", name, err)
	}
}
