package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/oijdod/hrms-backend-go/internal/handler/http/response"
	"github.com/oijdod/hrms-backend-go/internal/service/file"
)

type FileHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &FileHandlerImpl{fileService: fileService}
}

// Serve streams a stored object (avatars, resumes, attachments, payslips).
func (h *FileHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		response.NotFound(w, "File not found")
		return
	}

	content, err := h.fileService.Download(r.Context(), path)
	if errors.Is(err, file.ErrFileNotFound) {
		response.NotFound(w, "File not found")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer content.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	if _, err := io.Copy(w, content); err != nil {
		slog.Error("Serve file copy error", "error", err)
	}
}
