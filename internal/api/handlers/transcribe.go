package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "voicenote/internal/api/errors"
	"voicenote/internal/api/middleware"
	"voicenote/internal/api/services"
)

// TranscribeHandler handles the audio upload endpoint
type TranscribeHandler struct {
	service services.NoteService
}

// NewTranscribeHandler creates a new transcribe handler
func NewTranscribeHandler(service services.NoteService) *TranscribeHandler {
	return &TranscribeHandler{service: service}
}

// Transcribe handles POST /transcribe.
// Accepts one multipart audio file, transcribes it and structures the
// transcript into titled markdown.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, apierrors.NewValidationError("No file uploaded", nil))
		return
	}
	defer file.Close()

	response, err := h.service.TranscribeUpload(c.Request.Context(), header.Filename, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
