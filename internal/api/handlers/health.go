package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicenote/internal/api/dto"
	"voicenote/internal/app/llm"
)

const serviceName = "VoiceNote Transcriber API"

// HealthHandler serves the liveness endpoints
type HealthHandler struct {
	prober llm.Prober
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(prober llm.Prober) *HealthHandler {
	return &HealthHandler{prober: prober}
}

// Root handles GET / with a constant healthy marker
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfo{
		Status:  "healthy",
		Service: serviceName,
	})
}

// Health handles GET /health. The recognizer reports the constant
// "loaded" marker; it is assumed healthy once loaded at startup. The
// structuring service is probed live and probe failures degrade to a
// status classification, never an error.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		API:     "healthy",
		Whisper: "loaded",
		Ollama:  string(h.prober.Probe(c.Request.Context())),
	})
}
