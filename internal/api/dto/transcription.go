package dto

// TranscribeResponse is the reply for a successful POST /transcribe
type TranscribeResponse struct {
	Success       bool   `json:"success"`
	Filename      string `json:"filename"`
	Transcription string `json:"transcription"`
	Title         string `json:"title"`
	Markdown      string `json:"markdown"`
}

// ServiceInfo is the constant healthy marker served on GET /
type ServiceInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthResponse reports process and dependency liveness on GET /health
type HealthResponse struct {
	API     string `json:"api"`
	Whisper string `json:"whisper"`
	Ollama  string `json:"ollama"`
}
