package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"voicenote/internal/app/stt"
)

// Provider implements transcription via HTTP to a whisper-server instance
type Provider struct {
	config Config
	client *http.Client
}

// Config represents configuration for the whisper-server HTTP API
type Config struct {
	BaseURL       string        // Base URL of whisper-server (e.g., "http://localhost:8080")
	InferencePath string        // Inference endpoint path (default: "/inference")
	Timeout       time.Duration // Request timeout
	Language      string        // Optional language code
	Temperature   float64       // Decoding temperature (0.0-1.0)
}

// inferenceResponse is the verbose_json reply from whisper-server
type inferenceResponse struct {
	Text     string        `json:"text,omitempty"`
	Language string        `json:"language,omitempty"`
	Duration float64       `json:"duration,omitempty"`
	Segments []stt.Segment `json:"segments,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// NewProvider creates a new whisper-server HTTP provider
func NewProvider(config Config) *Provider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Minute
	}

	return &Provider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Transcript uploads the staged audio file and returns the transcript,
// joining the returned segments in their chronological order.
func (p *Provider) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy audio data: %w", err)
	}

	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return "", fmt.Errorf("failed to write response_format field: %w", err)
	}
	if p.config.Language != "" {
		if err := writer.WriteField("language", p.config.Language); err != nil {
			return "", fmt.Errorf("failed to write language field: %w", err)
		}
	}
	if p.config.Temperature > 0 {
		if err := writer.WriteField("temperature", fmt.Sprintf("%g", p.config.Temperature)); err != nil {
			return "", fmt.Errorf("failed to write temperature field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	url := p.config.BaseURL + p.config.InferencePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper-server request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read whisper-server response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper-server returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result inferenceResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode whisper-server response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("whisper-server error: %s", result.Error)
	}

	if len(result.Segments) > 0 {
		return stt.JoinSegments(result.Segments), nil
	}
	return result.Text, nil
}
