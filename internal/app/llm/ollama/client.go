// Package ollama binds the structuring contract to a locally hosted Ollama
// instance via its /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voicenote/internal/app/llm"
)

const (
	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	generateTimeout = 120 * time.Second
	probeTimeout    = 5 * time.Second

	// Titles used when the model ignores the JSON-output instruction or
	// omits a field. The generation engine is not guaranteed to honor the
	// format hint, so an undecodable reply is a fallback, never an error.
	fallbackTitle = "Voice Note Transcription"
	defaultTitle  = "Voice Note"
)

const promptTemplate = `You are a helpful assistant that converts voice note transcriptions into well-structured markdown documents.

Given the following transcription, please:
1. Create a clear, descriptive title for the content
2. Structure the content into a well-formatted markdown document with appropriate headings, bullet points, and sections
3. Fix any grammar or punctuation issues
4. Make it readable and professional

Transcription:
%s

Please respond with a JSON object containing:
- "title": A concise, descriptive title (without markdown formatting)
- "content": The full formatted markdown content (including the title as # heading)

Example response format:
{
  "title": "Meeting Notes - Project Update",
  "content": "# Meeting Notes - Project Update\n\n## Key Points\n\n- Point 1\n- Point 2\n\n## Action Items\n\n1. Task 1\n2. Task 2"
}
`

// Client talks to an Ollama instance. Safe for concurrent use.
type Client struct {
	baseURL        string
	model          string
	generateClient *http.Client
	probeClient    *http.Client
}

// generateRequest is the outbound wire contract of /api/generate
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format"`
}

// generateResponse is the envelope Ollama wraps its generation text in
type generateResponse struct {
	Response string `json:"response"`
}

// notePayload is the JSON shape the model is instructed to produce.
// Pointer fields distinguish absent from empty.
type notePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NewClient creates an Ollama client for the given base URL and model.
func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL:        baseURL,
		model:          model,
		generateClient: &http.Client{Timeout: generateTimeout},
		probeClient:    &http.Client{Timeout: probeTimeout},
	}
}

// Structure asks the model to reformat the transcript into titled markdown.
// A reply that cannot be decoded as the expected JSON shape is not an
// error; it degrades to a fallback document wrapping the raw reply.
func (c *Client) Structure(ctx context.Context, transcript string) (*llm.StructuredNote, error) {
	reqBody, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, transcript),
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.generateClient.Do(req)
	if err != nil {
		return nil, &llm.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.ServiceError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope generateResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &llm.ServiceError{StatusCode: resp.StatusCode, Body: "undecodable response envelope"}
	}

	return decodeNote(envelope.Response, transcript), nil
}

// decodeNote parses the generation text as {"title","content"}, applying
// the documented defaults and the prose fallback.
func decodeNote(text, transcript string) *llm.StructuredNote {
	var payload notePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return &llm.StructuredNote{
			Title:   fallbackTitle,
			Content: fmt.Sprintf("# %s\n\n%s", fallbackTitle, text),
		}
	}

	note := &llm.StructuredNote{
		Title:   defaultTitle,
		Content: transcript,
	}
	if payload.Title != nil {
		note.Title = *payload.Title
	}
	if payload.Content != nil {
		note.Content = *payload.Content
	}
	return note
}

// Probe checks the list-models endpoint with a short bounded wait. It
// never returns an error; failures degrade to a status classification.
func (c *Client) Probe(ctx context.Context) llm.DependencyStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return llm.StatusUnavailable
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return llm.StatusUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return llm.StatusHealthy
	}
	return llm.StatusUnhealthy
}
