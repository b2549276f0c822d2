package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// RemoteTranscriber transcribes audio with OpenAI's hosted whisper model.
// Requires OPENAI_API_KEY. Unlike the whisper-server binding, the API
// already returns a flat transcript, so no segment joining happens here.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a transcriber backed by the OpenAI audio API
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{
		client: client,
		model:  openai.Whisper1,
	}
}

// Transcript sends the audio file to the OpenAI audio API.
func (t *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: inputFilePath,
	})
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
