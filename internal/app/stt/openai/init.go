package openai

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"voicenote/internal/app/stt"
	"voicenote/internal/config"
)

func init() {
	stt.Register("openai", createProvider)
}

func createProvider(cfg *config.Config) (stt.Transcriber, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
	}
	return NewRemoteTranscriber(openai.NewClient(cfg.OpenAIAPIKey)), nil
}
