package whisper_server

import (
	"voicenote/internal/app/stt"
	"voicenote/internal/config"
)

func init() {
	stt.Register("whisper_server", createProvider)
}

func createProvider(cfg *config.Config) (stt.Transcriber, error) {
	return NewProvider(Config{
		BaseURL: cfg.WhisperServerURL,
		Timeout: cfg.STTTimeout,
	}), nil
}
