// Package app wires the application graph: configuration in, a ready
// HTTP server out.
package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"voicenote/internal/app/llm"
	"voicenote/internal/app/llm/ollama"
	"voicenote/internal/app/stt"
	"voicenote/internal/config"
	"voicenote/internal/metrics"
)

// provideTranscriber builds the recognizer selected by STT_PROVIDER.
// The handle is constructed once and shared read-only by all requests.
func provideTranscriber(cfg *config.Config) (stt.Transcriber, error) {
	return stt.New(cfg)
}

func provideOllamaClient(cfg *config.Config) *ollama.Client {
	return ollama.NewClient(cfg.OllamaURL, cfg.OllamaModel)
}

func provideStructurer(client *ollama.Client) llm.Structurer {
	return client
}

func provideProber(client *ollama.Client) llm.Prober {
	return client
}

func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(registry)
}
