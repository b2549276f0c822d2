//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"voicenote/internal/api/server"
	"voicenote/internal/api/services"
	"voicenote/internal/config"
)

// InitializeServer assembles the API server from configuration.
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		provideTranscriber,
		provideOllamaClient,
		provideStructurer,
		provideProber,
		provideRegistry,
		provideMetrics,
		services.NewNoteService,
		server.NewServer,
	)
	return nil, nil
}
