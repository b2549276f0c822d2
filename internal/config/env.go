package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, parsed from environment variables.
type Config struct {
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Ollama structuring service
	OllamaURL   string `env:"OLLAMA_URL" envDefault:"http://ollama:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"qwen2.5:7b"`

	// Speech recognizer provider selection
	STTProvider      string        `env:"STT_PROVIDER" envDefault:"whisper_server"`
	WhisperServerURL string        `env:"WHISPER_SERVER_URL" envDefault:"http://localhost:8080"`
	STTTimeout       time.Duration `env:"STT_TIMEOUT" envDefault:"5m"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5m"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

// LoadEnv loads environment variables from a .env file if one exists.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// InitializeConfig loads the .env file (when present) and parses configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return Load()
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
