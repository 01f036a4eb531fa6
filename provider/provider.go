package provider

import (
	"context"
	"errors"

	"github.com/arash-karimi/moodreel/config"
	"github.com/arash-karimi/moodreel/models"
	openai_provider "github.com/arash-karimi/moodreel/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	OpenAI    Client = "openai"
	Anthropic Client = "anthropic"
	Gemini    Client = "gemini"
)

// Provider is the interface that all LLM implementations must satisfy
type Provider interface {
	// RankMovies asks the model for up to 5 mood-fit picks out of the
	// candidate list. A reply that cannot be parsed is not an error: it
	// comes back as the RawFallback variant of RankResult. Transport
	// failures (timeout, non-2xx) do return an error.
	RankMovies(ctx context.Context, mood string, candidates []models.Movie) (models.RankResult, error)
}

// NewProvider creates a new LLM client based on the provided configuration
func NewProvider(client Client, cfg config.LLMConfig) (Provider, error) {
	switch client {
	case OpenAI:
		if cfg.APIKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return openai_provider.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil
	case Anthropic:
		return nil, errors.New("anthropic client not implemented yet")
	case Gemini:
		return nil, errors.New("gemini client not implemented yet")
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
