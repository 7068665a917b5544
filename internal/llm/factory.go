package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/vocasheet/internal/store"
)

// NewProvider creates a text Provider from configuration.
// It returns the provider wrapped with logging middleware. Text calls are
// attempted once; a failure surfaces to the caller as-is.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, eventRepo, logger), nil
}

// NewImageProvider creates an ImageProvider from configuration. It returns
// (nil, nil) when images are disabled or the text provider has no image
// counterpart. Image calls are logged but never retried: a quota error
// should degrade to "no image" quickly.
func NewImageProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (ImageProvider, error) {
	var base ImageProvider
	var err error

	name := cfg.resolvedImageProvider()
	switch name {
	case "none":
		return nil, nil
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "mock":
		return NewMockImageProvider(), nil
	default:
		return nil, fmt.Errorf("unknown image provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s image provider: %w", name, err)
	}

	return WithImageLogging(base, eventRepo, logger), nil
}
