package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the text provider.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	// ImageProvider selects the image provider.
	// Values: "gemini", "openai", "mock", "none". Empty follows Provider
	// when that provider can generate images.
	ImageProvider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single text request. Default: 60s.
	Timeout time.Duration

	// ImageTimeout bounds a single image request. Default: 90s.
	ImageTimeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string
	Model      string // Default: "gpt-4o-mini"
	ImageModel string // Default: "dall-e-3"
	BaseURL    string // Optional. Override for OpenRouter or compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey     string
	Model      string // Default: "gemini-flash"
	ImageModel string // Default: "imagen"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		Gemini: GeminiConfig{
			Model:      "gemini-flash",
			ImageModel: "imagen",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Timeout:      60 * time.Second,
		ImageTimeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("VOCASHEET_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if p := os.Getenv("VOCASHEET_IMAGE_PROVIDER"); p != "" {
		cfg.ImageProvider = p
	}

	if k := os.Getenv("VOCASHEET_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("VOCASHEET_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("VOCASHEET_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("VOCASHEET_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if m := os.Getenv("VOCASHEET_OPENAI_IMAGE_MODEL"); m != "" {
		cfg.OpenAI.ImageModel = m
	}
	if u := os.Getenv("VOCASHEET_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("VOCASHEET_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("VOCASHEET_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("VOCASHEET_GEMINI_IMAGE_MODEL"); m != "" {
		cfg.Gemini.ImageModel = m
	}

	if k := os.Getenv("VOCASHEET_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("VOCASHEET_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if d, err := time.ParseDuration(os.Getenv("VOCASHEET_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if d, err := time.ParseDuration(os.Getenv("VOCASHEET_IMAGE_TIMEOUT")); err == nil && d > 0 {
		cfg.ImageTimeout = d
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// LoadConfig returns the VOCASHEET_* configuration when it validates,
// otherwise the first provider found by DiscoverConfig.
func LoadConfig() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if discovered, ok := DiscoverConfig(); ok {
		return discovered, nil
	}
	return Config{}, err
}

// Validate checks that the selected providers have their API keys set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("VOCASHEET_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("VOCASHEET_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("VOCASHEET_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("VOCASHEET_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}

	switch c.ImageProvider {
	case "", "none", "mock":
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("VOCASHEET_GEMINI_API_KEY is required for gemini images")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("VOCASHEET_OPENAI_API_KEY is required for openai images")
		}
	default:
		return fmt.Errorf("unknown image provider: %q", c.ImageProvider)
	}
	return nil
}

// resolvedImageProvider returns the image provider name after applying the
// "follow the text provider" default.
func (c Config) resolvedImageProvider() string {
	if c.ImageProvider != "" {
		return c.ImageProvider
	}
	switch c.Provider {
	case "gemini", "openai", "mock":
		return c.Provider
	}
	return "none"
}
