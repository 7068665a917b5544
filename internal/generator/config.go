package generator

import "time"

// Config controls timeouts and sampling for the remote calls.
type Config struct {
	// TextTimeout bounds the structured text call.
	TextTimeout time.Duration

	// ImageTimeout bounds the image call. Image generation is slower
	// than text, so this is usually the larger of the two.
	ImageTimeout time.Duration

	// MaxTokens is the token budget for the worksheet response.
	MaxTokens int

	// Temperature controls text output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		TextTimeout:  60 * time.Second,
		ImageTimeout: 90 * time.Second,
		MaxTokens:    2048,
		Temperature:  0.7,
	}
}
