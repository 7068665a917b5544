package llm

import (
	"context"
	"errors"
)

// ErrNoImage is returned when the provider answered without an image,
// e.g. because every candidate was filtered.
var ErrNoImage = errors.New("no image generated")

// ImageProvider generates a single illustration from a text prompt.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)

	// ImageModelID returns the image model identifier.
	ImageModelID() string
}

// ImageRequest describes the image to generate.
type ImageRequest struct {
	Prompt string

	// MIMEType is the requested output encoding. Default: "image/png".
	MIMEType string
}

// ImageResponse holds the encoded image bytes.
type ImageResponse struct {
	Data     []byte
	MIMEType string
	Model    string
}

func (r ImageRequest) mimeType() string {
	if r.MIMEType == "" {
		return "image/png"
	}
	return r.MIMEType
}
