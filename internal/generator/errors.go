package generator

import (
	"errors"
	"fmt"

	"github.com/abhisek/vocasheet/internal/worksheet"
)

// ErrInput marks a request the user can fix. No remote call was made.
var ErrInput = errors.New("invalid input")

var (
	// ErrEmptyWord is returned for a blank or whitespace-only word.
	ErrEmptyWord = fmt.Errorf("%w: word is empty", ErrInput)

	// ErrInvalidLevel is returned for a level outside 1-4.
	ErrInvalidLevel = fmt.Errorf("%w: unknown level", ErrInput)
)

// GenerationError reports a failed or unusable text generation. It is fatal
// to the request.
type GenerationError struct {
	Word  string
	Level worksheet.Level
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s worksheet for %q: %v", e.Level, e.Word, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
