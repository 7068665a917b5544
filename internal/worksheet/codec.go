package worksheet

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vocasheet/internal/llm"
)

// Decode validates raw against the level's schema and unmarshals it into
// the level's variant. A record whose shape belongs to another level
// fails validation.
func Decode(level Level, raw json.RawMessage) (Worksheet, error) {
	spec, err := SchemaFor(level)
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateJSON(spec.Schema, raw); err != nil {
		return nil, err
	}

	w, err := New(level)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, w); err != nil {
		return nil, fmt.Errorf("decode %s worksheet: %w", level, err)
	}

	if strings.TrimSpace(w.Base().Word) == "" {
		return nil, ErrMissingWord
	}
	return w, nil
}

// Encode serializes a worksheet. The level is not embedded in the payload;
// callers store it alongside.
func Encode(w Worksheet) (json.RawMessage, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode %s worksheet: %w", w.Level(), err)
	}
	return b, nil
}
