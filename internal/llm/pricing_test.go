package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected $0.75, got %v", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestLookupImageCost_DefaultImageModelsArePriced(t *testing.T) {
	defaults := DefaultConfig()
	models := []string{
		resolveModel(defaults.Gemini.ImageModel, geminiModels),
		resolveModel("imagen-fast", geminiModels),
		resolveModel(defaults.OpenAI.ImageModel, openaiModels),
		resolveModel("dall-e", openaiModels),
	}
	for _, m := range models {
		c, ok := LookupImageCost(m)
		if !ok {
			t.Errorf("no image pricing for %q", m)
			continue
		}
		if c <= 0 {
			t.Errorf("image price for %q = %v, want > 0", m, c)
		}
	}
}

func TestLookupImageCost_TextModelsAreNotImageModels(t *testing.T) {
	if _, ok := LookupImageCost("gpt-4o-mini"); ok {
		t.Fatal("text model must not have a per-image price")
	}
	if _, ok := LookupImageCost("mock"); ok {
		t.Fatal("mock model must not be priced")
	}
	if LookupCost("imagen-4.0-generate-001") != nil {
		t.Fatal("image model must not have token pricing")
	}
}
