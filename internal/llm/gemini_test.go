package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"imagen", "imagen-4.0-generate-001"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": "integer"},
			"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"name", "age"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["name"].Type != "STRING" {
		t.Fatalf("expected STRING for name, got %s", schema.Properties["name"].Type)
	}
	if schema.Properties["age"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for age, got %s", schema.Properties["age"].Type)
	}
	if len(schema.Properties["grade"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["grade"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchemaTupleBounds(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"wordRepetitions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 3,
				"maxItems": 3,
			},
			"synonyms": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}

	schema := buildGeminiSchema(def)

	reps := schema.Properties["wordRepetitions"]
	if reps.MinItems == nil || *reps.MinItems != 3 {
		t.Fatalf("expected minItems 3, got %v", reps.MinItems)
	}
	if reps.MaxItems == nil || *reps.MaxItems != 3 {
		t.Fatalf("expected maxItems 3, got %v", reps.MaxItems)
	}
	if schema.Properties["synonyms"].MinItems != nil {
		t.Fatal("expected no minItems for an open list")
	}
}

func TestGeminiProvider_ImageModelID(t *testing.T) {
	p := &GeminiProvider{model: "gemini-2.5-flash", imageModel: "imagen-4.0-generate-001"}
	if p.ModelID() != "gemini-2.5-flash" {
		t.Fatalf("expected text model, got %q", p.ModelID())
	}
	if p.ImageModelID() != "imagen-4.0-generate-001" {
		t.Fatalf("expected image model, got %q", p.ImageModelID())
	}
}
