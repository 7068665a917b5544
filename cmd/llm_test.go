package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/vocasheet/internal/store"
)

func TestPrintCostReport_IncludesImageCost(t *testing.T) {
	models := []store.ModelUsage{
		{Model: "gpt-4o-mini", Calls: 2, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Model: "dall-e-3", Calls: 3},
	}
	images := []store.ImageUsage{{Model: "dall-e-3", Images: 3}}

	var buf bytes.Buffer
	printCostReport(&buf, models, images)
	out := buf.String()

	assert.Contains(t, out, "Images (USD)")
	assert.Contains(t, out, "$0.12", "3 images at $0.04")
	assert.Contains(t, out, "$0.87", "text $0.75 plus images $0.12")
	assert.NotContains(t, out, "Pricing unavailable")

	costTable := out[:strings.Index(out, "Images (USD)")]
	assert.NotContains(t, costTable, "dall-e-3", "image models are not billed per token")
}

func TestPrintCostReport_UnknownImageModelIsPartial(t *testing.T) {
	images := []store.ImageUsage{{Model: "mystery-image", Images: 1}}

	var buf bytes.Buffer
	printCostReport(&buf, nil, images)
	out := buf.String()

	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: mystery-image")
}

func TestPrintCostReport_NothingToReport(t *testing.T) {
	var buf bytes.Buffer
	printCostReport(&buf, nil, nil)
	assert.Empty(t, buf.String())
}
