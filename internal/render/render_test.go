package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/vocasheet/internal/worksheet"
)

var common = worksheet.Common{
	Word:             "brave",
	KoreanMeaning:    "용감한",
	PartOfSpeech:     "adjective",
	IPA:              "/breɪv/",
	PhoneticSpelling: "",
}

func TestWorksheetSelectsLayoutByType(t *testing.T) {
	tests := []struct {
		name  string
		sheet worksheet.Worksheet
		want  []string
	}{
		{
			name: "beginner",
			sheet: &worksheet.Beginner{
				Common:           common,
				WordRepetitions:  [3]string{"brave", "brave", "brave"},
				ExampleSentences: []string{"The dog is brave."},
				ChangedSentence:  "The cat is brave.",
				UsageExamples:    "Fortune favors the brave.",
			},
			want: []string{"LEVEL 1", "1. Write the word 3 times", "The dog is brave.", "Say your word", "7. Find sentences"},
		},
		{
			name: "elementary",
			sheet: &worksheet.Elementary{
				Common:          common,
				Definition:      "Not afraid.",
				SimpleSentences: [2]string{"She is brave.", "Be brave!"},
			},
			want: []string{"LEVEL 2", "1. Definition (English)", "Not afraid.", "Be brave!"},
		},
		{
			name: "intermediate",
			sheet: &worksheet.Intermediate{
				Common:   common,
				Synonyms: []string{"bold", "courageous"},
				Antonyms: []string{"cowardly"},
			},
			want: []string{"LEVEL 3", "Short paragraph", "Synonyms: bold, courageous", "Antonyms: cowardly"},
		},
		{
			name: "advanced",
			sheet: &worksheet.Advanced{
				Common:    common,
				SelfCheck: "What is hard about this word?",
			},
			want: []string{"LEVEL 4", "Mini paragraph", "Self-check", "What is hard about this word?", "Antonyms: N/A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Worksheet(tt.sheet, nil, Options{Plain: true})
			assert.Contains(t, out, "WORD: brave")
			assert.Contains(t, out, "Korean Meaning: 용감한")
			assert.Contains(t, out, "Pronunciation: N/A")
			assert.Contains(t, out, "No Image")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestWorksheetSkipsEmptyOwnSentence(t *testing.T) {
	out := Worksheet(&worksheet.Beginner{Common: common}, nil, Options{Plain: true})
	idx := strings.Index(out, "4. Make your own simple sentence")
	assert.GreaterOrEqual(t, idx, 0)
	next := out[idx:]
	next = next[strings.Index(next, "\n")+1:]
	assert.True(t, strings.HasPrefix(strings.TrimSpace(next), "Your Turn:"))
}

func TestWorksheetWrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := Worksheet(&worksheet.Intermediate{Common: common, Definition: long}, nil, Options{Plain: true, Width: 40})
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "word word") {
			assert.LessOrEqual(t, ansi.StringWidth(line), 40)
		}
	}
}

func TestWorksheetPanicsOnUnknownVariant(t *testing.T) {
	assert.Panics(t, func() {
		Worksheet(nil, nil, Options{Plain: true})
	})
}

func TestImageLabel(t *testing.T) {
	assert.Equal(t, "No Image", ImageLabel(nil))
	assert.Equal(t, "No Image", ImageLabel(&worksheet.Image{}))
	assert.Equal(t, "Image: png, 2.0 kB", ImageLabel(&worksheet.Image{MIMEType: "image/png", Data: make([]byte, 2000)}))
}

func TestSummary(t *testing.T) {
	w := &worksheet.Elementary{Common: common}
	assert.Equal(t, "brave · L2 Elementary · 용감한", Summary(w, nil))
	assert.Equal(t, "brave · L2 Elementary · 용감한 · image", Summary(w, &worksheet.Image{Data: []byte{1}}))
}
