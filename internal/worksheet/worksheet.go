package worksheet

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrUnknownLevel is returned for levels outside 1-4.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrMissingWord is returned when a generated record has no headword.
	ErrMissingWord = errors.New("worksheet is missing the word")
)

// Worksheet is one generated worksheet. The concrete type is the level
// tag: *Beginner, *Elementary, *Intermediate or *Advanced.
type Worksheet interface {
	Level() Level
	Base() Common
	isWorksheet()
}

// Common holds the fields every level shares.
type Common struct {
	Word             string `json:"word"`
	KoreanMeaning    string `json:"koreanMeaning"`
	PartOfSpeech     string `json:"partOfSpeech"`
	IPA              string `json:"ipa"`
	PhoneticSpelling string `json:"phoneticSpelling"`
}

// Beginner is the level 1 worksheet: repetition and very simple sentences.
type Beginner struct {
	Common
	WordRepetitions   [3]string `json:"wordRepetitions"`
	ExampleSentences  []string  `json:"exampleSentences"`
	ChangedSentence   string    `json:"changedSentence"`
	OwnSimpleSentence string    `json:"ownSimpleSentence"`
	UsageExamples     string    `json:"usageExamples"`
}

// Elementary is the level 2 worksheet: definitions and basic grammar.
type Elementary struct {
	Common
	Definition         string    `json:"definition"`
	SimpleSentences    [2]string `json:"simpleSentences"`
	GrammarConversions []string  `json:"grammarConversions"`
	UsageContext       string    `json:"usageContext"`
	UsageExamples      string    `json:"usageExamples"`
}

// Intermediate is the level 3 worksheet: real-life usage and synonyms.
type Intermediate struct {
	Common
	Definition         string   `json:"definition"`
	ExampleSentence    string   `json:"exampleSentence"`
	RealLifeSentence   string   `json:"realLifeSentence"`
	ShortParagraph     string   `json:"shortParagraph"`
	UsageContext       string   `json:"usageContext"`
	Synonyms           []string `json:"synonyms"`
	Antonyms           []string `json:"antonyms"`
	GrammarConversions []string `json:"grammarConversions"`
}

// Advanced is the level 4 worksheet: nuance, longer writing and self-check.
type Advanced struct {
	Common
	Definition         string   `json:"definition"`
	RealLifeSentence   string   `json:"realLifeSentence"`
	GrammarConversions []string `json:"grammarConversions"`
	MiniParagraph      string   `json:"miniParagraph"`
	UsageContext       string   `json:"usageContext"`
	Synonyms           []string `json:"synonyms"`
	Antonyms           []string `json:"antonyms"`
	SelfCheck          string   `json:"selfCheck"`
}

func (*Beginner) Level() Level     { return LevelBeginner }
func (*Elementary) Level() Level   { return LevelElementary }
func (*Intermediate) Level() Level { return LevelIntermediate }
func (*Advanced) Level() Level     { return LevelAdvanced }

func (w *Beginner) Base() Common     { return w.Common }
func (w *Elementary) Base() Common   { return w.Common }
func (w *Intermediate) Base() Common { return w.Common }
func (w *Advanced) Base() Common     { return w.Common }

func (*Beginner) isWorksheet()     {}
func (*Elementary) isWorksheet()   {}
func (*Intermediate) isWorksheet() {}
func (*Advanced) isWorksheet()     {}

// New returns an empty worksheet of the variant for level.
func New(level Level) (Worksheet, error) {
	switch level {
	case LevelBeginner:
		return &Beginner{}, nil
	case LevelElementary:
		return &Elementary{}, nil
	case LevelIntermediate:
		return &Intermediate{}, nil
	case LevelAdvanced:
		return &Advanced{}, nil
	}
	return nil, ErrUnknownLevel
}

// NormalizeWord is the identity rule shared by the image cache and the
// saved worksheet store.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Image is an illustration generated for a word. The payload is opaque
// encoded image bytes.
type Image struct {
	Word     string `json:"word"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Empty reports whether the image carries no payload.
func (i Image) Empty() bool {
	return len(i.Data) == 0
}

// DataURL returns the image as a base64 data URL.
func (i Image) DataURL() string {
	mime := i.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Extension returns a file extension for the image MIME type.
func (i Image) Extension() string {
	switch i.MIMEType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
