package worksheet

import (
	"fmt"

	"github.com/abhisek/vocasheet/internal/llm"
)

// FieldKind is the JSON shape of a worksheet field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindList
	KindTuple
)

// Field describes one field the text model must fill in.
type Field struct {
	Name        string
	Kind        FieldKind
	Arity       int // KindTuple only
	Description string
}

// Spec is the registry entry for a level. The same Spec drives the text
// request and the shape the record is decoded into.
type Spec struct {
	Level  Level
	Intent string
	Fields []Field
	Schema *llm.Schema
}

var commonFields = []Field{
	{Name: "word", Kind: KindString, Description: "The English word being studied."},
	{Name: "koreanMeaning", Kind: KindString, Description: "The Korean translation of the word."},
	{Name: "partOfSpeech", Kind: KindString, Description: "The part of speech (e.g., noun, verb, adjective)."},
	{Name: "ipa", Kind: KindString, Description: "The International Phonetic Alphabet (IPA) representation of the word, e.g. /əˈmeɪzɪŋ/. Empty if unknown."},
	{Name: "phoneticSpelling", Kind: KindString, Description: "A simple phonetic spelling guide for Korean speakers, e.g. 'uh-may-zing'. Empty if unknown."},
}

var levelFields = map[Level]struct {
	intent string
	fields []Field
}{
	LevelBeginner: {
		intent: "Generate a beginner (Level 1) vocabulary worksheet. Focus on repetition and very simple sentences. Include the IPA and a simple phonetic spelling.",
		fields: []Field{
			{Name: "wordRepetitions", Kind: KindTuple, Arity: 3, Description: "The word repeated exactly 3 times."},
			{Name: "exampleSentences", Kind: KindList, Description: "Two very simple example sentences."},
			{Name: "changedSentence", Kind: KindString, Description: "One of the example sentences, slightly modified (e.g., changed subject)."},
			{Name: "ownSimpleSentence", Kind: KindString, Description: "A new, very simple sentence a student could create."},
			{Name: "usageExamples", Kind: KindString, Description: "A short quote or proverb using the word."},
		},
	},
	LevelElementary: {
		intent: "Generate an elementary (Level 2) vocabulary worksheet. Introduce definitions and basic grammar conversion. Include the IPA and a simple phonetic spelling.",
		fields: []Field{
			{Name: "definition", Kind: KindString, Description: "A simple English definition of the word."},
			{Name: "simpleSentences", Kind: KindTuple, Arity: 2, Description: "Two simple sentences a student can make."},
			{Name: "grammarConversions", Kind: KindList, Description: "Four sentences showing grammatical conversions (e.g., past tense, future tense, question, negative)."},
			{Name: "usageContext", Kind: KindString, Description: "A brief explanation of situations where the word is commonly used."},
			{Name: "usageExamples", Kind: KindString, Description: "A proverb, quote, or textbook-style sentence using the word."},
		},
	},
	LevelIntermediate: {
		intent: "Generate an intermediate (Level 3) vocabulary worksheet. Focus on real-life application, synonyms, and paragraph context. Include the IPA and a simple phonetic spelling.",
		fields: []Field{
			{Name: "definition", Kind: KindString, Description: "A clear English definition of the word."},
			{Name: "exampleSentence", Kind: KindString, Description: "A good example sentence."},
			{Name: "realLifeSentence", Kind: KindString, Description: "A sentence demonstrating the word in a daily life situation."},
			{Name: "shortParagraph", Kind: KindString, Description: "A short conversational paragraph (3-5 sentences) using the word naturally."},
			{Name: "usageContext", Kind: KindString, Description: "Description of where or when this word can be used."},
			{Name: "synonyms", Kind: KindList, Description: "A list of 2-3 common synonyms."},
			{Name: "antonyms", Kind: KindList, Description: "A list of 1-2 common antonyms."},
			{Name: "grammarConversions", Kind: KindList, Description: "Two sentences showing grammatical conversions (e.g., changing tense, active/passive voice)."},
		},
	},
	LevelAdvanced: {
		intent: "Generate an advanced (Level 4) vocabulary worksheet. Include nuanced usage, a longer paragraph, and self-reflection prompts. Include the IPA and a simple phonetic spelling.",
		fields: []Field{
			{Name: "definition", Kind: KindString, Description: "A detailed English definition."},
			{Name: "realLifeSentence", Kind: KindString, Description: "A sentence depicting a realistic, daily life situation."},
			{Name: "grammarConversions", Kind: KindList, Description: "Two sentences converting the original based on grammar (e.g., complex tenses, conditional)."},
			{Name: "miniParagraph", Kind: KindString, Description: "A mini-paragraph (at least 5 sentences) in a speech-like style using the word."},
			{Name: "usageContext", Kind: KindString, Description: "Explanation of where this word can be used."},
			{Name: "synonyms", Kind: KindList, Description: "A list of 3-4 synonyms, including nuanced ones."},
			{Name: "antonyms", Kind: KindList, Description: "A list of 2-3 antonyms."},
			{Name: "selfCheck", Kind: KindString, Description: "Prompts for self-check: e.g., difficulties, ways to remember, related proverbs or quotes."},
		},
	},
}

var specs = buildSpecs()

// SchemaFor returns the registry entry for level.
func SchemaFor(level Level) (Spec, error) {
	s, ok := specs[level]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
	return s, nil
}

func buildSpecs() map[Level]Spec {
	out := make(map[Level]Spec, len(levelFields))
	for level, lf := range levelFields {
		fields := make([]Field, 0, len(commonFields)+len(lf.fields))
		fields = append(fields, commonFields...)
		fields = append(fields, lf.fields...)

		out[level] = Spec{
			Level:  level,
			Intent: lf.intent,
			Fields: fields,
			Schema: &llm.Schema{
				Name:        fmt.Sprintf("worksheet-level-%d", int(level)),
				Description: fmt.Sprintf("A %s vocabulary worksheet for Korean learners of English", level.Name()),
				Definition:  schemaDefinition(fields),
			},
		}
	}
	return out
}

// schemaDefinition builds a strict object schema: every field required,
// no extra properties.
func schemaDefinition(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]any, 0, len(fields))

	for _, f := range fields {
		var prop map[string]any
		switch f.Kind {
		case KindString:
			prop = map[string]any{"type": "string"}
		case KindList:
			prop = map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			}
		case KindTuple:
			prop = map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": f.Arity,
				"maxItems": f.Arity,
			}
		}
		prop["description"] = f.Description
		props[f.Name] = prop
		required = append(required, f.Name)
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
