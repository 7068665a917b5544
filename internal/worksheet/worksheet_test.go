package worksheet

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocasheet/internal/llm"
)

const common = `"word":"brave","koreanMeaning":"용감한","partOfSpeech":"adjective","ipa":"/breɪv/","phoneticSpelling":"breyv"`

var samples = map[Level]string{
	LevelBeginner: `{` + common + `,
		"wordRepetitions":["brave","brave","brave"],
		"exampleSentences":["The dog is brave.","I am brave."],
		"changedSentence":"The cat is brave.",
		"ownSimpleSentence":"My mom is brave.",
		"usageExamples":"Fortune favors the brave."}`,
	LevelElementary: `{` + common + `,
		"definition":"Not afraid of danger.",
		"simpleSentences":["She is brave.","Be brave!"],
		"grammarConversions":["He was brave.","He will be brave.","Is he brave?","He is not brave."],
		"usageContext":"Used when someone faces fear.",
		"usageExamples":"Fortune favors the brave."}`,
	LevelIntermediate: `{` + common + `,
		"definition":"Ready to face danger or pain.",
		"exampleSentence":"It was brave of you to speak up.",
		"realLifeSentence":"My brother was brave at the dentist.",
		"shortParagraph":"A: Were you scared? B: A little. A: You were brave.",
		"usageContext":"Describing courage in daily life.",
		"synonyms":["courageous","bold"],
		"antonyms":["cowardly"],
		"grammarConversions":["She was being brave.","Bravery was shown by her."]}`,
	LevelAdvanced: `{` + common + `,
		"definition":"Showing courage in the face of danger, difficulty or pain.",
		"realLifeSentence":"Admitting the mistake in front of the team was brave.",
		"grammarConversions":["Had she been braver, she would have spoken.","If I were brave, I would try."],
		"miniParagraph":"Being brave is not the absence of fear. It is acting anyway. We all face moments of doubt. The brave choose to move. That is what counts.",
		"usageContext":"Formal and informal contexts.",
		"synonyms":["valiant","intrepid","fearless"],
		"antonyms":["timid","fearful"],
		"selfCheck":"What makes this word hard to remember?"}`,
}

func TestSchemaForAllLevels(t *testing.T) {
	for _, level := range AllLevels() {
		t.Run(level.String(), func(t *testing.T) {
			spec, err := SchemaFor(level)
			require.NoError(t, err)
			assert.Equal(t, level, spec.Level)
			assert.NotEmpty(t, spec.Intent)
			require.NotNil(t, spec.Schema)

			props := spec.Schema.Definition["properties"].(map[string]any)
			required := spec.Schema.Definition["required"].([]any)
			assert.Len(t, props, len(spec.Fields))
			assert.Len(t, required, len(spec.Fields))
			for _, name := range []string{"word", "koreanMeaning", "partOfSpeech", "ipa", "phoneticSpelling"} {
				assert.Contains(t, props, name)
			}
		})
	}
}

func TestSchemaForUnknownLevel(t *testing.T) {
	for _, level := range []Level{0, 5, -1} {
		_, err := SchemaFor(level)
		assert.ErrorIs(t, err, ErrUnknownLevel)
	}
}

func TestTupleFieldsCarryArity(t *testing.T) {
	spec, err := SchemaFor(LevelBeginner)
	require.NoError(t, err)

	props := spec.Schema.Definition["properties"].(map[string]any)
	reps := props["wordRepetitions"].(map[string]any)
	assert.Equal(t, 3, reps["minItems"])
	assert.Equal(t, 3, reps["maxItems"])
}

func TestDecodeEachLevel(t *testing.T) {
	for level, raw := range samples {
		t.Run(level.String(), func(t *testing.T) {
			w, err := Decode(level, json.RawMessage(raw))
			require.NoError(t, err)
			assert.Equal(t, level, w.Level())
			assert.Equal(t, "brave", w.Base().Word)
			assert.Equal(t, "용감한", w.Base().KoreanMeaning)
		})
	}
}

func TestDecodeVariantFields(t *testing.T) {
	w, err := Decode(LevelBeginner, json.RawMessage(samples[LevelBeginner]))
	require.NoError(t, err)

	b, ok := w.(*Beginner)
	require.True(t, ok, "expected *Beginner, got %T", w)
	assert.Equal(t, [3]string{"brave", "brave", "brave"}, b.WordRepetitions)
	assert.Len(t, b.ExampleSentences, 2)

	w, err = Decode(LevelElementary, json.RawMessage(samples[LevelElementary]))
	require.NoError(t, err)
	e := w.(*Elementary)
	assert.Equal(t, "Be brave!", e.SimpleSentences[1])
	assert.Len(t, e.GrammarConversions, 4)
}

func TestDecodeRejectsMismatchedTag(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		raw   string
	}{
		{"L1 fields tagged L3", LevelIntermediate, samples[LevelBeginner]},
		{"L3 fields tagged L1", LevelBeginner, samples[LevelIntermediate]},
		{"L2 fields tagged L4", LevelAdvanced, samples[LevelElementary]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.level, json.RawMessage(tt.raw))
			require.Error(t, err)
			var inv *llm.ErrInvalidResponse
			assert.True(t, errors.As(err, &inv), "expected ErrInvalidResponse, got %T", err)
		})
	}
}

func TestDecodeRejectsWrongTupleArity(t *testing.T) {
	raw := `{` + common + `,
		"wordRepetitions":["brave","brave"],
		"exampleSentences":[],
		"changedSentence":"",
		"ownSimpleSentence":"",
		"usageExamples":""}`
	_, err := Decode(LevelBeginner, json.RawMessage(raw))
	require.Error(t, err)
}

func TestDecodeRejectsBlankWord(t *testing.T) {
	raw := `{"word":"  ","koreanMeaning":"","partOfSpeech":"","ipa":"","phoneticSpelling":"",
		"wordRepetitions":["","",""],
		"exampleSentences":[],
		"changedSentence":"",
		"ownSimpleSentence":"",
		"usageExamples":""}`
	_, err := Decode(LevelBeginner, json.RawMessage(raw))
	assert.ErrorIs(t, err, ErrMissingWord)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(LevelBeginner, json.RawMessage(`{"word":`))
	require.Error(t, err)
}

func TestEncodeDecodeKeepsVariant(t *testing.T) {
	for level, raw := range samples {
		w, err := Decode(level, json.RawMessage(raw))
		require.NoError(t, err)

		enc, err := Encode(w)
		require.NoError(t, err)

		back, err := Decode(level, enc)
		require.NoError(t, err)
		assert.Equal(t, w, back)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"1", LevelBeginner, false},
		{"L2", LevelElementary, false},
		{"l3", LevelIntermediate, false},
		{"advanced", LevelAdvanced, false},
		{" Beginner ", LevelBeginner, false},
		{"5", 0, true},
		{"expert", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "apple", NormalizeWord("  Apple "))
	assert.Equal(t, NormalizeWord("APPLE"), NormalizeWord("apple"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestImagePromptByLevel(t *testing.T) {
	young := ImagePrompt("cat", LevelElementary)
	older := ImagePrompt("cat", LevelAdvanced)

	assert.Contains(t, young, "child-friendly")
	assert.Contains(t, older, "older learner")
	assert.Contains(t, young, "'cat'")
	assert.NotEqual(t, young, older)
}

func TestImageDataURL(t *testing.T) {
	img := Image{Word: "cat", MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	assert.Equal(t, "data:image/png;base64,iVBORw==", img.DataURL())
	assert.False(t, img.Empty())
	assert.True(t, Image{}.Empty())
	assert.Equal(t, ".png", img.Extension())
}
