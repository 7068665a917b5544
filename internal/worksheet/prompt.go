package worksheet

import "fmt"

// SystemPrompt sets the text model's role for every level.
const SystemPrompt = `You are an expert English teacher creating vocabulary worksheets for Korean students.

Rules:
- Use natural, correct English appropriate to the requested level.
- Write the Korean meaning in Hangul.
- Sentences must use the given word, in an inflected form where the grammar requires it.
- Do not include answers to the student's own writing tasks.
- Fill every field in the schema.`

// UserPrompt builds the per-request message for word at the spec's level.
func UserPrompt(word string, spec Spec) string {
	return fmt.Sprintf("For the word %q, %s", word, spec.Intent)
}

// ImagePrompt describes the illustration for word. Levels 3 and 4 get a
// more detailed style aimed at older learners.
func ImagePrompt(word string, level Level) string {
	if level >= LevelIntermediate {
		return fmt.Sprintf("An expressive and slightly more detailed illustration representing the nuanced concept of '%s'. "+
			"The style should be suitable for an older learner, like a drawing in a young adult novel. "+
			"Clean white background, no text or letters in the image.", word)
	}
	return fmt.Sprintf("A child-friendly, simple, colorful illustration representing the concept of '%s'. "+
		"Avoid using any text or letters in the image. "+
		"The style should be like a drawing in a children's book, on a clean white background.", word)
}
