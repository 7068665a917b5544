package components

import (
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling and an optional
// per-key filter.
type TextInput struct {
	Model textinput.Model

	// Accept, when set, rejects single-rune key presses it returns false for.
	Accept func(r rune) bool

	err string
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// WordRune accepts characters that can appear in an English word or short
// phrase.
func WordRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\''
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears the error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.Accept != nil {
		runes := []rune(kmsg.String())
		if len(runes) == 1 && !t.Accept(runes[0]) {
			return t, nil
		}
	}

	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.err = ""
	}
	return t, cmd
}

// View renders the input and, below it, any error.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.err != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError shows msg under the input until the next edit.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// Err returns the current error text.
func (t TextInput) Err() string {
	return t.err
}
