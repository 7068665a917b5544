package compose

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/generator"
	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/screen"
	"github.com/abhisek/vocasheet/internal/screens/sheet"
	"github.com/abhisek/vocasheet/internal/ui/components"
	"github.com/abhisek/vocasheet/internal/ui/layout"
	"github.com/abhisek/vocasheet/internal/ui/theme"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// Generator produces a worksheet for a word.
type Generator interface {
	Generate(ctx context.Context, word string, level worksheet.Level) (*generator.Result, error)
}

// generatedMsg carries a finished request back to the screen.
type generatedMsg struct {
	token  uint64
	result *generator.Result
	err    error
}

// ComposeScreen collects a word and level and runs generation.
type ComposeScreen struct {
	gen        Generator
	saver      sheet.Saver
	input      components.TextInput
	picker     components.LevelPicker
	button     components.Button
	spinner    spinner.Model
	tracker    generator.Tracker
	generating bool
	errMsg     string
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)

// New creates a ComposeScreen.
func New(gen Generator, saver sheet.Saver, initial worksheet.Level) *ComposeScreen {
	input := components.NewTextInput("Type an English word...", 40)
	input.Accept = components.WordRune

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	c := &ComposeScreen{
		gen:     gen,
		saver:   saver,
		input:   input,
		picker:  components.NewLevelPicker(initial),
		spinner: sp,
	}
	c.button = components.NewButton("Generate Worksheet", false, c.submit)
	return c
}

func (c *ComposeScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ComposeScreen) Title() string {
	return "New Worksheet"
}

func (c *ComposeScreen) KeyHints() []layout.KeyHint {
	if c.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "←→ 1-4", Description: "Level"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Generating reports whether a request is in flight.
func (c *ComposeScreen) Generating() bool {
	return c.generating
}

func (c *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return c.handleGenerated(msg)

	case spinner.TickMsg:
		if !c.generating {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		key := msg.String()
		if c.generating {
			if key == "esc" {
				c.tracker.Invalidate()
				c.generating = false
			}
			return c, nil
		}

		switch key {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "right", "1", "2", "3", "4":
			c.picker, _ = c.picker.Update(msg)
			return c, nil
		case "enter":
			if !c.button.Active {
				c.input.SetError("Please enter a word.")
				return c, nil
			}
			var cmd tea.Cmd
			c.button, cmd = c.button.Update(msg)
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.button.Active = strings.TrimSpace(c.input.Value()) != ""
	if c.input.Err() == "" {
		c.errMsg = ""
	}
	return c, cmd
}

func (c *ComposeScreen) submit() tea.Cmd {
	word := strings.TrimSpace(c.input.Value())
	if word == "" {
		c.input.SetError("Please enter a word.")
		return nil
	}

	c.errMsg = ""
	c.generating = true
	token := c.tracker.Begin()
	level := c.picker.Level()
	gen := c.gen

	return tea.Batch(c.spinner.Tick, func() tea.Msg {
		res, err := gen.Generate(context.Background(), word, level)
		return generatedMsg{token: token, result: res, err: err}
	})
}

func (c *ComposeScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	if !c.tracker.Current(msg.token) {
		return c, nil
	}
	c.generating = false

	if msg.err != nil {
		var genErr *generator.GenerationError
		switch {
		case errors.Is(msg.err, generator.ErrEmptyWord):
			c.input.SetError("Please enter a word.")
		case errors.Is(msg.err, generator.ErrInput):
			c.input.SetError(msg.err.Error())
		case errors.As(msg.err, &genErr):
			c.errMsg = "Failed to generate the worksheet. Please try again."
		default:
			c.errMsg = msg.err.Error()
		}
		return c, nil
	}

	res := msg.result
	next := sheet.New(res.Word, res.Worksheet, res.Image, c.saver)
	return c, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (c *ComposeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render("What word do you want to learn?"),
		"",
		c.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Level"),
		c.picker.View(),
		"",
	)

	switch {
	case c.generating:
		sections = append(sections,
			c.spinner.View()+" "+lipgloss.NewStyle().Foreground(theme.Text).
				Render("Creating your worksheet for "+c.picker.Level().Name()+"..."))
	default:
		sections = append(sections, c.button.View())
	}

	if c.errMsg != "" {
		sections = append(sections, "", theme.ErrorText.Render(c.errMsg))
	}

	card := components.ArcadeCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
