package savedlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/render"
	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/screen"
	"github.com/abhisek/vocasheet/internal/screens/sheet"
	"github.com/abhisek/vocasheet/internal/ui/layout"
	"github.com/abhisek/vocasheet/internal/ui/theme"
)

// Library is the saved worksheet collection.
type Library interface {
	sheet.Saver
	List() []saved.Entry
	Delete(ctx context.Context, id int64) error
}

type deletedMsg struct {
	err error
}

// SavedScreen lists saved worksheets, newest first.
type SavedScreen struct {
	lib      Library
	entries  []saved.Entry
	selected int
	errMsg   string
}

var _ screen.Screen = (*SavedScreen)(nil)
var _ screen.KeyHintProvider = (*SavedScreen)(nil)

// New creates a SavedScreen.
func New(lib Library) *SavedScreen {
	return &SavedScreen{lib: lib}
}

func (s *SavedScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *SavedScreen) Title() string {
	return "Saved Worksheets"
}

func (s *SavedScreen) KeyHints() []layout.KeyHint {
	if len(s.entries) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "d", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SavedScreen) refresh() {
	s.entries = s.lib.List()
	if s.selected >= len(s.entries) {
		s.selected = max(len(s.entries)-1, 0)
	}
}

func (s *SavedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deletedMsg:
		s.errMsg = ""
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			if e, ok := s.current(); ok {
				next := sheet.New(e.Word, e.Worksheet, e.Image, s.lib)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
		case "d", "delete":
			if e, ok := s.current(); ok {
				lib, id := s.lib, e.ID
				return s, func() tea.Msg {
					return deletedMsg{err: lib.Delete(context.Background(), id)}
				}
			}
		}
	}
	return s, nil
}

func (s *SavedScreen) current() (saved.Entry, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return saved.Entry{}, false
	}
	return s.entries[s.selected], true
}

func (s *SavedScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No saved worksheets yet. Generate one and press s to save it.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection visible when the list is taller than the screen.
	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.entries))

	for i := start; i < end; i++ {
		e := s.entries[i]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%-3d %s", prefix, i+1, render.Summary(e.Worksheet, e.Image))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.ErrorText.Render(s.errMsg)))
	}
	return b.String()
}
