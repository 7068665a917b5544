package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/generator"
	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/screen"
	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/ui/layout"
	"github.com/abhisek/vocasheet/internal/ui/theme"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// Repo is the event source for the history screen.
type Repo interface {
	QueryGenerations(ctx context.Context, opts store.QueryOpts) ([]store.GenerationEventRecord, error)
}

type historyLoadedMsg struct {
	Events []store.GenerationEventRecord
	Err    error
}

// HistoryScreen displays past generation requests.
type HistoryScreen struct {
	repo     Repo
	events   []store.GenerationEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo Repo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		events, err := repo.QueryGenerations(context.Background(), store.QueryOpts{Limit: 100})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No worksheets generated yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		status := "ok"
		if !ev.Success {
			status = "failed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %-14s %-9s %s",
			prefix,
			ev.Timestamp.Local().Format("Jan 02 15:04"),
			ev.Word,
			worksheet.Level(ev.Level).Name(),
			imageLabel(ev.ImageStatus),
			status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if !ev.Success {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    request %s · %.1fs · cache hit: %t",
				ev.RequestID, float64(ev.LatencyMs)/1000, ev.CacheHit)
			if ev.ErrorMessage != "" {
				detail += "\n    " + ev.ErrorMessage
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(statusColor(ev)).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func imageLabel(status string) string {
	switch generator.ImageStatus(status) {
	case generator.ImageCached:
		return "◈ cached"
	case generator.ImageGenerated:
		return "◈ new"
	case generator.ImageQuota:
		return "◇ quota"
	case generator.ImageDisabled:
		return "◇ off"
	case "":
		return ""
	default:
		return "◇ none"
	}
}

func statusColor(ev store.GenerationEventRecord) color.Color {
	switch {
	case !ev.Success:
		return theme.Error
	case ev.ImageStatus == string(generator.ImageQuota):
		return theme.Accent
	default:
		return theme.TextDim
	}
}
