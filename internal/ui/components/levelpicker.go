package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/ui/theme"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// LevelPicker is a horizontal selector over the four levels.
type LevelPicker struct {
	Levels   []worksheet.Level
	Selected int
}

// NewLevelPicker creates a picker with initial selected.
func NewLevelPicker(initial worksheet.Level) LevelPicker {
	p := LevelPicker{Levels: worksheet.AllLevels()}
	for i, l := range p.Levels {
		if l == initial {
			p.Selected = i
		}
	}
	return p
}

// Update handles ←/→ and the digit shortcuts 1-4.
func (p LevelPicker) Update(msg tea.Msg) (LevelPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key := kmsg.String(); key {
	case "left":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right":
		if p.Selected < len(p.Levels)-1 {
			p.Selected++
		}
	default:
		if l, err := worksheet.ParseLevel(key); err == nil {
			for i, candidate := range p.Levels {
				if candidate == l {
					p.Selected = i
				}
			}
		}
	}
	return p, nil
}

// Level returns the selected level.
func (p LevelPicker) Level() worksheet.Level {
	return p.Levels[p.Selected]
}

// View renders the levels on one line with the selection highlighted.
func (p LevelPicker) View() string {
	parts := make([]string, len(p.Levels))
	for i, l := range p.Levels {
		label := fmt.Sprintf(" %d %s ", int(l), l.Name())
		if i == p.Selected {
			parts[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(label)
		} else {
			parts[i] = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label)
		}
	}
	return strings.Join(parts, " ")
}
