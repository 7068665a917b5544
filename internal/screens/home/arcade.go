package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/ui/components"
	"github.com/abhisek/vocasheet/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, trimmed to fit the cabinet).
const arcadeTitleFull = ` ╦  ╦╔═╗╔═╗╔═╗╔═╗╦ ╦╔═╗╔═╗╔╦╗
 ╚╗╔╝║ ║║  ╠═╣╚═╗╠═╣║╣ ║╣  ║
  ╚╝ ╚═╝╚═╝╩ ╩╚═╝╩ ╩╚═╝╚═╝ ╩ `

const arcadeTitleCompact = "V · O · C · A · S · H · E · E · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the saved count and cache fill in a bordered box
// matching content width.
func renderStatsBar(savedCount, cached, capacity, cw int, provider string) string {
	savedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	top := savedStyle.Render(fmt.Sprintf("▣ %d SAVED", savedCount))
	if provider != "" {
		top += dimStyle.Render("   " + provider)
	}

	percent := 0.0
	if capacity > 0 {
		percent = float64(cached) / float64(capacity)
	}
	bar := components.NewProgressBar(fmt.Sprintf("◈ %d/%d images", cached, capacity), percent, false, cw-6)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(top + "\n" + bar.View())
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	const buttonWidth = 24

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, lipgloss.NewStyle().
				Width(buttonWidth).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(label))
		default:
			buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to create worksheets (see vocasheet --help)")
}
