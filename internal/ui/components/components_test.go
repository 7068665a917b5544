package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vocasheet/internal/worksheet"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestLevelPickerArrowsStopAtEnds(t *testing.T) {
	p := NewLevelPicker(worksheet.LevelBeginner)

	p, _ = p.Update(keyPress("left"))
	if p.Level() != worksheet.LevelBeginner {
		t.Errorf("left at start should stay on beginner, got %v", p.Level())
	}
	for i := 0; i < 5; i++ {
		p, _ = p.Update(keyPress("right"))
	}
	if p.Level() != worksheet.LevelAdvanced {
		t.Errorf("expected advanced after moving right, got %v", p.Level())
	}
}

func TestLevelPickerDigits(t *testing.T) {
	p := NewLevelPicker(worksheet.LevelAdvanced)

	p, _ = p.Update(keyPress("2"))
	if p.Level() != worksheet.LevelElementary {
		t.Errorf("expected elementary, got %v", p.Level())
	}
	p, _ = p.Update(keyPress("9"))
	if p.Level() != worksheet.LevelElementary {
		t.Errorf("out-of-range digit should be ignored, got %v", p.Level())
	}
}

func TestLevelPickerViewListsAllLevels(t *testing.T) {
	view := ansi.Strip(NewLevelPicker(worksheet.LevelIntermediate).View())
	for _, l := range worksheet.AllLevels() {
		if !strings.Contains(view, l.Name()) {
			t.Errorf("view missing %q", l.Name())
		}
	}
}

func TestTextInputFilterRejectsDigits(t *testing.T) {
	in := NewTextInput("word", 40)
	in.Accept = WordRune

	for _, s := range []string{"c", "4", "a", "t", "!"} {
		in, _ = in.Update(keyPress(s))
	}
	if in.Value() != "cat" {
		t.Errorf("expected %q, got %q", "cat", in.Value())
	}
}

func TestTextInputEditClearsError(t *testing.T) {
	in := NewTextInput("word", 40)
	in.SetError("Please enter a word.")
	if !strings.Contains(ansi.Strip(in.View()), "Please enter a word.") {
		t.Error("expected error in view")
	}

	in, _ = in.Update(keyPress("a"))
	if in.Err() != "" {
		t.Errorf("expected error cleared, got %q", in.Err())
	}
}

func TestWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', ' ', '-', '\'', 'é'} {
		if !WordRune(r) {
			t.Errorf("expected %q accepted", r)
		}
	}
	for _, r := range []rune{'1', '!', '@', '_'} {
		if WordRune(r) {
			t.Errorf("expected %q rejected", r)
		}
	}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	pressed := ""
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			pressed = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true, Action: action("A")},
		{Label: "B", Action: action("B")},
		{Label: "C", Disabled: true, Action: action("C")},
		{Label: "D", Action: action("D")},
	})

	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}
	m, _ = m.Update(keyPress("down"))
	if m.Selected != 3 {
		t.Errorf("expected disabled item skipped, got %d", m.Selected)
	}
	m, _ = m.Update(keyPress("up"))
	if m.Selected != 1 {
		t.Errorf("expected back to 1, got %d", m.Selected)
	}
	m, _ = m.Update(keyPress("enter"))
	if pressed != "B" {
		t.Errorf("expected B pressed, got %q", pressed)
	}
}

func TestButtonInactiveIgnoresEnter(t *testing.T) {
	called := false
	b := NewButton("Go", false, func() tea.Cmd { called = true; return nil })

	b.Update(keyPress("enter"))
	if called {
		t.Error("inactive button should not fire")
	}

	b.Active = true
	b.Update(keyPress("enter"))
	if !called {
		t.Error("active button should fire")
	}
}

func TestProgressBarClamps(t *testing.T) {
	view := ansi.Strip(NewProgressBar("cache", 1.5, true, 20).View())
	if !strings.Contains(view, "100%") {
		t.Errorf("expected clamped 100%%, got %q", view)
	}
}
