package compose

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vocasheet/internal/generator"
	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/screens/sheet"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

type fakeGenerator struct {
	mu     sync.Mutex
	calls  []worksheet.Level
	words  []string
	result *generator.Result
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, word string, level worksheet.Level) (*generator.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, level)
	f.words = append(f.words, word)
	return f.result, f.err
}

func okResult(word string, level worksheet.Level) *generator.Result {
	w, _ := worksheet.New(level)
	if b, ok := w.(*worksheet.Beginner); ok {
		b.Word = word
	}
	return &generator.Result{Word: word, Level: level, Worksheet: w}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(c *ComposeScreen, s string) {
	for _, r := range s {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// runCmd executes cmd and any batched children, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findGenerated(t *testing.T, msgs []tea.Msg) generatedMsg {
	t.Helper()
	for _, m := range msgs {
		if g, ok := m.(generatedMsg); ok {
			return g
		}
	}
	t.Fatal("no generatedMsg produced")
	return generatedMsg{}
}

func TestEnterWithEmptyWordShowsError(t *testing.T) {
	gen := &fakeGenerator{}
	c := New(gen, nil, worksheet.LevelBeginner)

	_, cmd := c.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for an empty word")
	}
	if c.input.Err() != "Please enter a word." {
		t.Errorf("expected empty-word error, got %q", c.input.Err())
	}
	if len(gen.calls) != 0 {
		t.Errorf("expected no generator calls, got %d", len(gen.calls))
	}

	// Typing clears the error.
	typeText(c, "a")
	if c.input.Err() != "" {
		t.Errorf("expected error cleared after edit, got %q", c.input.Err())
	}
}

func TestWhitespaceOnlyWordIsRejected(t *testing.T) {
	gen := &fakeGenerator{}
	c := New(gen, nil, worksheet.LevelBeginner)

	c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	c.Update(key(tea.KeyEnter))

	if c.Generating() {
		t.Error("should not start generating for a blank word")
	}
	if len(gen.calls) != 0 {
		t.Errorf("expected no generator calls, got %d", len(gen.calls))
	}
}

func TestDigitsSelectLevelInsteadOfTyping(t *testing.T) {
	c := New(&fakeGenerator{}, nil, worksheet.LevelBeginner)

	c.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if c.picker.Level() != worksheet.LevelIntermediate {
		t.Errorf("expected level 3, got %v", c.picker.Level())
	}
	if c.input.Value() != "" {
		t.Errorf("digit should not reach the input, got %q", c.input.Value())
	}

	c.Update(key(tea.KeyLeft))
	if c.picker.Level() != worksheet.LevelElementary {
		t.Errorf("expected level 2 after left, got %v", c.picker.Level())
	}
}

func TestSuccessfulGenerationPushesSheet(t *testing.T) {
	gen := &fakeGenerator{result: okResult("apple", worksheet.LevelElementary)}
	c := New(gen, nil, worksheet.LevelElementary)

	typeText(c, "apple")
	_, cmd := c.Update(key(tea.KeyEnter))
	if !c.Generating() {
		t.Fatal("expected generating after enter")
	}

	g := findGenerated(t, runCmd(cmd))
	if len(gen.words) != 1 || gen.words[0] != "apple" || gen.calls[0] != worksheet.LevelElementary {
		t.Fatalf("unexpected generator calls: %v %v", gen.words, gen.calls)
	}

	_, cmd = c.Update(g)
	if c.Generating() {
		t.Error("expected generating to stop")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	push, ok := msgs[0].(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msgs[0])
	}
	if _, ok := push.Screen.(*sheet.SheetScreen); !ok {
		t.Errorf("expected sheet screen, got %T", push.Screen)
	}
}

func TestGenerationFailureShowsMessage(t *testing.T) {
	gen := &fakeGenerator{err: &generator.GenerationError{Word: "apple", Level: worksheet.LevelBeginner, Err: errors.New("boom")}}
	c := New(gen, nil, worksheet.LevelBeginner)

	typeText(c, "apple")
	_, cmd := c.Update(key(tea.KeyEnter))
	_, cmd = c.Update(findGenerated(t, runCmd(cmd)))

	if cmd != nil {
		t.Error("expected no navigation on failure")
	}
	if c.errMsg != "Failed to generate the worksheet. Please try again." {
		t.Errorf("unexpected error message %q", c.errMsg)
	}
	if c.Generating() {
		t.Error("expected generating to stop")
	}
}

func TestInputErrorFromGeneratorGoesToInput(t *testing.T) {
	gen := &fakeGenerator{err: generator.ErrEmptyWord}
	c := New(gen, nil, worksheet.LevelBeginner)

	typeText(c, "x")
	_, cmd := c.Update(key(tea.KeyEnter))
	c.Update(findGenerated(t, runCmd(cmd)))

	if c.input.Err() != "Please enter a word." {
		t.Errorf("expected input error, got %q", c.input.Err())
	}
	if c.errMsg != "" {
		t.Errorf("expected no banner error, got %q", c.errMsg)
	}
}

func TestCancelledResultIsDropped(t *testing.T) {
	gen := &fakeGenerator{result: okResult("apple", worksheet.LevelBeginner)}
	c := New(gen, nil, worksheet.LevelBeginner)

	typeText(c, "apple")
	_, cmd := c.Update(key(tea.KeyEnter))
	stale := findGenerated(t, runCmd(cmd))

	// Esc while generating cancels instead of leaving.
	_, escCmd := c.Update(key(tea.KeyEscape))
	if escCmd != nil {
		t.Error("esc during generation should not pop the screen")
	}
	if c.Generating() {
		t.Error("expected generating to stop after cancel")
	}

	_, cmd = c.Update(stale)
	if cmd != nil {
		t.Error("stale result should not navigate")
	}
}

func TestOnlyLatestRequestIsApplied(t *testing.T) {
	gen := &fakeGenerator{result: okResult("apple", worksheet.LevelBeginner)}
	c := New(gen, nil, worksheet.LevelBeginner)

	typeText(c, "apple")
	_, cmd := c.Update(key(tea.KeyEnter))
	first := findGenerated(t, runCmd(cmd))
	c.Update(key(tea.KeyEscape))

	_, cmd = c.Update(key(tea.KeyEnter))
	second := findGenerated(t, runCmd(cmd))
	if second.token == first.token {
		t.Fatal("expected a fresh token for the second request")
	}

	_, cmd = c.Update(first)
	if cmd != nil {
		t.Error("first result should be dropped")
	}
	if !c.Generating() {
		t.Error("second request should still be in flight")
	}

	_, cmd = c.Update(second)
	if cmd == nil {
		t.Error("second result should navigate")
	}
}

func TestEscPopsWhenIdle(t *testing.T) {
	c := New(&fakeGenerator{}, nil, worksheet.LevelBeginner)

	_, cmd := c.Update(key(tea.KeyEscape))
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", msgs[0])
	}
}

func TestViewShowsProgressWhileGenerating(t *testing.T) {
	c := New(&fakeGenerator{result: okResult("apple", worksheet.LevelBeginner)}, nil, worksheet.LevelBeginner)
	typeText(c, "apple")
	c.Update(key(tea.KeyEnter))

	view := c.View(100, 30)
	if !containsText(view, "Creating your worksheet") {
		t.Error("expected progress text in view")
	}
}

func containsText(view, s string) bool {
	return strings.Contains(ansi.Strip(view), s)
}
