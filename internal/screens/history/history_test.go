package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vocasheet/internal/store"
)

type fakeRepo struct {
	events []store.GenerationEventRecord
	err    error
	opts   store.QueryOpts
}

func (f *fakeRepo) QueryGenerations(_ context.Context, opts store.QueryOpts) ([]store.GenerationEventRecord, error) {
	f.opts = opts
	return f.events, f.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestShowsEvents(t *testing.T) {
	repo := &fakeRepo{events: []store.GenerationEventRecord{
		{ID: 2, Timestamp: time.Now(), GenerationEventData: store.GenerationEventData{
			RequestID: "req-2", Word: "brave", Level: 2, Success: true, ImageStatus: "cached",
		}},
		{ID: 1, Timestamp: time.Now(), GenerationEventData: store.GenerationEventData{
			RequestID: "req-1", Word: "cloud", Level: 4, Success: false, ErrorMessage: "timeout",
		}},
	}}
	s := New(repo)
	load(t, s)

	if repo.opts.Limit != 100 {
		t.Errorf("expected limit 100, got %d", repo.opts.Limit)
	}

	view := ansi.Strip(s.View(120, 30))
	for _, want := range []string{"brave", "Elementary", "◈ cached", "cloud", "Advanced", "failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "req-1") {
		t.Error("details should be collapsed by default")
	}
}

func TestEnterExpandsDetails(t *testing.T) {
	repo := &fakeRepo{events: []store.GenerationEventRecord{
		{ID: 1, Timestamp: time.Now(), GenerationEventData: store.GenerationEventData{
			RequestID: "req-1", Word: "cloud", Level: 1, ErrorMessage: "timeout", LatencyMs: 1500,
		}},
	}}
	s := New(repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := ansi.Strip(s.View(120, 30))
	for _, want := range []string{"req-1", "1.5s", "timeout"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
}

func TestEmptyAndErrorStates(t *testing.T) {
	s := New(&fakeRepo{})
	if !strings.Contains(ansi.Strip(s.View(80, 20)), "Loading") {
		t.Error("expected loading state before the query returns")
	}
	load(t, s)
	if !strings.Contains(ansi.Strip(s.View(80, 20)), "No worksheets generated yet") {
		t.Error("expected empty state")
	}

	s = New(&fakeRepo{err: errors.New("db locked")})
	load(t, s)
	if !strings.Contains(ansi.Strip(s.View(80, 20)), "db locked") {
		t.Error("expected error state")
	}
}

func TestImageLabel(t *testing.T) {
	tests := map[string]string{
		"cached":    "◈ cached",
		"generated": "◈ new",
		"quota":     "◇ quota",
		"disabled":  "◇ off",
		"failed":    "◇ none",
		"":          "",
	}
	for status, want := range tests {
		if got := imageLabel(status); got != want {
			t.Errorf("imageLabel(%q) = %q, want %q", status, got, want)
		}
	}
}
