package sheet

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

type fakeSaver struct {
	got []saved.Candidate
	err error
}

func (f *fakeSaver) Save(_ context.Context, c saved.Candidate) (saved.Entry, error) {
	f.got = append(f.got, c)
	if f.err != nil {
		return saved.Entry{}, f.err
	}
	return saved.Entry{ID: 1, Word: c.Word, Level: c.Worksheet.Level(), Worksheet: c.Worksheet, Image: c.Image}, nil
}

func newSheet(saver Saver) *SheetScreen {
	w := &worksheet.Beginner{
		Common:           worksheet.Common{Word: "brave", KoreanMeaning: "용감한", PartOfSpeech: "adjective"},
		WordRepetitions:  [3]string{"brave", "brave", "brave"},
		ExampleSentences: []string{"The dog is brave."},
	}
	return New("brave", w, nil, saver)
}

func press(s *SheetScreen, k string) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: []rune(k)[0], Text: k})
	return cmd
}

func TestSaveShowsConfirmation(t *testing.T) {
	saver := &fakeSaver{}
	s := newSheet(saver)

	cmd := press(s, "s")
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd()
	if len(saver.got) != 1 || saver.got[0].Word != "brave" {
		t.Fatalf("unexpected save calls: %+v", saver.got)
	}

	_, tick := s.Update(msg)
	if s.Notice() != "Worksheet saved!" {
		t.Errorf("expected saved notice, got %q", s.Notice())
	}
	if tick == nil {
		t.Error("expected a timer to clear the notice")
	}
}

func TestDuplicateSaveShowsNotice(t *testing.T) {
	s := newSheet(&fakeSaver{err: saved.ErrDuplicate})

	s.Update(press(s, "s")())
	if !strings.Contains(s.Notice(), "already") {
		t.Errorf("expected duplicate notice, got %q", s.Notice())
	}
}

func TestPersistenceFailureStillReportsSession(t *testing.T) {
	s := newSheet(&fakeSaver{err: fmt.Errorf("%w: disk full", store.ErrPersistence)})

	s.Update(press(s, "s")())
	if !strings.Contains(s.Notice(), "could not be written") {
		t.Errorf("expected persistence notice, got %q", s.Notice())
	}
}

func TestNoticeExpiresOnlyForLatestSeq(t *testing.T) {
	s := newSheet(&fakeSaver{})

	s.Update(press(s, "s")())
	firstSeq := s.seq
	s.Update(press(s, "s")())
	if s.seq == firstSeq {
		t.Fatal("expected a new notice sequence")
	}

	// Expiry of the first notice must not clear the second.
	s.Update(noticeExpiredMsg{seq: firstSeq})
	if s.Notice() == "" {
		t.Error("stale expiry cleared the current notice")
	}

	s.Update(noticeExpiredMsg{seq: s.seq})
	if s.Notice() != "" {
		t.Errorf("expected notice cleared, got %q", s.Notice())
	}
}

func TestSaveIgnoredWhileInFlight(t *testing.T) {
	s := newSheet(&fakeSaver{})

	if press(s, "s") == nil {
		t.Fatal("expected first save command")
	}
	if press(s, "s") != nil {
		t.Error("second save should be ignored while the first is pending")
	}
}

func TestSaveDisabledWithoutSaver(t *testing.T) {
	s := newSheet(nil)
	if cmd := press(s, "s"); cmd != nil {
		t.Error("expected no command without a saver")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "s" {
			t.Error("save hint shown without a saver")
		}
	}
}

func TestEscPops(t *testing.T) {
	s := newSheet(nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewRendersWorksheetAndNotice(t *testing.T) {
	s := newSheet(&fakeSaver{})
	s.Update(press(s, "s")())

	view := ansi.Strip(s.View(100, 40))
	for _, want := range []string{"Worksheet saved!", "WORD: brave", "LEVEL 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
