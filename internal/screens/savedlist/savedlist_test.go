package savedlist

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/screens/sheet"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

type memBlobs struct {
	data map[string][]byte
}

func (m *memBlobs) Get(_ context.Context, name string) ([]byte, error) {
	return m.data[name], nil
}

func (m *memBlobs) Set(_ context.Context, name string, data []byte) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[name] = data
	return nil
}

func newLibrary(t *testing.T, words ...string) *saved.Store {
	t.Helper()
	lib := saved.New(&memBlobs{})
	for _, w := range words {
		_, err := lib.Save(context.Background(), saved.Candidate{
			Word:      w,
			Worksheet: &worksheet.Elementary{Common: worksheet.Common{Word: w, KoreanMeaning: "뜻"}},
		})
		if err != nil {
			t.Fatalf("save %q: %v", w, err)
		}
	}
	return lib
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestListsNewestFirst(t *testing.T) {
	s := New(newLibrary(t, "apple", "brave", "cloud"))
	s.Init()

	view := ansi.Strip(s.View(100, 30))
	iCloud := strings.Index(view, "cloud")
	iApple := strings.Index(view, "apple")
	if iCloud < 0 || iApple < 0 {
		t.Fatalf("expected both words in view:\n%s", view)
	}
	if iCloud > iApple {
		t.Error("expected newest entry first")
	}
}

func TestEmptyState(t *testing.T) {
	s := New(newLibrary(t))
	s.Init()

	if !strings.Contains(ansi.Strip(s.View(100, 30)), "No saved worksheets yet") {
		t.Error("expected empty state message")
	}
	if _, cmd := s.Update(key(tea.KeyEnter)); cmd != nil {
		t.Error("enter on empty list should do nothing")
	}
}

func TestEnterOpensSelectedSheet(t *testing.T) {
	s := New(newLibrary(t, "apple", "brave"))
	s.Init()
	s.Update(key(tea.KeyDown))

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	sh, ok := push.Screen.(*sheet.SheetScreen)
	if !ok {
		t.Fatalf("expected sheet screen, got %T", push.Screen)
	}
	if !strings.HasPrefix(sh.Title(), "apple") {
		t.Errorf("expected the older entry, got title %q", sh.Title())
	}
}

func TestDeleteRemovesSelected(t *testing.T) {
	lib := newLibrary(t, "apple", "brave")
	s := New(lib)
	s.Init()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	s.Update(cmd())

	if lib.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", lib.Len())
	}
	if lib.Contains("brave", worksheet.LevelElementary) {
		t.Error("expected newest entry deleted")
	}
	if len(s.entries) != 1 || s.selected != 0 {
		t.Errorf("expected refreshed list with selection clamped, got %d entries, selected %d", len(s.entries), s.selected)
	}
}

func TestSelectionClampedAfterDeletingLast(t *testing.T) {
	lib := newLibrary(t, "apple", "brave")
	s := New(lib)
	s.Init()
	s.Update(key(tea.KeyDown))

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	s.Update(cmd())

	if s.selected != 0 {
		t.Errorf("expected selection 0, got %d", s.selected)
	}
}
