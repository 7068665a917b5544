package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/screens/home"
	"github.com/abhisek/vocasheet/internal/screens/welcome"
)

type stubCache struct{}

func (stubCache) Len() int      { return 4 }
func (stubCache) Capacity() int { return 50 }

func TestStartsAtWelcomeUnlessSkipped(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}

	m = newAppModel(Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestNavigationMessagesReachRouter(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	next := home.New(home.Deps{})

	updated, _ := m.Update(router.PushScreenMsg{Screen: next})
	m = updated.(AppModel)
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	updated, _ = m.Update(router.PopScreenMsg{})
	m = updated.(AppModel)
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", m.router.Depth())
	}
}

func TestHeaderStats(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true, Deps: home.Deps{Cache: stubCache{}}})
	stats := m.headerStats()
	if stats.Cached != 4 || stats.CacheLimit != 50 || stats.Saved != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
