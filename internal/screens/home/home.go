package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/screen"
	"github.com/abhisek/vocasheet/internal/screens/compose"
	"github.com/abhisek/vocasheet/internal/screens/history"
	"github.com/abhisek/vocasheet/internal/screens/savedlist"
	"github.com/abhisek/vocasheet/internal/ui/components"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// CacheStats reports image cache fill.
type CacheStats interface {
	Len() int
	Capacity() int
}

// Deps are the services reachable from the home screen. Generator and
// History may be nil.
type Deps struct {
	Generator compose.Generator
	Library   savedlist.Library
	Cache     CacheStats
	History   history.Repo
	Provider  string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	h.menuLabels = []string{"NEW WORKSHEET", "SAVED WORKSHEETS", "HISTORY", "QUIT"}
	h.disabled = map[int]bool{
		0: deps.Generator == nil,
		2: deps.History == nil,
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Disabled: h.disabled[0], Action: func() tea.Cmd {
			next := compose.New(deps.Generator, deps.Library, worksheet.LevelBeginner)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			next := savedlist.New(deps.Library)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: h.menuLabels[2], Disabled: h.disabled[2], Action: func() tea.Cmd {
			next := history.New(deps.History)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	savedCount := 0
	if h.deps.Library != nil {
		savedCount = len(h.deps.Library.List())
	}
	cached, capacity := 0, 0
	if h.deps.Cache != nil {
		cached, capacity = h.deps.Cache.Len(), h.deps.Cache.Capacity()
	}
	sections = append(sections, renderStatsBar(savedCount, cached, capacity, cw, h.deps.Provider))

	if h.deps.Generator == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
