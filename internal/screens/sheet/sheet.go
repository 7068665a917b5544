package sheet

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocasheet/internal/render"
	"github.com/abhisek/vocasheet/internal/router"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/screen"
	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/ui/layout"
	"github.com/abhisek/vocasheet/internal/ui/theme"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// NoticeDuration is how long a save notice stays on screen.
const NoticeDuration = 3 * time.Second

// Saver persists a worksheet.
type Saver interface {
	Save(ctx context.Context, c saved.Candidate) (saved.Entry, error)
}

type savedMsg struct {
	err error
}

type noticeExpiredMsg struct {
	seq int
}

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeOK
	noticeWarn
)

// SheetScreen shows one worksheet in a scrollable viewport.
type SheetScreen struct {
	word   string
	sheet  worksheet.Worksheet
	image  *worksheet.Image
	saver  Saver
	vp     viewport.Model
	width  int
	notice string
	kind   noticeKind
	seq    int
	saving bool
}

var _ screen.Screen = (*SheetScreen)(nil)
var _ screen.KeyHintProvider = (*SheetScreen)(nil)

// New creates a SheetScreen. saver may be nil, which disables saving.
func New(word string, w worksheet.Worksheet, img *worksheet.Image, saver Saver) *SheetScreen {
	return &SheetScreen{
		word:  word,
		sheet: w,
		image: img,
		saver: saver,
		vp:    viewport.New(),
	}
}

func (s *SheetScreen) Init() tea.Cmd {
	return nil
}

func (s *SheetScreen) Title() string {
	return s.word + " · " + s.sheet.Level().Name()
}

func (s *SheetScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if s.saver != nil {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Save"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SheetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		switch {
		case msg.err == nil:
			s.setNotice("Worksheet saved!", noticeOK)
		case errors.Is(msg.err, saved.ErrDuplicate):
			s.setNotice("This worksheet is already in your saved list.", noticeWarn)
		case errors.Is(msg.err, store.ErrPersistence):
			s.setNotice("Saved for this session, but it could not be written to disk.", noticeWarn)
		default:
			s.setNotice("Could not save: "+msg.err.Error(), noticeWarn)
		}
		seq := s.seq
		return s, tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})

	case noticeExpiredMsg:
		if msg.seq == s.seq {
			s.notice = ""
			s.kind = noticeNone
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "s":
			if s.saver == nil || s.saving {
				return s, nil
			}
			s.saving = true
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *SheetScreen) save() tea.Cmd {
	saver, c := s.saver, saved.Candidate{Word: s.word, Worksheet: s.sheet, Image: s.image}
	return func() tea.Msg {
		_, err := saver.Save(context.Background(), c)
		return savedMsg{err: err}
	}
}

func (s *SheetScreen) setNotice(text string, kind noticeKind) {
	s.seq++
	s.notice = text
	s.kind = kind
}

// Notice returns the current transient notice, if any.
func (s *SheetScreen) Notice() string {
	return s.notice
}

func (s *SheetScreen) View(width, height int) string {
	noticeLine := ""
	switch s.kind {
	case noticeOK:
		noticeLine = theme.NoticeOK.Render("✓ " + s.notice)
	case noticeWarn:
		noticeLine = theme.NoticeWarn.Render("! " + s.notice)
	}

	bodyHeight := height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	contentWidth := min(width-4, 100)
	if contentWidth != s.width {
		s.width = contentWidth
		s.vp.SetContent(render.Worksheet(s.sheet, s.image, render.Options{Width: contentWidth}))
	}
	s.vp.SetWidth(contentWidth)
	s.vp.SetHeight(bodyHeight)

	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, noticeLine) + "\n" + body
}
