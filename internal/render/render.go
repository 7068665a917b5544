// Package render lays out a worksheet for the terminal. Each level has its
// own fixed layout; the concrete worksheet type selects it.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/vocasheet/internal/ui/theme"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// Options controls rendering.
type Options struct {
	// Width is the wrap width in cells. Zero means 80.
	Width int

	// Plain drops all styling, for piping to files.
	Plain bool
}

const answerLine = "______________________________________"

// Worksheet renders w with its optional image. Passing a type outside the
// four level variants is a programming error and panics.
func Worksheet(w worksheet.Worksheet, img *worksheet.Image, opts Options) string {
	s := newSheet(opts)
	s.header(w, img)

	switch v := w.(type) {
	case *worksheet.Beginner:
		beginner(s, v)
	case *worksheet.Elementary:
		elementary(s, v)
	case *worksheet.Intermediate:
		intermediate(s, v)
	case *worksheet.Advanced:
		advanced(s, v)
	default:
		panic(fmt.Sprintf("render: unsupported worksheet type %T", w))
	}

	return strings.TrimRight(s.b.String(), "\n") + "\n"
}

// Summary is a one-line description used in lists.
func Summary(w worksheet.Worksheet, img *worksheet.Image) string {
	base := w.Base()
	parts := []string{base.Word, fmt.Sprintf("%s %s", w.Level(), w.Level().Name())}
	if base.KoreanMeaning != "" {
		parts = append(parts, base.KoreanMeaning)
	}
	if img != nil && !img.Empty() {
		parts = append(parts, "image")
	}
	return strings.Join(parts, " · ")
}

// ImageLabel describes an image in one line, or "No Image".
func ImageLabel(img *worksheet.Image) string {
	if img == nil || img.Empty() {
		return "No Image"
	}
	return fmt.Sprintf("Image: %s, %s", strings.TrimPrefix(img.MIMEType, "image/"), humanize.Bytes(uint64(len(img.Data))))
}

func beginner(s *sheet, w *worksheet.Beginner) {
	s.section("Write the word 3 times", w.WordRepetitions[:], true)
	s.section("Write down example sentences", w.ExampleSentences, true)
	s.section("Change the sentence", []string{w.ChangedSentence}, true)
	s.section("Make your own simple sentence", nonEmpty(w.OwnSimpleSentence), true)
	s.checklist("Say your word (Check the boxes as you practice)")
	s.checklist("Say your sentence and Record it (Check the boxes as you practice)")
	s.section("Find sentences using the word (proverbs, quotes, etc.)", []string{w.UsageExamples}, true)
}

func elementary(s *sheet, w *worksheet.Elementary) {
	s.section("Definition (English)", []string{w.Definition}, false)
	s.section("Make two simple sentences", w.SimpleSentences[:], true)
	s.section("Convert sentences based on grammar", w.GrammarConversions, true)
	s.section("Where can you use this word?", []string{w.UsageContext}, true)
	s.checklist("Say your sentences and Record them (Check the boxes as you practice)")
	s.section("Find sentences using the word (proverbs, quotes, etc.)", []string{w.UsageExamples}, true)
}

func intermediate(s *sheet, w *worksheet.Intermediate) {
	s.section("Definition (English)", []string{w.Definition}, false)
	s.section("My example sentence", []string{w.ExampleSentence}, true)
	s.section("Real-life situation (Write a daily life sentence)", []string{w.RealLifeSentence}, true)
	s.section("Short paragraph (Record yourself reading - Conversation type, 3-5 sentences)", []string{w.ShortParagraph}, true)
	s.section("Where can you use this word?", []string{w.UsageContext}, true)
	s.pairs("Synonym / Antonym", w.Synonyms, w.Antonyms)
	s.section("Convert sentences based on grammar (2 types)", w.GrammarConversions, true)
}

func advanced(s *sheet, w *worksheet.Advanced) {
	s.section("Definition (English)", []string{w.Definition}, false)
	s.section("Real-life situation (Write a daily life sentence)", []string{w.RealLifeSentence}, true)
	s.section("Convert sentences based on grammar", w.GrammarConversions, true)
	s.section("Mini paragraph (5 sentences, record yourself reading)", []string{w.MiniParagraph}, true)
	s.section("Where can you use this word?", []string{w.UsageContext}, true)
	s.pairs("Synonym / Antonym", w.Synonyms, w.Antonyms)
	s.section("Self-check", []string{w.SelfCheck}, true)
}

func nonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

type styles struct {
	word    lipgloss.Style
	meta    lipgloss.Style
	meaning lipgloss.Style
	title   lipgloss.Style
	body    lipgloss.Style
	turn    lipgloss.Style
	rule    lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		p := lipgloss.NewStyle()
		return styles{p, p, p, p, p, p, p}
	}
	return styles{
		word:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		meta:    lipgloss.NewStyle().Foreground(theme.TextDim),
		meaning: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		body:    lipgloss.NewStyle().Foreground(theme.Text),
		turn:    lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
		rule:    lipgloss.NewStyle().Foreground(theme.Border),
	}
}

type sheet struct {
	b     strings.Builder
	width int
	st    styles
	n     int
}

func newSheet(opts Options) *sheet {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return &sheet{width: width, st: newStyles(opts.Plain)}
}

func (s *sheet) line(style lipgloss.Style, text string) {
	s.b.WriteString(style.Render(text))
	s.b.WriteByte('\n')
}

func (s *sheet) wrapped(style lipgloss.Style, indent, text string) {
	w := ansi.StringWidth(indent)
	limit := max(s.width-w, 20)
	pad := strings.Repeat(" ", w)
	for i, l := range strings.Split(ansi.Wordwrap(text, limit, ""), "\n") {
		if i == 0 {
			s.line(style, indent+l)
		} else {
			s.line(style, pad+l)
		}
	}
}

func (s *sheet) header(w worksheet.Worksheet, img *worksheet.Image) {
	base := w.Base()
	s.line(s.st.word, "WORD: "+base.Word)
	if base.PartOfSpeech != "" {
		s.line(s.st.meta, "("+base.PartOfSpeech+")")
	}
	s.line(s.st.meta, fmt.Sprintf("IPA: %s   Pronunciation: %s", orNA(base.IPA), orNA(base.PhoneticSpelling)))
	s.line(s.st.meta, fmt.Sprintf("SELF-DIRECTED ENGLISH VOCABULARY LEARNING (LEVEL %d)", int(w.Level())))
	s.line(s.st.meaning, "Korean Meaning: "+base.KoreanMeaning)
	s.line(s.st.meta, ImageLabel(img))
	s.line(s.st.rule, strings.Repeat("─", s.width))
}

func (s *sheet) title(text string) {
	s.n++
	s.b.WriteByte('\n')
	s.wrapped(s.st.title, "", fmt.Sprintf("%d. %s", s.n, text))
}

func (s *sheet) section(title string, items []string, yourTurn bool) {
	s.title(title)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		s.wrapped(s.st.body, "   • ", item)
	}
	if yourTurn {
		s.line(s.st.turn, "   Your Turn: "+answerLine)
	}
}

func (s *sheet) checklist(title string) {
	s.title(title)
	s.line(s.st.body, "   [ ] [ ] [ ] [ ] [ ]")
}

func (s *sheet) pairs(title string, synonyms, antonyms []string) {
	s.title(title)
	s.wrapped(s.st.body, "   ", "Synonyms: "+orNA(strings.Join(synonyms, ", ")))
	s.wrapped(s.st.body, "   ", "Antonyms: "+orNA(strings.Join(antonyms, ", ")))
	s.line(s.st.turn, "   Your Turn: "+answerLine)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
