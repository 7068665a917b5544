// Package saved keeps the user's saved worksheets, newest first, with at
// most one entry per (word, level).
package saved

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// ErrDuplicate is returned by Save when an entry with the same word and
// level already exists. State is not modified.
var ErrDuplicate = errors.New("worksheet already saved")

// Entry is one saved worksheet.
type Entry struct {
	ID        int64
	Word      string
	Level     worksheet.Level
	Worksheet worksheet.Worksheet
	Image     *worksheet.Image
}

type entryJSON struct {
	ID    int64            `json:"id"`
	Word  string           `json:"word"`
	Level worksheet.Level  `json:"level"`
	Data  json.RawMessage  `json:"data"`
	Image *worksheet.Image `json:"image"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	data, err := worksheet.Encode(e.Worksheet)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entryJSON{
		ID:    e.ID,
		Word:  e.Word,
		Level: e.Level,
		Data:  data,
		Image: e.Image,
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	w, err := worksheet.Decode(raw.Level, raw.Data)
	if err != nil {
		return fmt.Errorf("entry %d: %w", raw.ID, err)
	}
	*e = Entry{
		ID:        raw.ID,
		Word:      raw.Word,
		Level:     raw.Level,
		Worksheet: w,
		Image:     raw.Image,
	}
	return nil
}

// Candidate is what the user asks to save.
type Candidate struct {
	Word      string
	Worksheet worksheet.Worksheet
	Image     *worksheet.Image
}

// Store is the in-memory list backed by the savedWorksheets blob region.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	blobs   store.BlobRepo
	now     func() time.Time
	lastID  int64
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for id generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store over blobs. Call Load to read persisted entries.
func New(blobs store.BlobRepo, opts ...Option) *Store {
	s := &Store{
		blobs:  blobs,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted region. On failure the
// list is left empty and the error wraps store.ErrPersistence. Entries that
// fail to decode are skipped.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.lastID = 0

	raw, err := s.blobs.Get(ctx, store.RegionSavedWorksheets)
	if err != nil {
		s.logger.Warn("saved worksheets load failed", zap.Error(err))
		return fmt.Errorf("%w: load saved worksheets: %v", store.ErrPersistence, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("saved worksheets are corrupt, starting empty", zap.Error(err))
		return fmt.Errorf("%w: decode saved worksheets: %v", store.ErrPersistence, err)
	}
	for _, item := range items {
		var e Entry
		if err := json.Unmarshal(item, &e); err != nil {
			s.logger.Warn("skipping unreadable saved worksheet", zap.Error(err))
			continue
		}
		if s.indexLocked(e.Word, e.Level) >= 0 {
			continue
		}
		s.entries = append(s.entries, e)
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return nil
}

// Save prepends c unless an entry with the same case-insensitive word and
// level exists, in which case ErrDuplicate is returned. The new entry is kept
// in memory even if persisting fails; that failure wraps store.ErrPersistence.
func (s *Store) Save(ctx context.Context, c Candidate) (Entry, error) {
	if c.Worksheet == nil {
		return Entry{}, errors.New("save: worksheet is nil")
	}
	word := strings.TrimSpace(c.Word)
	if word == "" {
		word = strings.TrimSpace(c.Worksheet.Base().Word)
	}
	level := c.Worksheet.Level()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(word, level) >= 0 {
		return Entry{}, ErrDuplicate
	}

	e := Entry{
		ID:        s.nextIDLocked(),
		Word:      word,
		Level:     level,
		Worksheet: c.Worksheet,
		Image:     c.Image,
	}
	s.entries = append([]Entry{e}, s.entries...)
	return e, s.persistLocked(ctx)
}

// Delete removes the entry with id. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// List returns the entries newest first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with id.
func (s *Store) Get(id int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether word at level is already saved.
func (s *Store) Contains(word string, level worksheet.Level) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(word, level) >= 0
}

// Len returns the number of saved worksheets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) indexLocked(word string, level worksheet.Level) int {
	key := worksheet.NormalizeWord(word)
	for i, e := range s.entries {
		if e.Level == level && worksheet.NormalizeWord(e.Word) == key {
			return i
		}
	}
	return -1
}

// nextIDLocked derives ids from the clock but never repeats or goes
// backwards within the process.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persistLocked(ctx context.Context) error {
	list := s.entries
	if list == nil {
		list = []Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode saved worksheets: %v", store.ErrPersistence, err)
	}
	if err := s.blobs.Set(ctx, store.RegionSavedWorksheets, data); err != nil {
		s.logger.Warn("saved worksheets write failed", zap.Error(err))
		return fmt.Errorf("%w: write saved worksheets: %v", store.ErrPersistence, err)
	}
	return nil
}
