// Package imagecache is a bounded, persisted map from a normalized word to
// its illustration. Entries are evicted oldest-write first.
package imagecache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// DefaultCapacity is the number of images kept before eviction.
const DefaultCapacity = 50

// Entry is one cached image. Timestamp is the time of the last write in
// Unix milliseconds and orders eviction.
type Entry struct {
	Word      string          `json:"normalizedWord"`
	Image     worksheet.Image `json:"imageData"`
	Timestamp int64           `json:"timestamp"`
}

// Cache holds the entries in memory and writes the whole region back to the
// blob store after each change.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	blobs    store.BlobRepo
	capacity int
	now      func() time.Time
	last     int64
	logger   *zap.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity overrides DefaultCapacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New returns an empty cache over blobs. Call Load to read persisted entries.
func New(blobs store.BlobRepo, opts ...Option) *Cache {
	c := &Cache{
		entries:  make(map[string]Entry),
		blobs:    blobs,
		capacity: DefaultCapacity,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the in-memory entries with the persisted region. On failure
// the cache is left empty and the error wraps store.ErrPersistence.
func (c *Cache) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Entry)
	c.last = 0

	raw, err := c.blobs.Get(ctx, store.RegionImageCache)
	if err != nil {
		c.logger.Warn("image cache load failed", zap.Error(err))
		return fmt.Errorf("%w: load image cache: %v", store.ErrPersistence, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var list []Entry
	if err := json.Unmarshal(raw, &list); err != nil {
		c.logger.Warn("image cache is corrupt, starting empty", zap.Error(err))
		return fmt.Errorf("%w: decode image cache: %v", store.ErrPersistence, err)
	}
	for _, e := range list {
		key := worksheet.NormalizeWord(e.Word)
		if key == "" || e.Image.Empty() {
			continue
		}
		e.Word = key
		if prev, ok := c.entries[key]; ok && prev.Timestamp > e.Timestamp {
			continue
		}
		c.entries[key] = e
		if e.Timestamp > c.last {
			c.last = e.Timestamp
		}
	}
	c.evictLocked()
	return nil
}

// Lookup returns the cached image for word, if any. An entry whose Insert
// failed to persist is still returned for the rest of the session.
func (c *Cache) Lookup(word string) (worksheet.Image, bool) {
	key := worksheet.NormalizeWord(word)
	if key == "" {
		return worksheet.Image{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return worksheet.Image{}, false
	}
	return e.Image, true
}

// Insert stores img as the newest entry for word, replacing any previous
// entry, then evicts down to capacity. The in-memory change is kept even if
// persisting fails; that failure is returned wrapping store.ErrPersistence.
// Empty images and blank words are ignored.
func (c *Cache) Insert(ctx context.Context, word string, img worksheet.Image) error {
	key := worksheet.NormalizeWord(word)
	if key == "" || img.Empty() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts

	img.Word = key
	c.entries[key] = Entry{Word: key, Image: img, Timestamp: ts}
	c.evictLocked()
	return c.persistLocked(ctx)
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
	return c.persistLocked(ctx)
}

// Entries returns a snapshot ordered newest first.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortedLocked()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Capacity returns the eviction bound.
func (c *Cache) Capacity() int { return c.capacity }

func (c *Cache) evictLocked() {
	if len(c.entries) <= c.capacity {
		return
	}
	list := c.sortedLocked()
	for _, e := range list[c.capacity:] {
		delete(c.entries, e.Word)
		c.logger.Debug("image cache evicted", zap.String("word", e.Word))
	}
}

func (c *Cache) sortedLocked() []Entry {
	list := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		list = append(list, e)
	}
	// Ties only come from loaded data; break them by word so eviction and
	// the persisted order do not depend on map iteration.
	sort.Slice(list, func(i, j int) bool {
		if list[i].Timestamp != list[j].Timestamp {
			return list[i].Timestamp > list[j].Timestamp
		}
		return list[i].Word < list[j].Word
	})
	return list
}

func (c *Cache) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(c.sortedLocked())
	if err != nil {
		return fmt.Errorf("%w: encode image cache: %v", store.ErrPersistence, err)
	}
	if err := c.blobs.Set(ctx, store.RegionImageCache, data); err != nil {
		c.logger.Warn("image cache write failed", zap.Error(err))
		return fmt.Errorf("%w: write image cache: %v", store.ErrPersistence, err)
	}
	return nil
}
