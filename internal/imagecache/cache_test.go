package imagecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

type memBlobs struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setCall int
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string][]byte{}}
}

func (m *memBlobs) Get(_ context.Context, name string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[name], nil
}

func (m *memBlobs) Set(_ context.Context, name string, data []byte) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[name] = append([]byte(nil), data...)
	return nil
}

func img(b byte) worksheet.Image {
	return worksheet.Image{MIMEType: "image/png", Data: []byte{b}}
}

// fixedClock always returns the same instant so ordering relies on the
// monotonic timestamp bump.
func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func TestLookupNormalizesWord(t *testing.T) {
	ctx := context.Background()
	c := New(newMemBlobs())

	require.NoError(t, c.Insert(ctx, "  Apple ", img(1)))

	got, ok := c.Lookup("APPLE")
	require.True(t, ok)
	assert.Equal(t, []byte{1}, got.Data)
	assert.Equal(t, "apple", got.Word)

	_, ok = c.Lookup("banana")
	assert.False(t, ok)
	_, ok = c.Lookup("   ")
	assert.False(t, ok)
}

func TestInsertReplacesExistingEntry(t *testing.T) {
	ctx := context.Background()
	c := New(newMemBlobs())

	require.NoError(t, c.Insert(ctx, "apple", img(1)))
	require.NoError(t, c.Insert(ctx, "Apple", img(2)))

	assert.Equal(t, 1, c.Len())
	got, ok := c.Lookup("apple")
	require.True(t, ok)
	assert.Equal(t, []byte{2}, got.Data)
}

func TestInsertEvictsOldestBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	c := New(newMemBlobs(), WithClock(fixedClock()))

	for i := 0; i < DefaultCapacity; i++ {
		require.NoError(t, c.Insert(ctx, fmt.Sprintf("word%d", i), img(byte(i))))
	}
	assert.Equal(t, DefaultCapacity, c.Len())

	require.NoError(t, c.Insert(ctx, "extra", img(99)))

	assert.Equal(t, DefaultCapacity, c.Len())
	_, ok := c.Lookup("word0")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Lookup("word1")
	assert.True(t, ok)
	_, ok = c.Lookup("extra")
	assert.True(t, ok)
}

func TestReinsertRefreshesRecency(t *testing.T) {
	ctx := context.Background()
	c := New(newMemBlobs(), WithCapacity(2), WithClock(fixedClock()))

	require.NoError(t, c.Insert(ctx, "a", img(1)))
	require.NoError(t, c.Insert(ctx, "b", img(2)))
	require.NoError(t, c.Insert(ctx, "a", img(3)))
	require.NoError(t, c.Insert(ctx, "c", img(4)))

	_, ok := c.Lookup("b")
	assert.False(t, ok, "b is now the oldest write")
	_, ok = c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestInsertIgnoresEmptyImageAndWord(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	c := New(blobs)

	require.NoError(t, c.Insert(ctx, "apple", worksheet.Image{}))
	require.NoError(t, c.Insert(ctx, "  ", img(1)))

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, blobs.setCall)
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()

	c := New(blobs, WithClock(fixedClock()))
	require.NoError(t, c.Insert(ctx, "apple", img(1)))
	require.NoError(t, c.Insert(ctx, "pear", img(2)))

	reloaded := New(blobs)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 2, reloaded.Len())

	entries := reloaded.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "pear", entries[0].Word)
	assert.Greater(t, entries[0].Timestamp, entries[1].Timestamp)

	// New inserts after reload keep timestamps increasing.
	require.NoError(t, reloaded.Insert(ctx, "plum", img(3)))
	assert.Equal(t, "plum", reloaded.Entries()[0].Word)
}

func TestPersistedFormat(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	c := New(blobs)
	require.NoError(t, c.Insert(ctx, "Apple", img(7)))

	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blobs.data[store.RegionImageCache], &raw))
	require.Len(t, raw, 1)
	assert.Contains(t, raw[0], "normalizedWord")
	assert.Contains(t, raw[0], "imageData")
	assert.Contains(t, raw[0], "timestamp")
	assert.JSONEq(t, `"apple"`, string(raw[0]["normalizedWord"]))
}

func TestLoadTrimsOverCapacity(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	var list []Entry
	for i := 0; i < 5; i++ {
		list = append(list, Entry{Word: fmt.Sprintf("w%d", i), Image: img(byte(i)), Timestamp: int64(i + 1)})
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	blobs.data[store.RegionImageCache] = data

	c := New(blobs, WithCapacity(3))
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 3, c.Len())
	_, ok := c.Lookup("w0")
	assert.False(t, ok)
	_, ok = c.Lookup("w4")
	assert.True(t, ok)
}

func TestLoadTimestampTiesEvictDeterministically(t *testing.T) {
	ctx := context.Background()
	list := []Entry{
		{Word: "pear", Image: img(1), Timestamp: 10},
		{Word: "apple", Image: img(2), Timestamp: 10},
		{Word: "kiwi", Image: img(3), Timestamp: 10},
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		blobs := newMemBlobs()
		blobs.data[store.RegionImageCache] = data

		c := New(blobs, WithCapacity(1))
		require.NoError(t, c.Load(ctx))
		require.Equal(t, 1, c.Len())
		_, ok := c.Lookup("apple")
		require.True(t, ok, "run %d: expected apple to survive the tie", i)
	}

	blobs := newMemBlobs()
	blobs.data[store.RegionImageCache] = data
	c := New(blobs, WithCapacity(3))
	require.NoError(t, c.Load(ctx))
	var words []string
	for _, e := range c.Entries() {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"apple", "kiwi", "pear"}, words)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	blobs.getErr = errors.New("disk gone")

	c := New(blobs)
	err := c.Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrPersistence))
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup("apple")
	assert.False(t, ok)
}

func TestLoadCorruptDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	blobs.data[store.RegionImageCache] = []byte("{not json")

	c := New(blobs)
	err := c.Load(ctx)
	require.ErrorIs(t, err, store.ErrPersistence)
	assert.Equal(t, 0, c.Len())
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	blobs.setErr = errors.New("read-only")

	c := New(blobs)
	err := c.Insert(ctx, "apple", img(1))
	require.ErrorIs(t, err, store.ErrPersistence)

	got, ok := c.Lookup("apple")
	assert.True(t, ok, "unpersisted entry stays visible")
	assert.Equal(t, img(1).Data, got.Data)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	c := New(blobs)
	require.NoError(t, c.Insert(ctx, "apple", img(1)))
	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())

	reloaded := New(blobs)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 0, reloaded.Len())
}
