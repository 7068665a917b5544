package saved

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

type memBlobs struct {
	data   map[string][]byte
	getErr error
	setErr error
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
	if m.setErr != nil {
		return m.setErr
	}
	m.data[name] = append([]byte(nil), data...)
	return nil
}

func beginner(word string) *worksheet.Beginner {
	return &worksheet.Beginner{
		Common:           worksheet.Common{Word: word, KoreanMeaning: "사과", PartOfSpeech: "noun", IPA: "/ˈæp.əl/", PhoneticSpelling: "ap-uhl"},
		WordRepetitions:  [3]string{word, word, word},
		ExampleSentences: []string{"I eat an " + word + "."},
		ChangedSentence:  "I ate an " + word + ".",
		UsageExamples:    "An " + word + " a day.",
	}
}

func advanced(word string) *worksheet.Advanced {
	return &worksheet.Advanced{
		Common:             worksheet.Common{Word: word, KoreanMeaning: "사과"},
		Definition:         "A round fruit.",
		GrammarConversions: []string{},
		Synonyms:           []string{"pome"},
		Antonyms:           []string{},
		SelfCheck:          "Which fruit is red?",
	}
}

// frozenClock makes every save see the same millisecond.
func frozenClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func TestSavePrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New(newMemBlobs())

	_, err := s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.NoError(t, err)
	_, err = s.Save(ctx, Candidate{Word: "pear", Worksheet: beginner("pear")})
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "pear", list[0].Word)
	assert.Equal(t, "apple", list[1].Word)
}

func TestSaveDuplicateIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	s := New(blobs)

	_, err := s.Save(ctx, Candidate{Word: "Apple", Worksheet: beginner("Apple")})
	require.NoError(t, err)
	before := string(blobs.data[store.RegionSavedWorksheets])

	_, err = s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.ErrorIs(t, err, ErrDuplicate)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, before, string(blobs.data[store.RegionSavedWorksheets]), "duplicate must not persist")
	assert.True(t, s.Contains("APPLE", worksheet.LevelBeginner))
}

func TestSameWordDifferentLevelsBothSave(t *testing.T) {
	ctx := context.Background()
	s := New(newMemBlobs())

	_, err := s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.NoError(t, err)
	_, err = s.Save(ctx, Candidate{Word: "apple", Worksheet: advanced("apple")})
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, worksheet.LevelAdvanced, list[0].Level)
	assert.Equal(t, worksheet.LevelBeginner, list[1].Level)
}

func TestSaveFallsBackToWorksheetWord(t *testing.T) {
	ctx := context.Background()
	s := New(newMemBlobs())

	e, err := s.Save(ctx, Candidate{Worksheet: beginner("kite")})
	require.NoError(t, err)
	assert.Equal(t, "kite", e.Word)
}

func TestSaveRejectsNilWorksheet(t *testing.T) {
	s := New(newMemBlobs())
	_, err := s.Save(context.Background(), Candidate{Word: "apple"})
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestIDsUniqueUnderFrozenClock(t *testing.T) {
	ctx := context.Background()
	s := New(newMemBlobs(), WithClock(frozenClock()))

	seen := map[int64]bool{}
	for _, w := range []string{"a", "b", "c", "d", "e"} {
		e, err := s.Save(ctx, Candidate{Word: w, Worksheet: beginner(w)})
		require.NoError(t, err)
		assert.False(t, seen[e.ID], "id %d reused", e.ID)
		seen[e.ID] = true
	}
}

func TestDeleteRemovesAndUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New(newMemBlobs())

	a, err := s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.NoError(t, err)
	_, err = s.Save(ctx, Candidate{Word: "pear", Worksheet: beginner("pear")})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 424242))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(a.ID)
	assert.False(t, ok)

	// Deleting frees the (word, level) slot.
	_, err = s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.NoError(t, err)
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	s := New(blobs)

	image := &worksheet.Image{Word: "apple", MIMEType: "image/png", Data: []byte{1, 2, 3}}
	first, err := s.Save(ctx, Candidate{Word: "apple", Worksheet: beginner("apple"), Image: image})
	require.NoError(t, err)
	_, err = s.Save(ctx, Candidate{Word: "apple", Worksheet: advanced("apple")})
	require.NoError(t, err)

	reloaded := New(blobs)
	require.NoError(t, reloaded.Load(ctx))
	list := reloaded.List()
	require.Len(t, list, 2)

	got, ok := reloaded.Get(first.ID)
	require.True(t, ok)
	b, ok := got.Worksheet.(*worksheet.Beginner)
	require.True(t, ok, "level tag must select the Beginner variant")
	assert.Equal(t, [3]string{"apple", "apple", "apple"}, b.WordRepetitions)
	require.NotNil(t, got.Image)
	assert.Equal(t, []byte{1, 2, 3}, got.Image.Data)

	_, ok = list[0].Worksheet.(*worksheet.Advanced)
	assert.True(t, ok)
	assert.Nil(t, list[0].Image)

	// Ids keep increasing after reload.
	next, err := reloaded.Save(ctx, Candidate{Word: "plum", Worksheet: beginner("plum")})
	require.NoError(t, err)
	assert.Greater(t, next.ID, list[0].ID)
}

func TestLoadSkipsUnreadableEntries(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	blobs.data[store.RegionSavedWorksheets] = []byte(`[
		{"id":1,"word":"apple","level":3,"data":{"word":"apple"},"image":null},
		{"id":2,"word":"pear","level":9,"data":{},"image":null}
	]`)

	s := New(blobs)
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, 0, s.Len())
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	blobs := newMemBlobs()
	blobs.getErr = errors.New("locked")

	s := New(blobs)
	err := s.Load(context.Background())
	require.ErrorIs(t, err, store.ErrPersistence)
	assert.Equal(t, 0, s.Len())
}

func TestLoadCorruptDegradesToEmpty(t *testing.T) {
	blobs := newMemBlobs()
	blobs.data[store.RegionSavedWorksheets] = []byte(`{"nope":true}`)

	s := New(blobs)
	err := s.Load(context.Background())
	require.ErrorIs(t, err, store.ErrPersistence)
	assert.Equal(t, 0, s.Len())
}

func TestWriteFailureKeepsEntryInMemory(t *testing.T) {
	blobs := newMemBlobs()
	blobs.setErr = errors.New("disk full")
	s := New(blobs)

	e, err := s.Save(context.Background(), Candidate{Word: "apple", Worksheet: beginner("apple")})
	require.ErrorIs(t, err, store.ErrPersistence)
	assert.NotZero(t, e.ID)
	assert.Equal(t, 1, s.Len())
}
