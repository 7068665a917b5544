package generator

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocasheet/internal/imagecache"
	"github.com/abhisek/vocasheet/internal/llm"
	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

func beginnerJSON(word string) json.RawMessage {
	return json.RawMessage(`{
		"word": "` + word + `",
		"koreanMeaning": "사과",
		"partOfSpeech": "noun",
		"ipa": "/ˈæp.əl/",
		"phoneticSpelling": "ap-uhl",
		"wordRepetitions": ["apple", "apple", "apple"],
		"exampleSentences": ["I eat an apple.", "The apple is red."],
		"changedSentence": "I eat a banana.",
		"ownSimpleSentence": "",
		"usageExamples": "An apple a day keeps the doctor away."
	}`)
}

type fakeCache struct {
	mu      sync.Mutex
	images  map[string]worksheet.Image
	inserts []string
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{images: map[string]worksheet.Image{}}
}

func (c *fakeCache) Lookup(word string) (worksheet.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.images[worksheet.NormalizeWord(word)]
	return img, ok
}

func (c *fakeCache) Insert(_ context.Context, word string, img worksheet.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inserts = append(c.inserts, word)
	c.images[worksheet.NormalizeWord(word)] = img
	return c.err
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []store.GenerationEventData
}

func (r *fakeRecorder) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return nil
}

func TestGenerate_CacheMissGeneratesAndCachesImage(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	images := llm.NewMockImageProvider(llm.MockImageResponse{Data: []byte("png"), MIMEType: "image/png"})
	cache := newFakeCache()
	gen := New(text, images, cache)

	res, err := gen.Generate(context.Background(), "  Apple ", worksheet.LevelBeginner)
	require.NoError(t, err)

	assert.Equal(t, "Apple", res.Word)
	assert.Equal(t, worksheet.LevelBeginner, res.Level)
	assert.NotEmpty(t, res.RequestID)
	assert.False(t, res.CacheHit)
	assert.Equal(t, ImageGenerated, res.ImageStatus)
	require.NotNil(t, res.Image)
	assert.Equal(t, []byte("png"), res.Image.Data)
	assert.Equal(t, "apple", res.Image.Word)

	b, ok := res.Worksheet.(*worksheet.Beginner)
	require.True(t, ok)
	assert.Equal(t, "apple", b.Word)

	assert.Equal(t, 1, text.CallCount())
	assert.Equal(t, 1, images.CallCount())
	assert.Equal(t, []string{"Apple"}, cache.inserts)

	// Request carries the level's schema and the image prompt names the word.
	assert.Equal(t, "worksheet-level-1", text.Calls[0].Schema.Name)
	assert.Contains(t, text.Calls[0].Messages[0].Content, `"Apple"`)
	assert.Contains(t, images.Calls[0].Prompt, "'Apple'")
}

func TestGenerate_CacheHitSkipsImageCall(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	images := llm.NewMockImageProvider()
	cache := newFakeCache()
	cache.images["apple"] = worksheet.Image{Word: "apple", MIMEType: "image/png", Data: []byte("cached")}
	gen := New(text, images, cache)

	res, err := gen.Generate(context.Background(), "APPLE", worksheet.LevelBeginner)
	require.NoError(t, err)

	assert.True(t, res.CacheHit)
	assert.Equal(t, ImageCached, res.ImageStatus)
	require.NotNil(t, res.Image)
	assert.Equal(t, []byte("cached"), res.Image.Data)
	assert.Equal(t, 0, images.CallCount())
	assert.Empty(t, cache.inserts)
}

func TestGenerate_EmptyWordMakesNoCalls(t *testing.T) {
	text := llm.NewMockProvider()
	images := llm.NewMockImageProvider()
	rec := &fakeRecorder{}
	gen := New(text, images, newFakeCache(), WithRecorder(rec))

	for _, word := range []string{"", "   ", "\t\n"} {
		_, err := gen.Generate(context.Background(), word, worksheet.LevelBeginner)
		require.ErrorIs(t, err, ErrEmptyWord)
		assert.ErrorIs(t, err, ErrInput)
	}
	assert.Equal(t, 0, text.CallCount())
	assert.Equal(t, 0, images.CallCount())
	assert.Empty(t, rec.events)
}

func TestGenerate_InvalidLevelMakesNoCalls(t *testing.T) {
	text := llm.NewMockProvider()
	images := llm.NewMockImageProvider()
	gen := New(text, images, nil)

	_, err := gen.Generate(context.Background(), "apple", worksheet.Level(7))
	require.ErrorIs(t, err, ErrInvalidLevel)
	assert.ErrorIs(t, err, ErrInput)
	assert.Equal(t, 0, text.CallCount())
	assert.Equal(t, 0, images.CallCount())
}

func TestGenerate_TextFailureIsFatal(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	images := llm.NewMockImageProvider(llm.MockImageResponse{Data: []byte("png")})
	cache := newFakeCache()
	rec := &fakeRecorder{}
	gen := New(text, images, cache, WithRecorder(rec))

	res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.Error(t, err)
	assert.Nil(t, res)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "apple", genErr.Word)
	assert.Equal(t, worksheet.LevelBeginner, genErr.Level)

	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 1, text.CallCount(), "text call is attempted once")

	assert.Empty(t, cache.inserts, "failed requests do not populate the cache")
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.NotEmpty(t, rec.events[0].ErrorMessage)
}

func TestGenerate_MissingWordIsFatal(t *testing.T) {
	// Schema-valid shape but blank word.
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("  ")})
	gen := New(text, nil, nil)

	_, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, worksheet.ErrMissingWord)
}

func TestGenerate_WrongShapeIsFatal(t *testing.T) {
	// Level 1 fields returned for a level 3 request.
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	gen := New(text, nil, nil)

	_, err := gen.Generate(context.Background(), "apple", worksheet.LevelIntermediate)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestGenerate_ImageFailuresDegrade(t *testing.T) {
	tests := []struct {
		name   string
		resp   llm.MockImageResponse
		status ImageStatus
	}{
		{"quota by status", llm.MockImageResponse{Err: errors.New("Error 429, Message: RESOURCE_EXHAUSTED")}, ImageQuota},
		{"quota by rate limit", llm.MockImageResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Second}}, ImageQuota},
		{"unexpected", llm.MockImageResponse{Err: errors.New("connection reset")}, ImageFailed},
		{"empty", llm.MockImageResponse{}, ImageEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
			images := llm.NewMockImageProvider(tt.resp)
			cache := newFakeCache()
			gen := New(text, images, cache)

			res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
			require.NoError(t, err)
			assert.Nil(t, res.Image)
			assert.Equal(t, tt.status, res.ImageStatus)
			assert.NotNil(t, res.Worksheet)
			assert.Empty(t, cache.inserts)
		})
	}
}

func TestGenerate_NoImageProvider(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	gen := New(text, nil, newFakeCache())

	res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.NoError(t, err)
	assert.Equal(t, ImageDisabled, res.ImageStatus)
	assert.Nil(t, res.Image)
}

func TestGenerate_CacheInsertFailureIsNotFatal(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	images := llm.NewMockImageProvider(llm.MockImageResponse{Data: []byte("png")})
	cache := newFakeCache()
	cache.err = errors.New("disk full")
	gen := New(text, images, cache)

	res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.NoError(t, err)
	require.NotNil(t, res.Image)
}

func TestGenerate_RecordsEvent(t *testing.T) {
	text := llm.NewMockProvider(llm.MockResponse{Content: beginnerJSON("apple")})
	images := llm.NewMockImageProvider(llm.MockImageResponse{Err: errors.New("quota exceeded")})
	rec := &fakeRecorder{}
	gen := New(text, images, newFakeCache(), WithRecorder(rec))

	res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, res.RequestID, ev.RequestID)
	assert.Equal(t, "apple", ev.Word)
	assert.Equal(t, 1, ev.Level)
	assert.True(t, ev.Success)
	assert.Equal(t, string(ImageQuota), ev.ImageStatus)
}

// gatedText blocks until the image call has started, so Generate only
// completes if both calls are in flight together.
type gatedText struct {
	started <-chan struct{}
	content json.RawMessage
}

func (g *gatedText) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case <-g.started:
		return &llm.Response{Content: g.content, Model: "gated"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedText) ModelID() string { return "gated" }

type signalImages struct {
	once    sync.Once
	started chan struct{}
}

func (s *signalImages) GenerateImage(_ context.Context, _ llm.ImageRequest) (*llm.ImageResponse, error) {
	s.once.Do(func() { close(s.started) })
	return &llm.ImageResponse{Data: []byte("png"), MIMEType: "image/png"}, nil
}

func (s *signalImages) ImageModelID() string { return "signal" }

func TestGenerate_CallsRunConcurrently(t *testing.T) {
	images := &signalImages{started: make(chan struct{})}
	text := &gatedText{started: images.started, content: beginnerJSON("apple")}
	gen := New(text, images, newFakeCache(), WithConfig(Config{TextTimeout: 2 * time.Second, ImageTimeout: 2 * time.Second}))

	res, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.NoError(t, err)
	assert.Equal(t, ImageGenerated, res.ImageStatus)
}

func TestGenerate_WithImageCache(t *testing.T) {
	blobs := &memBlobs{data: map[string][]byte{}}
	cache := imagecache.New(blobs)
	text := llm.NewMockProvider(
		llm.MockResponse{Content: beginnerJSON("apple")},
		llm.MockResponse{Content: beginnerJSON("apple")},
	)
	images := llm.NewMockImageProvider(llm.MockImageResponse{Data: []byte("png")})
	gen := New(text, images, cache)

	first, err := gen.Generate(context.Background(), "apple", worksheet.LevelBeginner)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := gen.Generate(context.Background(), " Apple", worksheet.LevelBeginner)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, 1, images.CallCount())
	assert.Equal(t, first.Image.Data, second.Image.Data)
}

type memBlobs struct {
	data map[string][]byte
}

func (m *memBlobs) Get(_ context.Context, name string) ([]byte, error) {
	return m.data[name], nil
}

func (m *memBlobs) Set(_ context.Context, name string, data []byte) error {
	m.data[name] = data
	return nil
}

func TestTracker(t *testing.T) {
	var tr Tracker
	assert.False(t, tr.Current(0))

	first := tr.Begin()
	assert.True(t, tr.Current(first))

	second := tr.Begin()
	assert.False(t, tr.Current(first), "older token is stale")
	assert.True(t, tr.Current(second))

	tr.Invalidate()
	assert.False(t, tr.Current(second))
}
