// Package generator produces a worksheet and its illustration for a word.
// The text and image calls run concurrently; a cached image skips the image
// call, and only the text result is required.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/vocasheet/internal/llm"
	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

// Purpose labels recorded on LLM request events.
const (
	PurposeWorksheet = "worksheet"
	PurposeImage     = "image"
)

// ImageStatus says where the result's image came from, or why there is none.
type ImageStatus string

const (
	ImageCached    ImageStatus = "cached"
	ImageGenerated ImageStatus = "generated"
	ImageQuota     ImageStatus = "quota"
	ImageFailed    ImageStatus = "failed"
	ImageEmpty     ImageStatus = "empty"
	ImageDisabled  ImageStatus = "disabled"
)

// Cache is the image cache consulted before the image call.
type Cache interface {
	Lookup(word string) (worksheet.Image, bool)
	Insert(ctx context.Context, word string, img worksheet.Image) error
}

// Recorder persists a summary of each generation.
type Recorder interface {
	AppendGeneration(ctx context.Context, data store.GenerationEventData) error
}

// Result is the merged outcome of one request.
type Result struct {
	RequestID   string
	Word        string
	Level       worksheet.Level
	Worksheet   worksheet.Worksheet
	Image       *worksheet.Image
	CacheHit    bool
	ImageStatus ImageStatus
}

// Generator coordinates the text provider, the image provider and the cache.
// It holds no state of its own.
type Generator struct {
	text     llm.Provider
	images   llm.ImageProvider
	cache    Cache
	recorder Recorder
	config   Config
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder records a generation event after every request.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithConfig overrides DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(g *Generator) { g.config = cfg }
}

// New creates a Generator. images and cache may be nil: without an image
// provider every result has ImageDisabled unless the cache hits.
func New(text llm.Provider, images llm.ImageProvider, cache Cache, opts ...Option) *Generator {
	g := &Generator{
		text:   text,
		images: images,
		cache:  cache,
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a worksheet for word at level. A blank word or unknown
// level fails with an ErrInput error before any remote call. A text failure
// returns *GenerationError. Image failures never fail the request; they
// leave Result.Image nil and are reported through Result.ImageStatus.
func (g *Generator) Generate(ctx context.Context, word string, level worksheet.Level) (*Result, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	spec, err := worksheet.SchemaFor(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}

	start := time.Now()
	res := &Result{
		RequestID: uuid.NewString(),
		Word:      word,
		Level:     level,
	}
	log := g.logger.With(
		zap.String("request_id", res.RequestID),
		zap.String("word", word),
		zap.Stringer("level", level),
	)

	var cached worksheet.Image
	if g.cache != nil {
		cached, res.CacheHit = g.cache.Lookup(word)
	}

	var (
		grp   errgroup.Group
		sheet worksheet.Worksheet
		fresh *worksheet.Image
	)

	grp.Go(func() error {
		w, err := g.generateText(ctx, word, spec)
		if err != nil {
			return err
		}
		sheet = w
		return nil
	})

	switch {
	case res.CacheHit:
		res.Image = &cached
		res.ImageStatus = ImageCached
	case g.images == nil:
		res.ImageStatus = ImageDisabled
	default:
		grp.Go(func() error {
			fresh, res.ImageStatus = g.generateImage(ctx, word, level, log)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		log.Error("worksheet generation failed", zap.Error(err))
		g.record(ctx, res, start, err)
		return nil, &GenerationError{Word: word, Level: level, Err: err}
	}
	res.Worksheet = sheet

	if fresh != nil {
		res.Image = fresh
		if g.cache != nil {
			if err := g.cache.Insert(ctx, word, *fresh); err != nil {
				log.Warn("image cache insert failed", zap.Error(err))
			}
		}
	}

	log.Info("worksheet generated",
		zap.Bool("cache_hit", res.CacheHit),
		zap.String("image_status", string(res.ImageStatus)),
		zap.Duration("elapsed", time.Since(start)),
	)
	g.record(ctx, res, start, nil)
	return res, nil
}

func (g *Generator) generateText(ctx context.Context, word string, spec worksheet.Spec) (worksheet.Worksheet, error) {
	ctx = llm.WithPurpose(ctx, PurposeWorksheet)
	if g.config.TextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.TextTimeout)
		defer cancel()
	}

	resp, err := g.text.Generate(ctx, llm.Request{
		System: worksheet.SystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: worksheet.UserPrompt(word, spec)},
		},
		Schema:      spec.Schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	w, err := worksheet.Decode(spec.Level, resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return w, nil
}

func (g *Generator) generateImage(ctx context.Context, word string, level worksheet.Level, log *zap.Logger) (*worksheet.Image, ImageStatus) {
	ctx = llm.WithPurpose(ctx, PurposeImage)
	if g.config.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.ImageTimeout)
		defer cancel()
	}

	resp, err := g.images.GenerateImage(ctx, llm.ImageRequest{
		Prompt: worksheet.ImagePrompt(word, level),
	})
	switch {
	case errors.Is(err, llm.ErrNoImage):
		log.Warn("image generation returned no image")
		return nil, ImageEmpty
	case llm.IsQuotaExceeded(err):
		log.Warn("image quota exhausted", zap.Error(err))
		return nil, ImageQuota
	case err != nil:
		log.Warn("image generation failed", zap.Error(err))
		return nil, ImageFailed
	case resp == nil || len(resp.Data) == 0:
		log.Warn("image generation returned no image")
		return nil, ImageEmpty
	}

	return &worksheet.Image{
		Word:     worksheet.NormalizeWord(word),
		MIMEType: resp.MIMEType,
		Data:     resp.Data,
	}, ImageGenerated
}

func (g *Generator) record(ctx context.Context, res *Result, start time.Time, genErr error) {
	if g.recorder == nil {
		return
	}
	data := store.GenerationEventData{
		RequestID:   res.RequestID,
		Word:        res.Word,
		Level:       int(res.Level),
		CacheHit:    res.CacheHit,
		ImageStatus: string(res.ImageStatus),
		Success:     genErr == nil,
		LatencyMs:   time.Since(start).Milliseconds(),
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}
	if err := g.recorder.AppendGeneration(context.WithoutCancel(ctx), data); err != nil {
		g.logger.Warn("failed to record generation event", zap.Error(err))
	}
}
