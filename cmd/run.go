package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vocasheet/internal/app"
	"github.com/abhisek/vocasheet/internal/generator"
	"github.com/abhisek/vocasheet/internal/imagecache"
	"github.com/abhisek/vocasheet/internal/llm"
	"github.com/abhisek/vocasheet/internal/logging"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/screens/home"
	"github.com/abhisek/vocasheet/internal/store"
)

// services is everything a command may need, built once from flags and env.
type services struct {
	logger    *zap.Logger
	store     *store.Store
	cache     *imagecache.Cache
	saved     *saved.Store
	generator *generator.Generator // nil when no provider is configured
	provider  string
	llmErr    error
}

func (s *services) Close() {
	_ = s.logger.Sync()
	_ = s.store.Close()
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if env := os.Getenv("VOCASHEET_LOG_LEVEL"); env != "" && !cmd.Flags().Changed("log-level") {
		level = env
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := logging.Config{Level: level, Stderr: verbose}
	if p, err := logging.DefaultPath(); err == nil {
		cfg.OutputPath = p
	} else {
		cfg.Stderr = true
	}
	return logging.New(cfg)
}

// cacheCapacity reads VOCASHEET_CACHE_SIZE, falling back to the default.
func cacheCapacity() int {
	if n, err := strconv.Atoi(os.Getenv("VOCASHEET_CACHE_SIZE")); err == nil && n > 0 {
		return n
	}
	return imagecache.DefaultCapacity
}

// openServices opens the store and loads persisted state. Load failures are
// logged and leave the affected store empty. When withLLM is set it also
// builds the generator; a missing provider is reported via llmErr.
func openServices(cmd *cobra.Command, withLLM bool) (*services, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	svc := &services{logger: logger, store: st}

	svc.cache = imagecache.New(st.BlobRepo(),
		imagecache.WithCapacity(cacheCapacity()),
		imagecache.WithLogger(logger))
	if err := svc.cache.Load(ctx); err != nil {
		logger.Warn("image cache unavailable, starting empty", zap.Error(err))
	}

	svc.saved = saved.New(st.BlobRepo(), saved.WithLogger(logger))
	if err := svc.saved.Load(ctx); err != nil {
		logger.Warn("saved worksheets unavailable, starting empty", zap.Error(err))
	}

	if !withLLM {
		return svc, nil
	}

	cfg, err := llm.LoadConfig()
	if err != nil {
		svc.llmErr = err
		return svc, nil
	}
	eventRepo := st.EventRepo()
	text, err := llm.NewProvider(ctx, cfg, eventRepo, logger)
	if err != nil {
		svc.llmErr = err
		return svc, nil
	}
	images, err := llm.NewImageProvider(ctx, cfg, eventRepo, logger)
	if err != nil {
		logger.Warn("image provider unavailable, worksheets will have no image", zap.Error(err))
		images = nil
	}

	genCfg := generator.DefaultConfig()
	genCfg.TextTimeout = cfg.Timeout
	genCfg.ImageTimeout = cfg.ImageTimeout
	svc.generator = generator.New(text, images, svc.cache,
		generator.WithLogger(logger),
		generator.WithRecorder(eventRepo),
		generator.WithConfig(genCfg))
	svc.provider = cfg.Provider + " · " + text.ModelID()
	return svc, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd, true)
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.llmErr != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", svc.llmErr)
		fmt.Fprintln(os.Stderr, "Worksheet generation will be unavailable.")
	}

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	deps := home.Deps{
		Library:  svc.saved,
		Cache:    svc.cache,
		History:  svc.store.EventRepo(),
		Provider: svc.provider,
	}
	// Leave the interface nil rather than holding a typed nil pointer.
	if svc.generator != nil {
		deps.Generator = svc.generator
	}

	return app.Run(app.Options{Deps: deps, SkipWelcome: skipIntro})
}
