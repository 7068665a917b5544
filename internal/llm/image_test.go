package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/abhisek/vocasheet/internal/store"
)

func TestOpenAIProvider_GenerateImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	var gotPath string
	var gotBody map[string]any

	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1234567890,
			"data": []map[string]any{
				{"b64_json": base64.StdEncoding.EncodeToString(png)},
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	p.imageModel = openai.CreateImageModelDallE3

	resp, err := p.GenerateImage(context.Background(), ImageRequest{Prompt: "a brave lion"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v1/images/generations" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["prompt"] != "a brave lion" {
		t.Fatalf("prompt not forwarded: %v", gotBody["prompt"])
	}
	if gotBody["response_format"] != "b64_json" {
		t.Fatalf("expected b64_json response format, got %v", gotBody["response_format"])
	}
	if string(resp.Data) != string(png) {
		t.Fatalf("image bytes not decoded")
	}
	if resp.MIMEType != "image/png" {
		t.Fatalf("expected image/png, got %q", resp.MIMEType)
	}
}

func TestOpenAIProvider_GenerateImageEmpty(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"created": 1, "data": []any{}})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}

func TestOpenAIProvider_GenerateImageQuota(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "insufficient_quota",
				"message": "You exceeded your current quota",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsQuotaExceeded(err) {
		t.Fatalf("expected quota error, got %T (%v)", err, err)
	}
}

func TestIsQuotaExceeded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit type", &ErrRateLimit{Err: errors.New("slow down")}, true},
		{"wrapped rate limit", fmt.Errorf("image: %w", &ErrRateLimit{}), true},
		{"status in message", errors.New("Error 429, Message: too many"), true},
		{"resource exhausted", errors.New("RESOURCE_EXHAUSTED: try later"), true},
		{"quota wording", errors.New("Quota exceeded for metric"), true},
		{"server error", &ErrProviderUnavailable{Err: errors.New("500 internal")}, false},
		{"plain", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuotaExceeded(tt.err); got != tt.want {
				t.Fatalf("IsQuotaExceeded(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMockImageProvider(t *testing.T) {
	mock := NewMockImageProvider(
		MockImageResponse{Data: []byte("img"), MIMEType: "image/png"},
		MockImageResponse{Err: &ErrRateLimit{}},
		MockImageResponse{},
	)

	resp, err := mock.GenerateImage(context.Background(), ImageRequest{Prompt: "one"})
	if err != nil || string(resp.Data) != "img" {
		t.Fatalf("first response: %v %v", resp, err)
	}

	_, err = mock.GenerateImage(context.Background(), ImageRequest{Prompt: "two"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}

	_, err = mock.GenerateImage(context.Background(), ImageRequest{Prompt: "three"})
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}

	resp, err = mock.GenerateImage(context.Background(), ImageRequest{Prompt: "four"})
	if err != nil || len(resp.Data) == 0 {
		t.Fatalf("expected placeholder image once the queue is drained, got %v %v", resp, err)
	}

	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].Prompt != "one" {
		t.Fatalf("expected first prompt recorded, got %q", mock.Calls[0].Prompt)
	}
}

// recordingRepo captures appended LLM events.
type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}
func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (r *recordingRepo) ImageUsageByModel(context.Context, string) ([]store.ImageUsage, error) {
	return nil, nil
}
func (r *recordingRepo) AppendGeneration(context.Context, store.GenerationEventData) error {
	return nil
}
func (r *recordingRepo) QueryGenerations(context.Context, store.QueryOpts) ([]store.GenerationEventRecord, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"word":"brave"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), "worksheet")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "brave"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "worksheet" || !ev.Success || ev.InputTokens != 12 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || ev.ResponseBody != `{"word":"brave"}` {
		t.Fatalf("bodies not captured: %+v", ev)
	}
}

func TestLoggingProvider_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoggingImageProvider_RecordsSummary(t *testing.T) {
	repo := &recordingRepo{}
	p := WithImageLogging(NewMockImageProvider(MockImageResponse{Data: []byte("12345")}), repo, nil)

	ctx := WithPurpose(context.Background(), "image")
	if _, err := p.GenerateImage(ctx, ImageRequest{Prompt: "lion"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "image" {
		t.Fatalf("expected purpose image, got %q", ev.Purpose)
	}
	if ev.ResponseBody != "[image/png, 5 bytes]" {
		t.Fatalf("unexpected response summary %q", ev.ResponseBody)
	}
}

func TestNewImageProvider_Selection(t *testing.T) {
	repo := &recordingRepo{}
	ctx := context.Background()

	p, err := NewImageProvider(ctx, Config{Provider: "anthropic"}, repo, nil)
	if err != nil || p != nil {
		t.Fatalf("anthropic has no image model; expected nil provider, got %v %v", p, err)
	}

	p, err = NewImageProvider(ctx, Config{Provider: "gemini", ImageProvider: "none"}, repo, nil)
	if err != nil || p != nil {
		t.Fatalf("expected images disabled, got %v %v", p, err)
	}

	p, err = NewImageProvider(ctx, Config{Provider: "mock"}, repo, nil)
	if err != nil || p == nil {
		t.Fatalf("expected mock image provider, got %v %v", p, err)
	}

	p, err = NewImageProvider(ctx, Config{
		Provider:      "anthropic",
		ImageProvider: "openai",
		OpenAI:        OpenAIConfig{APIKey: "sk-test", ImageModel: "dall-e"},
	}, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ImageModelID() != openai.CreateImageModelDallE3 {
		t.Fatalf("expected dall-e-3, got %q", p.ImageModelID())
	}
}

func TestLoadConfig_DiscoversKey(t *testing.T) {
	t.Setenv("VOCASHEET_LLM_PROVIDER", "")
	t.Setenv("VOCASHEET_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-discovered")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-discovered" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_ExplicitWins(t *testing.T) {
	t.Setenv("VOCASHEET_LLM_PROVIDER", "anthropic")
	t.Setenv("VOCASHEET_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("VOCASHEET_IMAGE_PROVIDER", "none")
	t.Setenv("OPENAI_API_KEY", "sk-other")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" || cfg.ImageProvider != "none" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
