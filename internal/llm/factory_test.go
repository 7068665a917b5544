package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNewProvider_TextFailureIsNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unavailable", http.StatusServiceUnavailable, func(err error) bool {
			var pu *ErrProviderUnavailable
			return errors.As(err, &pu)
		}},
		{"rate limited", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "try later", "type": "server_error"},
				})
			}))
			t.Cleanup(server.Close)

			repo := &recordingRepo{}
			cfg := Config{
				Provider: "openai",
				OpenAI: OpenAIConfig{
					APIKey:  "test-key",
					Model:   "gpt-4o-mini",
					BaseURL: server.URL + "/v1",
				},
			}
			p, err := NewProvider(context.Background(), cfg, repo, nil)
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}

			_, err = p.Generate(WithPurpose(context.Background(), "worksheet"), Request{
				Messages:  []Message{{Role: RoleUser, Content: "brave"}},
				MaxTokens: 64,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("unexpected error type: %T (%v)", err, err)
			}
			if got := hits.Load(); got != 1 {
				t.Fatalf("expected exactly 1 upstream call, got %d", got)
			}
			if len(repo.events) != 1 {
				t.Fatalf("expected 1 recorded event, got %d", len(repo.events))
			}
			if repo.events[0].Success {
				t.Fatal("expected recorded event to be a failure")
			}
		})
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "bogus"}, &recordingRepo{}, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
