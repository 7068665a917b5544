package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBlobGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.BlobRepo().Get(context.Background(), RegionImageCache)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("get missing = %q, want nil", got)
	}
}

func TestBlobSetAndOverwrite(t *testing.T) {
	s := openTestStore(t)
	repo := s.BlobRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, RegionSavedWorksheets, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, RegionSavedWorksheets, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.Get(ctx, RegionSavedWorksheets)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":1}]`)) {
		t.Errorf("get = %q, want overwritten value", got)
	}

	// Regions are independent.
	other, err := repo.Get(ctx, RegionImageCache)
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if other != nil {
		t.Errorf("other region = %q, want nil", other)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "worksheet", InputTokens: 120, OutputTokens: 300, LatencyMs: 900, Success: true, RequestBody: "prompt", ResponseBody: `{"word":"apple"}`},
		{Provider: "gemini", Model: "imagen-4.0-generate-001", Purpose: "image", LatencyMs: 4000, Success: false, ErrorMessage: "quota"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "worksheet", InputTokens: 80, OutputTokens: 200, LatencyMs: 1100, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Sequence <= all[1].Sequence || all[1].Sequence <= all[2].Sequence {
		t.Errorf("sequences not descending: %d, %d, %d", all[0].Sequence, all[1].Sequence, all[2].Sequence)
	}
	if all[2].RequestBody != "prompt" || all[2].ResponseBody != `{"word":"apple"}` {
		t.Errorf("bodies not round-tripped: %+v", all[2].LLMRequestEventData)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 || limited[0].InputTokens != 80 {
		t.Errorf("limit 1 = %+v, want newest event", limited)
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 {
		t.Errorf("after = %d events, want 1", len(after))
	}

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("from future = %d events, want 0", len(future))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "openai", Model: "gpt-4o", Purpose: "worksheet", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gpt-4o" {
		t.Fatalf("get = %+v, want gpt-4o event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "m1", Purpose: "worksheet", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "m1", Purpose: "worksheet", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "m2", Purpose: "image", LatencyMs: 1000, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	purposes := map[string]PurposeUsage{}
	for _, u := range byPurpose {
		purposes[u.Purpose] = u
	}
	ws := purposes["worksheet"]
	if ws.Calls != 2 || ws.InputTokens != 40 || ws.OutputTokens != 60 || ws.AvgLatencyMs != 200 {
		t.Errorf("worksheet usage = %+v", ws)
	}
	if purposes["image"].Calls != 1 {
		t.Errorf("image calls = %d, want 1", purposes["image"].Calls)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	models := map[string]ModelUsage{}
	for _, u := range byModel {
		models[u.Model] = u
	}
	if models["m1"].Calls != 2 || models["m1"].InputTokens != 40 {
		t.Errorf("m1 usage = %+v", models["m1"])
	}
}

func TestImageUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "imagen", Model: "imagen-4.0-generate-001", Purpose: "image", Success: true},
		{Provider: "imagen", Model: "imagen-4.0-generate-001", Purpose: "image", Success: true},
		{Provider: "imagen", Model: "imagen-4.0-generate-001", Purpose: "image", Success: false, ErrorMessage: "quota"},
		{Provider: "dall-e-3", Model: "dall-e-3", Purpose: "image", Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "worksheet", InputTokens: 10, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.ImageUsageByModel(ctx, "image")
	if err != nil {
		t.Fatalf("image usage: %v", err)
	}
	got := map[string]int{}
	for _, u := range usage {
		got[u.Model] = u.Images
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 image models, got %v", got)
	}
	if got["imagen-4.0-generate-001"] != 2 {
		t.Errorf("imagen images = %d, want 2 (failed call excluded)", got["imagen-4.0-generate-001"])
	}
	if got["dall-e-3"] != 1 {
		t.Errorf("dall-e-3 images = %d, want 1", got["dall-e-3"])
	}
}

func TestGenerationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGeneration(ctx, GenerationEventData{
		RequestID: "req-1", Word: "apple", Level: 1, CacheHit: true, ImageStatus: "cached", Success: true, LatencyMs: 800,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendGeneration(ctx, GenerationEventData{
		RequestID: "req-2", Word: "serendipity", Level: 4, ImageStatus: "quota", Success: false, ErrorMessage: "timeout",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RequestID != "req-2" || got[0].Success || got[0].ErrorMessage != "timeout" {
		t.Errorf("newest = %+v", got[0].GenerationEventData)
	}
	if !got[1].CacheHit || got[1].Level != 1 {
		t.Errorf("oldest = %+v", got[1].GenerationEventData)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "worksheet", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendGeneration(ctx, GenerationEventData{RequestID: "r", Word: "cat", Level: 2, Success: true}); err != nil {
		t.Fatalf("append generation: %v", err)
	}

	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	gen, _ := repo.QueryGenerations(ctx, QueryOpts{})
	if len(llm) != 1 || len(gen) != 1 {
		t.Fatalf("got %d llm and %d generation events", len(llm), len(gen))
	}
	if gen[0].Sequence != llm[0].Sequence+1 {
		t.Errorf("generation seq = %d, want %d", gen[0].Sequence, llm[0].Sequence+1)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "generation_events", "blobs", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
