package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := t.Context()

	for _, data := range []LLMRequestEventData{
		{Provider: "groq", Model: "openai/gpt-oss-20b", Purpose: "lesson", InputTokens: 50, OutputTokens: 900, LatencyMs: 1200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "groq", Model: "openai/gpt-oss-20b", Purpose: "quiz", Success: false, ErrorMessage: "boom"},
	} {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Purpose != "quiz" || events[1].Purpose != "lesson" {
		t.Errorf("unexpected order: %s, %s", events[0].Purpose, events[1].Purpose)
	}
	if events[0].Success || !events[1].Success {
		t.Error("success flags not round-tripped")
	}
	if events[1].OutputTokens != 900 {
		t.Errorf("output tokens = %d", events[1].OutputTokens)
	}
}

func TestQueryLLMEvents_PurposeFilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := t.Context()

	for i := 0; i < 5; i++ {
		purpose := "lesson"
		if i%2 == 1 {
			purpose = "quiz"
		}
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: purpose, Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	lessons, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "lesson"})
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 3 {
		t.Errorf("expected 3 lesson events, got %d", len(lessons))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := t.Context()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "lesson", RequestBody: "the prompt", ResponseBody: "the lesson", Success: true}); err != nil {
		t.Fatal(err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "the prompt" || e.ResponseBody != "the lesson" {
		t.Error("bodies not round-tripped")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}
