package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/shahzaib/lessonforge/internal/store"
)

// recordingRepo captures appended events for assertions.
type recordingRepo struct {
	events []store.LLMRequestEventData
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "# Lesson",
		Usage: Usage{InputTokens: 100, OutputTokens: 400, TotalTokens: 500},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "lesson")
	resp, err := p.Generate(ctx, Request{System: "sys", Prompt: "make a lesson"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "# Lesson" {
		t.Errorf("text = %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success {
		t.Error("expected success")
	}
	if e.Purpose != "lesson" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 100 || e.OutputTokens != 400 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") || !strings.Contains(e.RequestBody, "make a lesson") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != "# Lesson" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(t.Context(), Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure recorded")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q", e.Purpose)
	}
}

func TestMockProvider_FIFOAndExhaustion(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	r1, _ := mock.Generate(t.Context(), Request{Prompt: "a"})
	r2, _ := mock.Generate(t.Context(), Request{Prompt: "b"})
	if r1.Text != "first" || r2.Text != "second" {
		t.Error("expected FIFO order")
	}

	if _, err := mock.Generate(t.Context(), Request{Prompt: "c"}); err == nil {
		t.Error("expected error when queue is exhausted")
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d", mock.CallCount())
	}
}
