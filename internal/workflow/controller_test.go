package workflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/shahzaib/lessonforge/internal/llm"
	"github.com/shahzaib/lessonforge/internal/planner"
)

const lessonMD = "# The Solar System\n\nA lesson about planets.\n\n## Assessment\nExit ticket."
const quizMD = "# Quiz\n\n1. How many planets orbit the sun?"

func quizOpts() QuizOptions {
	return QuizOptions{
		QuestionCount: 7,
		Grade:         "5",
		Language:      planner.LanguageEnglish,
		Difficulty:    planner.DifficultyMedium,
	}
}

func TestRequestLesson_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: lessonMD})
	c := New(mock, DefaultConfig())

	lesson, err := c.RequestLesson(t.Context(), planner.ExampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson.Markdown != lessonMD {
		t.Errorf("lesson markdown = %q", lesson.Markdown)
	}
	if lesson.Input.Subject != "Science" {
		t.Error("expected input snapshot on artifact")
	}
	if c.State() != StateLessonReady {
		t.Errorf("state = %s, want %s", c.State(), StateLessonReady)
	}
}

func TestRequestLesson_ValidationError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: lessonMD})
	c := New(mock, DefaultConfig())

	input := planner.ExampleInput()
	input.Subject = ""
	input.Grade = ""

	_, err := c.RequestLesson(t.Context(), input)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 2 {
		t.Errorf("missing = %v", verr.Missing)
	}
	if mock.CallCount() != 0 {
		t.Error("validation failure must not reach the provider")
	}
	if c.State() != StateEmpty {
		t.Error("state must be unchanged on validation failure")
	}
}

func TestRequestLesson_RemoteFailureLeavesStateUntouched(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	c := New(mock, DefaultConfig())

	first, err := c.RequestLesson(t.Context(), planner.ExampleInput())
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	_, err = c.RequestLesson(t.Context(), planner.ExampleInput())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gerr.Stage != "lesson" {
		t.Errorf("stage = %q", gerr.Stage)
	}

	// The old lesson remains visible and usable.
	if c.State() != StateLessonReady {
		t.Errorf("state = %s", c.State())
	}
	if got := c.Lesson(); got == nil || got.ID != first.ID {
		t.Error("expected prior lesson to be preserved")
	}
}

func TestRequestQuiz_RequiresLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizMD})
	c := New(mock, DefaultConfig())

	_, err := c.RequestQuiz(t.Context(), quizOpts())

	var perr *PreconditionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if perr.Reason != "no lesson present" {
		t.Errorf("reason = %q", perr.Reason)
	}
	if mock.CallCount() != 0 {
		t.Error("precondition failure must not reach the provider")
	}
}

func TestRequestQuiz_ReferencesCurrentLesson(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Text: quizMD},
	)
	c := New(mock, DefaultConfig())

	lesson, err := c.RequestLesson(t.Context(), planner.ExampleInput())
	if err != nil {
		t.Fatal(err)
	}
	quiz, err := c.RequestQuiz(t.Context(), quizOpts())
	if err != nil {
		t.Fatal(err)
	}

	if c.State() != StateLessonAndQuizReady {
		t.Errorf("state = %s", c.State())
	}
	if quiz.LessonID != lesson.ID {
		t.Error("quiz must reference the just-created lesson")
	}

	// The quiz prompt embeds the current lesson text.
	quizReq := mock.Calls[1]
	if !strings.Contains(quizReq.Prompt, lessonMD) {
		t.Error("quiz prompt should contain the lesson markdown")
	}
	if !strings.Contains(quizReq.Prompt, "exactly 7") {
		t.Error("quiz prompt should state the requested question count")
	}
}

func TestRequestQuiz_FailureKeepsLesson(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
	)
	c := New(mock, DefaultConfig())

	if _, err := c.RequestLesson(t.Context(), planner.ExampleInput()); err != nil {
		t.Fatal(err)
	}
	_, err := c.RequestQuiz(t.Context(), quizOpts())

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if c.State() != StateLessonReady {
		t.Errorf("state = %s, want lesson preserved with no quiz", c.State())
	}
	if c.Quiz() != nil {
		t.Error("no partial quiz artifact may be stored")
	}
}

func TestNewLessonDiscardsQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Text: quizMD},
		llm.MockResponse{Text: "# Fresh lesson"},
	)
	c := New(mock, DefaultConfig())

	if _, err := c.RequestLesson(t.Context(), planner.ExampleInput()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.RequestQuiz(t.Context(), quizOpts()); err != nil {
		t.Fatal(err)
	}

	second, err := c.RequestLesson(t.Context(), planner.ExampleInput())
	if err != nil {
		t.Fatal(err)
	}

	if c.State() != StateLessonReady {
		t.Errorf("state = %s, want %s", c.State(), StateLessonReady)
	}
	if c.Quiz() != nil {
		t.Error("stale quiz must be discarded on lesson regeneration")
	}
	if got := c.Lesson(); got == nil || got.ID != second.ID {
		t.Error("expected the new lesson to be held")
	}
}

func TestRequestQuiz_ClampsCountAndFallsBackToSnapshotGrade(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Text: quizMD},
	)
	c := New(mock, DefaultConfig())

	if _, err := c.RequestLesson(t.Context(), planner.ExampleInput()); err != nil {
		t.Fatal(err)
	}

	opts := quizOpts()
	opts.QuestionCount = 99
	opts.Grade = ""
	if _, err := c.RequestQuiz(t.Context(), opts); err != nil {
		t.Fatal(err)
	}

	prompt := mock.Calls[1].Prompt
	if !strings.Contains(prompt, "exactly 15") {
		t.Error("question count should be clamped to 15")
	}
	if !strings.Contains(prompt, "Grade/Level: 5") {
		t.Error("grade should fall back to the lesson input snapshot")
	}
}

func TestReset(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: lessonMD},
		llm.MockResponse{Text: quizMD},
	)
	c := New(mock, DefaultConfig())

	if _, err := c.RequestLesson(t.Context(), planner.ExampleInput()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.RequestQuiz(t.Context(), quizOpts()); err != nil {
		t.Fatal(err)
	}

	c.Reset()

	if c.State() != StateEmpty {
		t.Errorf("state = %s, want %s", c.State(), StateEmpty)
	}
	if c.Lesson() != nil || c.Quiz() != nil {
		t.Error("both artifacts must be absent after reset")
	}

	// Reset from Empty is also fine.
	c.Reset()
	if c.State() != StateEmpty {
		t.Error("reset from empty should stay empty")
	}
}

func TestLessonRequestUsesPurposeAndSystemPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: lessonMD})
	c := New(mock, DefaultConfig())

	if _, err := c.RequestLesson(t.Context(), planner.ExampleInput()); err != nil {
		t.Fatal(err)
	}
	req := mock.Calls[0]
	if req.System != planner.LessonSystemPrompt {
		t.Error("expected lesson system prompt")
	}
	if req.MaxTokens != DefaultConfig().LessonMaxTokens {
		t.Errorf("max tokens = %d", req.MaxTokens)
	}
}
