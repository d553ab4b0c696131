package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shahzaib/lessonforge/internal/llm"
	"github.com/shahzaib/lessonforge/internal/planner"
)

// State names the workflow position. It is derived from which artifacts
// are held, so the quiz⟹lesson invariant cannot be violated by
// construction.
type State string

const (
	StateEmpty              State = "empty"
	StateLessonReady        State = "lesson-ready"
	StateLessonAndQuizReady State = "lesson-and-quiz-ready"
)

// LessonArtifact is a generated lesson plan. Immutable once created;
// a later generation replaces it wholesale.
type LessonArtifact struct {
	ID          uuid.UUID
	Markdown    string
	Input       planner.InputSet // snapshot of the inputs that produced it
	GeneratedAt time.Time
}

// QuizArtifact is a quiz derived from a specific lesson. LessonID
// always equals the ID of the lesson it was generated from.
type QuizArtifact struct {
	Markdown    string
	LessonID    uuid.UUID
	GeneratedAt time.Time
}

// QuizOptions are the settings current at quiz generation time.
type QuizOptions struct {
	QuestionCount int
	Grade         string
	Language      planner.Language
	Difficulty    planner.Difficulty
}

// Controller is the two-stage lesson→quiz state machine. It exclusively
// owns both artifacts. The mutex is held across each whole transition,
// including the blocking completion call, so at most one state-mutating
// operation is ever in flight.
type Controller struct {
	provider llm.Provider
	cfg      Config

	mu     sync.Mutex
	lesson *LessonArtifact
	quiz   *QuizArtifact
}

// New creates a Controller in the Empty state.
func New(provider llm.Provider, cfg Config) *Controller {
	return &Controller{provider: provider, cfg: cfg}
}

// State reports the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.quiz != nil:
		return StateLessonAndQuizReady
	case c.lesson != nil:
		return StateLessonReady
	default:
		return StateEmpty
	}
}

// Lesson returns the currently held lesson artifact, or nil.
func (c *Controller) Lesson() *LessonArtifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lesson
}

// Quiz returns the currently held quiz artifact, or nil.
func (c *Controller) Quiz() *QuizArtifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quiz
}

// RequestLesson validates the input, generates a lesson plan, and on
// success replaces the held lesson and discards any existing quiz.
// Valid from any state. On any failure the artifact set is untouched.
func (c *Controller) RequestLesson(ctx context.Context, input planner.InputSet) (*LessonArtifact, error) {
	if missing := input.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "lesson")
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      planner.LessonSystemPrompt,
		Prompt:      planner.BuildLessonPrompt(input),
		MaxTokens:   c.cfg.LessonMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "lesson", Err: err}
	}

	lesson := &LessonArtifact{
		ID:          uuid.New(),
		Markdown:    resp.Text,
		Input:       input,
		GeneratedAt: time.Now(),
	}

	// A new lesson invalidates any quiz derived from the old one.
	c.lesson = lesson
	c.quiz = nil
	return lesson, nil
}

// RequestQuiz generates a quiz from the currently held lesson. Valid
// only when a lesson is present. On failure the prior state, lesson
// included, is fully preserved.
func (c *Controller) RequestQuiz(ctx context.Context, opts QuizOptions) (*QuizArtifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lesson == nil {
		return nil, &PreconditionError{Reason: "no lesson present"}
	}

	grade := opts.Grade
	if grade == "" {
		grade = c.lesson.Input.Grade
	}
	count := planner.ClampQuestionCount(opts.QuestionCount)

	ctx = llm.WithPurpose(ctx, "quiz")
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      planner.QuizSystemPrompt,
		Prompt:      planner.BuildQuizPrompt(c.lesson.Markdown, grade, opts.Language, opts.Difficulty, count),
		MaxTokens:   c.cfg.QuizMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "quiz", Err: err}
	}

	quiz := &QuizArtifact{
		Markdown:    resp.Text,
		LessonID:    c.lesson.ID,
		GeneratedAt: time.Now(),
	}
	c.quiz = quiz
	return quiz, nil
}

// Reset clears both artifacts and returns to Empty. Never fails.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lesson = nil
	c.quiz = nil
}
