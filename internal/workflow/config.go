package workflow

// Config holds generation settings for both stages.
type Config struct {
	LessonMaxTokens int
	QuizMaxTokens   int
	Temperature     float64
}

// DefaultConfig returns sensible defaults. Lesson plans are long-form
// documents; quizzes are shorter.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens: 4096,
		QuizMaxTokens:   2048,
		Temperature:     0.5,
	}
}
