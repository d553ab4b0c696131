package plan

import (
	"time"

	"github.com/shahzaib/lessonforge/internal/export"
	"github.com/shahzaib/lessonforge/internal/workflow"
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *workflow.QuizArtifact
	Err  error
}

// exportDoneMsg is sent when the export pass finishes.
type exportDoneMsg struct {
	Result export.Result
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
