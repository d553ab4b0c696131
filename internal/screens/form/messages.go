package form

import (
	"time"

	"github.com/shahzaib/lessonforge/internal/workflow"
)

// lessonReadyMsg is sent when lesson generation finishes.
type lessonReadyMsg struct {
	Lesson *workflow.LessonArtifact
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
