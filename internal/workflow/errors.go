package workflow

import (
	"fmt"
	"strings"
)

// ValidationError indicates required input fields were empty. No remote
// call was made and the workflow state is unchanged; the user corrects
// the input and retries.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// PreconditionError indicates an operation was attempted out of valid
// state order (e.g. requesting a quiz with no lesson present).
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// GenerationError indicates the completion call failed or returned
// nothing usable. Previously held artifacts are preserved untouched.
type GenerationError struct {
	Stage string // "lesson" or "quiz"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
