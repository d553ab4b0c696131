package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shahzaib/lessonforge/internal/export"
	"github.com/shahzaib/lessonforge/internal/planner"
	"github.com/shahzaib/lessonforge/internal/router"
	"github.com/shahzaib/lessonforge/internal/screen"
	"github.com/shahzaib/lessonforge/internal/screens/plan"
	"github.com/shahzaib/lessonforge/internal/ui/components"
	"github.com/shahzaib/lessonforge/internal/ui/layout"
	"github.com/shahzaib/lessonforge/internal/ui/theme"
	"github.com/shahzaib/lessonforge/internal/workflow"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Field indices into the focus order.
const (
	fieldSubject = iota
	fieldTopic
	fieldGrade
	fieldDuration
	fieldObjectives
	fieldCustomization
	fieldDifficulty
	fieldLanguage
	fieldQuestions
	fieldGenerate
	fieldCount
)

// FormScreen collects the lesson parameters and triggers generation.
type FormScreen struct {
	controller *workflow.Controller
	exporter   *export.Adapter
	timeout    time.Duration
	hasLLM     bool

	inputs     map[int]*components.TextInput
	difficulty components.Selector
	language   components.Selector

	focus        int
	generating   bool
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the input form screen.
func New(controller *workflow.Controller, exporter *export.Adapter, timeout time.Duration, hasLLM bool) *FormScreen {
	inputs := map[int]*components.TextInput{}

	add := func(idx int, label, placeholder string, limit int) {
		ti := components.NewTextInput(label, placeholder, limit)
		inputs[idx] = &ti
	}
	add(fieldSubject, "Subject", "e.g. Science", 80)
	add(fieldTopic, "Topic", "e.g. The Solar System", 120)
	add(fieldGrade, "Grade / Level", "e.g. 5", 40)
	add(fieldDuration, "Duration", "e.g. 1 hour", 40)
	add(fieldObjectives, "Learning Objectives (measurable outcomes)", "Students will be able to…", 500)
	add(fieldCustomization, "Customization (optional: tone, activities, classroom context)", "", 500)

	questions := components.NewTextInput(
		fmt.Sprintf("Quiz questions (%d-%d)", planner.MinQuestionCount, planner.MaxQuestionCount),
		"", 2)
	questions.NumericOnly = true
	questions.SetValue(fmt.Sprintf("%d", planner.DefaultQuestionCount))
	inputs[fieldQuestions] = &questions

	diffOpts := make([]string, len(planner.Difficulties))
	for i, d := range planner.Difficulties {
		diffOpts[i] = string(d)
	}
	difficulty := components.NewSelector("Difficulty", diffOpts)
	difficulty.SetValue(string(planner.DifficultyMedium))

	langOpts := make([]string, len(planner.Languages))
	for i, l := range planner.Languages {
		langOpts[i] = string(l)
	}
	language := components.NewSelector("Output language", langOpts)

	f := &FormScreen{
		controller: controller,
		exporter:   exporter,
		timeout:    timeout,
		hasLLM:     hasLLM,
		inputs:     inputs,
		difficulty: difficulty,
		language:   language,
	}
	f.setFocus(fieldSubject)
	return f
}

func (f *FormScreen) Title() string {
	return "New Lesson Plan"
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[fieldSubject].Focus()
}

// KeyHints implements screen.KeyHintProvider.
func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Ctrl+E", Description: "Example inputs"},
	}
	if f.controller.State() != workflow.StateEmpty {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "View lesson"})
	}
	return hints
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !f.generating {
			return f, nil
		}
		f.spinnerFrame = (f.spinnerFrame + 1) % len(spinnerFrames)
		return f, f.spinnerTick()

	case lessonReadyMsg:
		f.generating = false
		if msg.Err != nil {
			f.errMsg = msg.Err.Error()
			return f, nil
		}
		f.errMsg = ""
		planScreen := plan.New(f.controller, f.exporter, f.timeout)
		return f, func() tea.Msg { return router.PushScreenMsg{Screen: planScreen} }

	case tea.KeyMsg:
		if f.generating {
			// Single-flight: no triggers while a call is outstanding.
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			return f, f.moveFocus(1)
		case "shift+tab", "up":
			return f, f.moveFocus(-1)
		case "ctrl+e":
			f.prefillExample()
			return f, nil
		case "ctrl+l":
			if f.controller.State() != workflow.StateEmpty {
				planScreen := plan.New(f.controller, f.exporter, f.timeout)
				return f, func() tea.Msg { return router.PushScreenMsg{Screen: planScreen} }
			}
			return f, nil
		case "enter":
			if f.focus == fieldGenerate {
				return f, f.startGeneration()
			}
			// Enter on an input advances focus, like the examples toggle flow.
			if f.focus != fieldDifficulty && f.focus != fieldLanguage {
				return f, f.moveFocus(1)
			}
		}
	}

	return f, f.updateFocused(msg)
}

// updateFocused forwards a message to the focused component.
func (f *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldDifficulty:
		f.difficulty, cmd = f.difficulty.Update(msg)
	case fieldLanguage:
		f.language, cmd = f.language.Update(msg)
	case fieldGenerate:
		// Button handled in Update via enter.
	default:
		ti := f.inputs[f.focus]
		*ti, cmd = ti.Update(msg)
	}
	return cmd
}

func (f *FormScreen) moveFocus(delta int) tea.Cmd {
	next := (f.focus + delta + fieldCount) % fieldCount
	return f.setFocus(next)
}

func (f *FormScreen) setFocus(idx int) tea.Cmd {
	for _, ti := range f.inputs {
		ti.Blur()
	}
	f.difficulty.Blur()
	f.language.Blur()

	f.focus = idx
	switch idx {
	case fieldDifficulty:
		f.difficulty.Focus()
	case fieldLanguage:
		f.language.Focus()
	case fieldGenerate:
		// Nothing to focus.
	default:
		return f.inputs[idx].Focus()
	}
	return nil
}

// prefillExample fills the form with the demo inputs.
func (f *FormScreen) prefillExample() {
	ex := planner.ExampleInput()
	f.inputs[fieldSubject].SetValue(ex.Subject)
	f.inputs[fieldTopic].SetValue(ex.Topic)
	f.inputs[fieldGrade].SetValue(ex.Grade)
	f.inputs[fieldDuration].SetValue(ex.Duration)
	f.inputs[fieldObjectives].SetValue(ex.LearningObjectives)
	f.inputs[fieldCustomization].SetValue(ex.Customization)
	f.inputs[fieldQuestions].SetValue(fmt.Sprintf("%d", ex.QuizQuestionCount))
	f.difficulty.SetValue(string(ex.Difficulty))
	f.language.SetValue(string(ex.Language))
	f.errMsg = ""
}

// inputSet reads the current form values.
func (f *FormScreen) inputSet() planner.InputSet {
	count := planner.DefaultQuestionCount
	if n, err := f.inputs[fieldQuestions].NumericValue(); err == nil {
		count = planner.ClampQuestionCount(n)
	}

	return planner.InputSet{
		Subject:            strings.TrimSpace(f.inputs[fieldSubject].Value()),
		Topic:              strings.TrimSpace(f.inputs[fieldTopic].Value()),
		Grade:              strings.TrimSpace(f.inputs[fieldGrade].Value()),
		Duration:           strings.TrimSpace(f.inputs[fieldDuration].Value()),
		LearningObjectives: strings.TrimSpace(f.inputs[fieldObjectives].Value()),
		Customization:      strings.TrimSpace(f.inputs[fieldCustomization].Value()),
		Difficulty:         planner.Difficulty(f.difficulty.Value()),
		Language:           planner.Language(f.language.Value()),
		QuizQuestionCount:  count,
	}
}

func (f *FormScreen) startGeneration() tea.Cmd {
	if !f.hasLLM {
		f.errMsg = "No LLM provider configured. Set GROQ_API_KEY (or 'key') and restart."
		return nil
	}

	input := f.inputSet()
	if missing := input.MissingFields(); len(missing) > 0 {
		f.errMsg = "Please fill out: " + strings.Join(missing, ", ")
		return nil
	}

	f.generating = true
	f.errMsg = ""

	gen := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()
		lesson, err := f.controller.RequestLesson(ctx, input)
		return lessonReadyMsg{Lesson: lesson, Err: err}
	}
	return tea.Batch(gen, f.spinnerTick())
}

func (f *FormScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Generate a classroom-ready lesson plan"))
	b.WriteString("\n\n")

	order := []int{fieldSubject, fieldTopic, fieldGrade, fieldDuration, fieldObjectives, fieldCustomization}
	for _, idx := range order {
		b.WriteString(f.inputs[idx].View())
		b.WriteString("\n\n")
	}

	b.WriteString(f.difficulty.View())
	b.WriteString("\n\n")
	b.WriteString(f.language.View())
	b.WriteString("\n\n")
	b.WriteString(f.inputs[fieldQuestions].View())
	b.WriteString("\n\n")

	if f.generating {
		b.WriteString(theme.Hint.Render(spinnerFrames[f.spinnerFrame] + " Generating lesson plan…"))
	} else {
		button := components.NewButton("Generate Lesson Plan", f.focus == fieldGenerate, nil)
		b.WriteString(button.View())
	}
	b.WriteString("\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorLine.Render("⚠ " + f.errMsg))
		b.WriteString("\n")
	}

	content := lipgloss.NewStyle().
		Width(min(width-4, 90)).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
