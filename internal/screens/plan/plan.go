package plan

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shahzaib/lessonforge/internal/export"
	"github.com/shahzaib/lessonforge/internal/router"
	"github.com/shahzaib/lessonforge/internal/screen"
	"github.com/shahzaib/lessonforge/internal/ui/layout"
	"github.com/shahzaib/lessonforge/internal/ui/theme"
	"github.com/shahzaib/lessonforge/internal/workflow"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// exportDirEnv overrides the export destination (default: working dir).
const exportDirEnv = "LESSONFORGE_EXPORT_DIR"

// pane selects which artifact the screen shows.
type pane int

const (
	paneLesson pane = iota
	paneQuiz
)

// PlanScreen shows the generated lesson plan and, once derived, the
// quiz. It drives quiz generation, export, and reset.
type PlanScreen struct {
	controller *workflow.Controller
	exporter   *export.Adapter
	timeout    time.Duration

	active       pane
	scroll       int
	busy         bool
	busyLabel    string
	spinnerFrame int
	statusMsg    string
	statusIsErr  bool
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates the plan view screen.
func New(controller *workflow.Controller, exporter *export.Adapter, timeout time.Duration) *PlanScreen {
	return &PlanScreen{
		controller: controller,
		exporter:   exporter,
		timeout:    timeout,
	}
}

func (p *PlanScreen) Title() string {
	if p.active == paneQuiz {
		return "Quiz"
	}
	return "Lesson Plan"
}

func (p *PlanScreen) Init() tea.Cmd {
	return nil
}

// KeyHints implements screen.KeyHintProvider.
func (p *PlanScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if p.controller.State() == workflow.StateLessonAndQuizReady {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Lesson/Quiz"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "G", Description: "Generate quiz"},
		layout.KeyHint{Key: "E", Description: "Export"},
		layout.KeyHint{Key: "R", Description: "Start over"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (p *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !p.busy {
			return p, nil
		}
		p.spinnerFrame = (p.spinnerFrame + 1) % len(spinnerFrames)
		return p, p.spinnerTick()

	case quizReadyMsg:
		p.busy = false
		if msg.Err != nil {
			p.setStatus(msg.Err.Error(), true)
			return p, nil
		}
		p.active = paneQuiz
		p.scroll = 0
		p.setStatus("Quiz ready.", false)
		return p, nil

	case exportDoneMsg:
		p.busy = false
		if msg.Err != nil {
			p.setStatus("Export failed: "+msg.Err.Error(), true)
			return p, nil
		}
		names := make([]string, 0, len(msg.Result.Files))
		for _, f := range msg.Result.Files {
			names = append(names, f.Name)
		}
		status := "Saved " + strings.Join(names, ", ")
		if msg.Result.DocErr != nil {
			status += " (" + msg.Result.DocErr.Error() + ")"
		}
		p.setStatus(status, false)
		return p, nil

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.scroll > 0 {
				p.scroll--
			}
		case "down", "j":
			p.scroll++
		case "pgup":
			p.scroll -= 10
			if p.scroll < 0 {
				p.scroll = 0
			}
		case "pgdown":
			p.scroll += 10
		case "home":
			p.scroll = 0
		case "tab":
			if p.controller.State() == workflow.StateLessonAndQuizReady {
				if p.active == paneLesson {
					p.active = paneQuiz
				} else {
					p.active = paneLesson
				}
				p.scroll = 0
			}
		case "g":
			return p, p.startQuiz()
		case "e":
			return p, p.startExport()
		case "r":
			p.controller.Reset()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return p, nil
}

func (p *PlanScreen) setStatus(msg string, isErr bool) {
	p.statusMsg = msg
	p.statusIsErr = isErr
}

func (p *PlanScreen) startQuiz() tea.Cmd {
	lesson := p.controller.Lesson()
	if lesson == nil {
		p.setStatus("No lesson to derive a quiz from.", true)
		return nil
	}

	p.busy = true
	p.busyLabel = "Generating quiz"
	p.setStatus("", false)

	opts := workflow.QuizOptions{
		QuestionCount: lesson.Input.QuizQuestionCount,
		Grade:         lesson.Input.Grade,
		Language:      lesson.Input.Language,
		Difficulty:    lesson.Input.Difficulty,
	}
	gen := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		quiz, err := p.controller.RequestQuiz(ctx, opts)
		return quizReadyMsg{Quiz: quiz, Err: err}
	}
	return tea.Batch(gen, p.spinnerTick())
}

func (p *PlanScreen) startExport() tea.Cmd {
	text := p.activeText()
	if text == "" {
		p.setStatus("Nothing to export.", true)
		return nil
	}

	dir := os.Getenv(exportDirEnv)
	if dir == "" {
		dir = "."
	}

	p.busy = true
	p.busyLabel = "Exporting"
	p.setStatus("", false)

	run := func() tea.Msg {
		res, err := p.exporter.SaveAll(dir, text)
		return exportDoneMsg{Result: res, Err: err}
	}
	return tea.Batch(run, p.spinnerTick())
}

func (p *PlanScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// activeText returns the markdown of the pane being shown.
func (p *PlanScreen) activeText() string {
	if p.active == paneQuiz {
		if quiz := p.controller.Quiz(); quiz != nil {
			return quiz.Markdown
		}
		return ""
	}
	if lesson := p.controller.Lesson(); lesson != nil {
		return lesson.Markdown
	}
	return ""
}

// wrapLines breaks text into display lines no wider than width.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			out = append(out, "")
			continue
		}
		words := strings.Fields(raw)
		if len(words) == 0 {
			out = append(out, raw)
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}

func (p *PlanScreen) View(width, height int) string {
	text := p.activeText()
	if text == "" {
		empty := theme.Hint.Render("No content yet.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	contentWidth := min(width-6, 100)
	lines := wrapLines(text, contentWidth)

	// Reserve two rows for the status/tab strip.
	viewHeight := height - 2
	if viewHeight < 1 {
		viewHeight = 1
	}

	maxScroll := len(lines) - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}

	end := p.scroll + viewHeight
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[p.scroll:end], "\n")

	body := lipgloss.NewStyle().
		Width(contentWidth).
		Render(visible)

	var strip string
	switch {
	case p.busy:
		strip = theme.Hint.Render(spinnerFrames[p.spinnerFrame] + " " + p.busyLabel + "…")
	case p.statusMsg != "" && p.statusIsErr:
		strip = theme.ErrorLine.Render("⚠ " + p.statusMsg)
	case p.statusMsg != "":
		strip = theme.SuccessLine.Render("✓ " + p.statusMsg)
	default:
		strip = theme.Hint.Render(p.paneStrip())
	}

	frame := strip + "\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, frame)
}

// paneStrip renders the lesson/quiz tab indicator and scroll position.
func (p *PlanScreen) paneStrip() string {
	lessonTab := " Lesson "
	quizTab := " Quiz "
	if p.active == paneLesson {
		lessonTab = theme.Selected.Render("[Lesson]")
	}
	if p.active == paneQuiz {
		quizTab = theme.Selected.Render("[Quiz]")
	}
	if p.controller.State() != workflow.StateLessonAndQuizReady {
		return lessonTab
	}
	return fmt.Sprintf("%s %s", lessonTab, quizTab)
}
