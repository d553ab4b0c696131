package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/shahzaib/lessonforge/internal/ui/theme"
)

// Selector is a horizontal picker over a fixed option set
// (e.g. output language, difficulty).
type Selector struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewSelector creates a selector with the given options.
func NewSelector(label string, options []string) Selector {
	return Selector{
		Label:   label,
		Options: options,
	}
}

// Focus gives the selector keyboard focus.
func (s *Selector) Focus() {
	s.focused = true
}

// Blur removes keyboard focus.
func (s *Selector) Blur() {
	s.focused = false
}

// Focused reports whether the selector has focus.
func (s Selector) Focused() bool {
	return s.focused
}

// Update handles left/right cycling while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected--
		if s.Selected < 0 {
			s.Selected = len(s.Options) - 1
		}
	case "right", "l", "space":
		s.Selected++
		if s.Selected >= len(s.Options) {
			s.Selected = 0
		}
	}

	return s, nil
}

// View renders the selector as a row of options.
func (s Selector) View() string {
	label := theme.Label.Render(s.Label)
	if s.focused {
		label = theme.LabelFocused.Render(s.Label)
	}

	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			parts = append(parts, theme.Selected.Render("["+opt+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+opt+" "))
		}
	}

	return label + "\n" + strings.Join(parts, " ")
}

// Value returns the selected option.
func (s Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Selected]
}

// SetValue selects the given option if present.
func (s *Selector) SetValue(v string) {
	for i, opt := range s.Options {
		if opt == v {
			s.Selected = i
			return
		}
	}
}
