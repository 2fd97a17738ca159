// Package ui provides the full-screen terminal interface.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/output"
	"todo/internal/service"
)

// ErrTTYRequired is returned by Run when output is not a terminal.
var ErrTTYRequired = errors.New("tui requires a TTY")

// Options configures the terminal UI.
type Options struct {
	// HideCompleted starts with completed tasks hidden.
	HideCompleted bool
}

// Run starts the terminal UI on svc and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, svc service.Service, out io.Writer, opts Options) error {
	if !IsTTY(out) {
		return ErrTTYRequired
	}

	program := tea.NewProgram(NewModel(svc, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	countStyle  = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)

// Model is the bubbletea model of the task list. It holds no task state of
// its own; every frame is rendered from the service.
type Model struct {
	svc           service.Service
	input         textinput.Model
	focus         focus
	cursor        int
	hideCompleted bool
	showHelp      bool
}

// NewModel creates a model with the new-task input focused.
func NewModel(svc service.Service, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "+ "
	input.CharLimit = 500
	input.Focus()

	return &Model{
		svc:           svc,
		input:         input,
		focus:         focusInput,
		hideCompleted: opts.HideCompleted,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.switchFocus()
		return m, nil
	}

	if m.focus == focusInput {
		return m.updateInput(key)
	}
	return m.updateList(key)
}

func (m *Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if _, ok := m.svc.Add(m.input.Value()); ok {
			m.input.Reset()
		}
		return m, nil
	case "esc":
		m.switchFocus()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.visible()

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if m.cursor < len(tasks) {
			m.svc.Toggle(tasks[m.cursor].ID)
		}
	case "d", "delete", "backspace":
		if m.cursor < len(tasks) {
			m.svc.Remove(tasks[m.cursor].ID)
		}
	case "h":
		m.hideCompleted = !m.hideCompleted
	case "a", "i":
		m.switchFocus()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) switchFocus() {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visible returns the tasks shown in the list, in insertion order.
func (m *Model) visible() []service.Task {
	tasks := m.svc.List()
	if !m.hideCompleted {
		return tasks
	}
	shown := tasks[:0]
	for _, t := range tasks {
		if !t.Completed {
			shown = append(shown, t)
		}
	}
	return shown
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)
	b.WriteString(countStyle.Render(output.Counts(m.svc.Remaining(), m.svc.Total())))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.focus)
		return b.String()
	}

	m.writeTasks(&b)
	writeFooter(&b, m.focus)
	return b.String()
}

func (m *Model) writeTasks(b *strings.Builder) {
	tasks := m.visible()
	if len(tasks) == 0 {
		if m.hideCompleted && m.svc.Total() > 0 {
			b.WriteString("  All tasks completed.\n\n")
		} else {
			b.WriteString("  No tasks yet.\n\n")
		}
		return
	}

	for i, t := range tasks {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		text := t.Text
		if t.Completed {
			text = doneStyle.Render(text)
		}
		fmt.Fprintf(b, "%s%s %s\n", marker, output.Checkbox(t.Completed), text)
	}
	b.WriteString("\n")
}

func writeTitle(b *strings.Builder) {
	title := "Todo"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  tab          Switch between input and list\n")
	b.WriteString("  enter        Add task (input) / toggle task (list)\n")
	b.WriteString("  up, k        Move up\n")
	b.WriteString("  down, j      Move down\n")
	b.WriteString("  space, x     Toggle completed\n")
	b.WriteString("  d, delete    Delete task\n")
	b.WriteString("  h            Hide or show completed tasks\n")
	b.WriteString("  ?            Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
}

func writeFooter(b *strings.Builder, f focus) {
	if f == focusInput {
		b.WriteString("enter to add | tab for list | ctrl+c to quit\n")
		return
	}
	b.WriteString("? for help | tab to type | q to quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// IsTTYReader returns true if r is a terminal.
func IsTTYReader(r io.Reader) bool {
	w, ok := r.(*os.File)
	if !ok {
		return false
	}
	return IsTTY(w)
}
