package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiwariParth/tasklist/internal/app"
	"github.com/tiwariParth/tasklist/internal/models"
	"github.com/tiwariParth/tasklist/internal/task"
)

// Options controls the terminal UI.
type Options struct {
	ConfirmDelete bool
}

// Model is the bubbletea model for the task list screen.
type Model struct {
	app        *app.TodoApp
	opts       Options
	view       app.View
	input      textinput.Model
	cursor     int
	status     string
	confirmDel bool
	pendingDel *models.Task
}

// Run starts the full-screen UI and blocks until the user quits.
func Run(manager *task.Manager, opts Options) error {
	program := tea.NewProgram(NewModel(manager, opts))
	_, err := program.Run()
	return err
}

// NewModel builds the initial model. Confirmation is handled by the model
// itself, so the app deletes unconditionally once the user says yes.
func NewModel(manager *task.Manager, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Width = 40
	ti.Focus()

	m := Model{
		app:    app.NewTodoApp(manager, app.AlwaysConfirm),
		opts:   opts,
		input:  ti,
		status: "enter add • tab priority • ↑/↓ move • ctrl+t toggle • ctrl+d delete • esc quit",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m.addTask()
	case "tab":
		return m.setPriority(m.view.CurrentPriority.Next())
	case "shift+tab":
		return m.setPriority(m.view.CurrentPriority.Prev())
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		m.cursor = clampCursor(m.cursor+1, len(m.view.Tasks))
		return m, nil
	case "ctrl+t":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.app.ToggleTask(t.ID)
		m.refresh()
		m.follow(t.ID)
		if t.Completed {
			m.status = fmt.Sprintf("Reopened %q", t.Text)
		} else {
			m.status = fmt.Sprintf("Completed %q", t.Text)
		}
		return m, nil
	case "ctrl+d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !m.opts.ConfirmDelete {
			return m.deleteTask(t)
		}
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Text)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) addTask() (tea.Model, tea.Cmd) {
	t, err := m.app.AddTask(m.input.Value())
	if err != nil {
		var verr *task.ValidationError
		if errors.As(err, &verr) {
			m.status = verr.Message
		} else {
			m.status = fmt.Sprintf("add failed: %v", err)
		}
		return m, nil
	}

	m.input.SetValue("")
	m.refresh()
	m.status = fmt.Sprintf("Added %q (%s)", t.Text, t.Priority)
	return m, nil
}

func (m Model) setPriority(p models.Priority) (tea.Model, tea.Cmd) {
	if err := m.app.SetPriority(p); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.refresh()
	m.status = fmt.Sprintf("New tasks get %s priority", p)
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		t := *m.pendingDel
		m.confirmDel = false
		m.pendingDel = nil
		return m.deleteTask(t)
	case "n", "N", "esc":
		m.confirmDel = false
		m.pendingDel = nil
		m.status = "Delete cancelled"
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m Model) deleteTask(t models.Task) (tea.Model, tea.Cmd) {
	m.app.RequestDelete(t.ID)
	m.refresh()
	m.status = fmt.Sprintf("Deleted %q", t.Text)
	return m, nil
}

func (m *Model) refresh() {
	m.view = m.app.View()
	m.cursor = clampCursor(m.cursor, len(m.view.Tasks))
}

// follow moves the cursor onto the task with id after the list re-sorts.
func (m *Model) follow(id int64) {
	for i, t := range m.view.Tasks {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) selected() (models.Task, bool) {
	if len(m.view.Tasks) == 0 {
		return models.Task{}, false
	}
	return m.view.Tasks[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("Task List")
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(renderPriorities(m.view.CurrentPriority))
	b.WriteString("\n\n")

	if m.view.Empty {
		b.WriteString("No tasks yet. Add one above!")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(renderStats(m.view.Stats))
	b.WriteString("\n---\n")
	b.WriteString(m.status)
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.view.Tasks {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		fmt.Fprintf(&b, "%s %s %-6s %s  %s\n", cursor, checkbox, t.Priority, t.Text, t.CreatedAt)
	}
	return b.String()
}

func renderPriorities(current models.Priority) string {
	parts := make([]string, 0, len(models.Priorities))
	for _, p := range models.Priorities {
		if p == current {
			parts = append(parts, "("+p.String()+")")
		} else {
			parts = append(parts, " "+p.String()+" ")
		}
	}
	return "Priority: " + strings.Join(parts, " ")
}

func renderStats(s task.Stats) string {
	return fmt.Sprintf("Total: %d  Completed: %d  Pending: %d", s.Total, s.Completed, s.Pending)
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
