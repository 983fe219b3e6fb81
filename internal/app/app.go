package app

import (
	"github.com/tiwariParth/tasklist/internal/models"
	"github.com/tiwariParth/tasklist/internal/task"
)

// DeletePrompt is the question asked before a task is removed.
const DeletePrompt = "Are you sure you want to delete this task?"

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm skips the question and always agrees.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// View is everything a front end needs to draw the list.
type View struct {
	Tasks           []models.Task
	Stats           task.Stats
	Empty           bool
	CurrentPriority models.Priority
}

// TodoApp sits between a front end and the task manager.
type TodoApp struct {
	manager *task.Manager
	confirm Confirmer
}

func NewTodoApp(manager *task.Manager, confirm Confirmer) *TodoApp {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	return &TodoApp{manager: manager, confirm: confirm}
}

// Manager exposes the underlying manager for subscriptions.
func (a *TodoApp) Manager() *task.Manager {
	return a.manager
}

func (a *TodoApp) AddTask(text string) (models.Task, error) {
	return a.manager.AddTask(text)
}

func (a *TodoApp) ToggleTask(id int64) {
	a.manager.ToggleTask(id)
}

func (a *TodoApp) SetPriority(p models.Priority) error {
	return a.manager.SetPriority(p)
}

// RequestDelete asks for confirmation and deletes on a yes.
// It reports whether the user agreed.
func (a *TodoApp) RequestDelete(id int64) bool {
	if !a.confirm.Confirm(DeletePrompt) {
		return false
	}
	a.manager.DeleteTask(id)
	return true
}

// View snapshots the manager for rendering.
func (a *TodoApp) View() View {
	return View{
		Tasks:           a.manager.SortedView(),
		Stats:           a.manager.ComputeStats(),
		Empty:           a.manager.IsEmpty(),
		CurrentPriority: a.manager.CurrentPriority(),
	}
}
