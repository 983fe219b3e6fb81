package task

import "github.com/tiwariParth/tasklist/internal/models"

// EventKind identifies what changed in a Manager.
type EventKind int

const (
	TaskAdded EventKind = iota
	TaskToggled
	TaskDeleted
	PriorityChanged
	TasksReset
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case TaskAdded:
		return "task_added"
	case TaskToggled:
		return "task_toggled"
	case TaskDeleted:
		return "task_deleted"
	case PriorityChanged:
		return "priority_changed"
	case TasksReset:
		return "tasks_reset"
	default:
		return "unknown"
	}
}

// Event describes a completed mutation. Task is zero for PriorityChanged
// and TasksReset.
type Event struct {
	Kind     EventKind
	Task     models.Task
	Priority models.Priority
}

// Listener is called synchronously after each mutation.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	m.nextListener++
	id := m.nextListener
	m.listeners = append(m.listeners, subscription{id: id, fn: l})

	return func() {
		for i, s := range m.listeners {
			if s.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) emit(e Event) {
	// copy so a listener may unsubscribe while being notified
	subs := append([]subscription(nil), m.listeners...)
	for _, s := range subs {
		s.fn(e)
	}
}
