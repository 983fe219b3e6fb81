package task

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/tiwariParth/tasklist/internal/models"
	"github.com/tiwariParth/tasklist/internal/storage"
	"github.com/tiwariParth/tasklist/internal/storage/memory"
)

// DefaultDateLayout matches the short en-US date used for CreatedAt.
const DefaultDateLayout = "1/2/2006"

// Manager owns the ordered collection of tasks for one session.
// It is not safe for concurrent use; callers serialize access.
type Manager struct {
	tasks           []models.Task // insertion order
	nextID          int64
	currentPriority models.Priority

	now        func() time.Time
	dateLayout string
	snapshots  storage.Snapshotter
	logger     *slog.Logger

	listeners    []subscription
	nextListener int
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithDateLayout sets the time layout used to format CreatedAt.
func WithDateLayout(layout string) Option {
	return func(m *Manager) {
		if layout != "" {
			m.dateLayout = layout
		}
	}
}

// WithDefaultPriority sets the priority assigned before any SetPriority call.
func WithDefaultPriority(p models.Priority) Option {
	return func(m *Manager) { m.currentPriority = p }
}

// WithSnapshotter replaces the in-memory snapshot sink.
func WithSnapshotter(s storage.Snapshotter) Option {
	return func(m *Manager) { m.snapshots = s }
}

// WithLogger sets the logger used for debug tracing of mutations.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a Manager and starts its session with LoadTasks.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		tasks:           make([]models.Task, 0),
		nextID:          1,
		currentPriority: models.Low,
		now:             time.Now,
		dateLayout:      DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(m)
	}

	if !m.currentPriority.Valid() {
		m.currentPriority = models.Low
	}
	if m.snapshots == nil {
		m.snapshots = memory.NewStore()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m.LoadTasks()
	return m
}

// SetPriority sets the priority given to the next added task.
func (m *Manager) SetPriority(p models.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("set priority %d: %w", int(p), models.ErrInvalidPriority)
	}

	m.currentPriority = p
	m.logger.Debug("priority set", "priority", p.String())
	m.emit(Event{Kind: PriorityChanged, Priority: p})
	return nil
}

// CurrentPriority returns the priority the next added task will get.
func (m *Manager) CurrentPriority() models.Priority {
	return m.currentPriority
}

// AddTask creates a pending task from text using the current priority.
// Blank text yields a *ValidationError and leaves the list untouched.
func (m *Manager) AddTask(text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, &ValidationError{Message: EmptyTaskMessage}
	}

	task := models.Task{
		ID:        m.nextID,
		Text:      text,
		Completed: false,
		Priority:  m.currentPriority,
		CreatedAt: m.now().Format(m.dateLayout),
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	m.tasks = append(m.tasks, task)
	m.nextID++

	m.logger.Debug("task added", "id", task.ID, "priority", task.Priority.String())
	m.save()
	m.emit(Event{Kind: TaskAdded, Task: task, Priority: task.Priority})
	return task, nil
}

// ToggleTask flips the completion state of the task with id.
// Unknown ids are ignored.
func (m *Manager) ToggleTask(id int64) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}

	m.tasks[i].Toggle()
	task := m.tasks[i]

	m.logger.Debug("task toggled", "id", id, "completed", task.Completed)
	m.save()
	m.emit(Event{Kind: TaskToggled, Task: task, Priority: task.Priority})
}

// DeleteTask removes the task with id. Unknown ids are ignored.
// Asking the user for confirmation is the caller's job.
func (m *Manager) DeleteTask(id int64) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}

	task := m.tasks[i]
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)

	m.logger.Debug("task deleted", "id", id)
	m.save()
	m.emit(Event{Kind: TaskDeleted, Task: task, Priority: task.Priority})
}

// IsEmpty reports whether there are no tasks.
func (m *Manager) IsEmpty() bool {
	return len(m.tasks) == 0
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Tasks returns a copy of the tasks in insertion order.
func (m *Manager) Tasks() []models.Task {
	out := make([]models.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Get returns the task with id.
func (m *Manager) Get(id int64) (models.Task, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return m.tasks[i], true
}

// SaveTasks hands a JSON snapshot of the list to the snapshot sink.
func (m *Manager) SaveTasks() error {
	data, err := json.Marshal(m.tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := m.snapshots.Save(data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadTasks starts the session over with an empty list. A snapshot left in
// the sink is discarded, never read back into the list.
func (m *Manager) LoadTasks() {
	if data, err := m.snapshots.Load(); err == nil {
		m.logger.Debug("discarding snapshot", "bytes", len(data))
		m.snapshots.Clear()
	}

	m.tasks = make([]models.Task, 0)
	m.logger.Debug("tasks reset")
	m.emit(Event{Kind: TasksReset, Priority: m.currentPriority})
}

// Close releases the snapshot sink. Mutations keep working afterwards but
// no longer produce snapshots.
func (m *Manager) Close() error {
	if err := m.snapshots.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot sink: %w", err)
	}
	return nil
}

func (m *Manager) save() {
	if err := m.SaveTasks(); err != nil {
		m.logger.Warn("snapshot failed", "error", err)
	}
}

func (m *Manager) indexOf(id int64) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
