package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPriority is returned when a priority value is not low, medium or high.
var ErrInvalidPriority = errors.New("priority must be low, medium, or high")

// Priority represents the importance level of a task
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{Low, Medium, High}

// String returns the string representation of Priority
func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p >= Low && p <= High
}

// Rank returns the display weight of the priority: high=3, medium=2, low=1.
func (p Priority) Rank() int {
	if !p.Valid() {
		return 0
	}
	return int(p) + 1
}

// Next returns the following priority, wrapping from high back to low.
func (p Priority) Next() Priority {
	return Priorities[(int(p)+1)%len(Priorities)]
}

// Prev returns the preceding priority, wrapping from low to high.
func (p Priority) Prev() Priority {
	return Priorities[(int(p)+len(Priorities)-1)%len(Priorities)]
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	default:
		return Low, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// MarshalJSON encodes the priority by name.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrInvalidPriority
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a priority name.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Task represents a single to-do entry.
type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	CreatedAt string   `json:"createdAt"` // display-formatted date, no time
}

// Validate checks if the task has valid data
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("task text cannot be empty")
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Toggle flips the task between pending and completed.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Status returns "completed" or "pending".
func (t Task) Status() string {
	if t.Completed {
		return "completed"
	}
	return "pending"
}
