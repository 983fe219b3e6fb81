package task

import (
	"sort"

	"github.com/tiwariParth/tasklist/internal/models"
)

// Stats holds the running task counts.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// ComputeStats counts total, completed and pending tasks.
func (m *Manager) ComputeStats() Stats {
	var stats Stats
	for _, t := range m.tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// SortedView returns a display-ordered copy of the tasks: pending before
// completed, then high, medium, low. Equal tasks keep insertion order.
func (m *Manager) SortedView() []models.Task {
	view := m.Tasks()
	sort.SliceStable(view, func(i, j int) bool {
		return displayLess(view[i], view[j])
	})
	return view
}

func displayLess(a, b models.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	return a.Priority.Rank() > b.Priority.Rank()
}
