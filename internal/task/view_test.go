package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/tasklist/internal/models"
)

func TestSortedViewByPriority(t *testing.T) {
	m := newTestManager()
	addAll(t, m, item{"low", models.Low}, item{"high", models.High}, item{"medium", models.Medium})

	assert.Equal(t, []string{"high", "medium", "low"}, texts(m.SortedView()))
}

func TestSortedViewIncompleteFirst(t *testing.T) {
	m := newTestManager()
	added := addAll(t, m, item{"A", models.Low}, item{"B", models.High})

	m.ToggleTask(added[0].ID)

	assert.Equal(t, []string{"B", "A"}, texts(m.SortedView()))

	// completed high still sorts after pending low
	m.ToggleTask(added[0].ID)
	m.ToggleTask(added[1].ID)
	assert.Equal(t, []string{"A", "B"}, texts(m.SortedView()))
}

func TestSortedViewStableForTies(t *testing.T) {
	m := newTestManager()
	addAll(t, m,
		item{"m1", models.Medium},
		item{"h1", models.High},
		item{"m2", models.Medium},
		item{"h2", models.High},
		item{"m3", models.Medium},
	)

	assert.Equal(t, []string{"h1", "h2", "m1", "m2", "m3"}, texts(m.SortedView()))
}

func TestSortedViewKeepsInsertionOrder(t *testing.T) {
	m := newTestManager()
	addAll(t, m, item{"low", models.Low}, item{"high", models.High}, item{"medium", models.Medium})

	_ = m.SortedView()
	_ = m.SortedView()

	assert.Equal(t, []string{"low", "high", "medium"}, texts(m.Tasks()))
}

func TestSortedViewOrdering(t *testing.T) {
	m := newTestManager()
	priorities := []models.Priority{models.Low, models.High, models.Medium, models.Low, models.High, models.Medium, models.Medium}
	for i, p := range priorities {
		require.NoError(t, m.SetPriority(p))
		task, err := m.AddTask("t")
		require.NoError(t, err)
		if i%3 == 0 {
			m.ToggleTask(task.ID)
		}
	}

	view := m.SortedView()
	require.Len(t, view, len(priorities))

	for i := 1; i < len(view); i++ {
		prev, cur := view[i-1], view[i]
		if prev.Completed != cur.Completed {
			assert.False(t, prev.Completed, "completed task before pending task at %d", i)
			continue
		}
		assert.GreaterOrEqual(t, prev.Priority.Rank(), cur.Priority.Rank(), "priority out of order at %d", i)
	}
}
