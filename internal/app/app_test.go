package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/tasklist/internal/models"
	"github.com/tiwariParth/tasklist/internal/task"
)

type recordingConfirmer struct {
	answer  bool
	prompts []string
}

func (r *recordingConfirmer) Confirm(prompt string) bool {
	r.prompts = append(r.prompts, prompt)
	return r.answer
}

func TestRequestDeleteConfirmed(t *testing.T) {
	c := &recordingConfirmer{answer: true}
	a := NewTodoApp(task.NewManager(), c)
	added, err := a.AddTask("Buy milk")
	require.NoError(t, err)

	assert.True(t, a.RequestDelete(added.ID))

	assert.Equal(t, []string{DeletePrompt}, c.prompts)
	assert.True(t, a.View().Empty)
}

func TestRequestDeleteDeclined(t *testing.T) {
	c := &recordingConfirmer{answer: false}
	a := NewTodoApp(task.NewManager(), c)
	added, err := a.AddTask("Buy milk")
	require.NoError(t, err)

	assert.False(t, a.RequestDelete(added.ID))

	assert.Len(t, c.prompts, 1)
	assert.Equal(t, 1, a.View().Stats.Total)
}

func TestRequestDeleteUnknownID(t *testing.T) {
	a := NewTodoApp(task.NewManager(), nil)
	for _, text := range []string{"a", "b", "c"} {
		_, err := a.AddTask(text)
		require.NoError(t, err)
	}

	assert.True(t, a.RequestDelete(99))
	assert.Equal(t, 3, a.View().Stats.Total)
}

func TestView(t *testing.T) {
	a := NewTodoApp(task.NewManager(), AlwaysConfirm)

	v := a.View()
	assert.True(t, v.Empty)
	assert.Empty(t, v.Tasks)
	assert.Equal(t, models.Low, v.CurrentPriority)

	_, err := a.AddTask("low one")
	require.NoError(t, err)
	require.NoError(t, a.SetPriority(models.High))
	high, err := a.AddTask("high one")
	require.NoError(t, err)
	a.ToggleTask(high.ID)

	v = a.View()
	assert.False(t, v.Empty)
	assert.Equal(t, models.High, v.CurrentPriority)
	assert.Equal(t, task.Stats{Total: 2, Completed: 1, Pending: 1}, v.Stats)
	require.Len(t, v.Tasks, 2)
	assert.Equal(t, "low one", v.Tasks[0].Text)
	assert.Equal(t, "high one", v.Tasks[1].Text)
}

func TestAddTaskValidation(t *testing.T) {
	a := NewTodoApp(task.NewManager(), nil)

	_, err := a.AddTask("   ")
	assert.ErrorIs(t, err, task.ErrEmptyTask)
	assert.True(t, a.View().Empty)
}
