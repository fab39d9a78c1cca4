package tasklist

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/taskcompletion/internal/models"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newTestController(t *testing.T, descriptions ...string) *Controller {
	t.Helper()
	c := New(WithIDFunc(sequentialIDs()))
	for _, d := range descriptions {
		c.SetPendingInput(d)
		c.SubmitPendingInput()
	}
	require.Equal(t, len(descriptions), c.Len())
	return c
}

func TestSubmitPendingInput(t *testing.T) {
	c := newTestController(t, "first")

	c.SetPendingInput("Buy milk")
	c.SubmitPendingInput()

	s := c.State()
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, "Buy milk", s.Tasks[1].Description)
	assert.False(t, s.Tasks[1].IsCompleted)
	assert.Empty(t, s.PendingInput)
}

func TestSubmitEmptyIsNoop(t *testing.T) {
	c := newTestController(t, "a", "b")
	before := c.State()

	c.SubmitPendingInput()

	assert.Equal(t, before, c.State())
}

func TestSubmitKeepsWhitespaceAndDuplicates(t *testing.T) {
	c := newTestController(t, "   ", "dup", "dup")

	s := c.State()
	require.Len(t, s.Tasks, 3)
	assert.Equal(t, "   ", s.Tasks[0].Description)
	assert.Equal(t, "dup", s.Tasks[1].Description)
	assert.Equal(t, "dup", s.Tasks[2].Description)
	assert.NotEqual(t, s.Tasks[1].ID, s.Tasks[2].ID)
}

func TestSetPendingInputAcceptsAnything(t *testing.T) {
	c := New()
	c.SetPendingInput("draft")
	assert.Equal(t, "draft", c.State().PendingInput)
	c.SetPendingInput("")
	assert.Equal(t, "", c.State().PendingInput)
	assert.Zero(t, c.Len())
}

func TestToggleCompletionAffectsOnlyTarget(t *testing.T) {
	c := newTestController(t, "a", "b", "c")
	before := c.State()

	c.ToggleCompletion(1, true)

	after := c.State()
	require.Len(t, after.Tasks, 3)
	for i := range after.Tasks {
		assert.Equal(t, before.Tasks[i].ID, after.Tasks[i].ID)
		assert.Equal(t, before.Tasks[i].Description, after.Tasks[i].Description)
		if i == 1 {
			assert.True(t, after.Tasks[i].IsCompleted)
		} else {
			assert.Equal(t, before.Tasks[i].IsCompleted, after.Tasks[i].IsCompleted)
		}
	}

	c.ToggleCompletion(1, false)
	assert.False(t, c.State().Tasks[1].IsCompleted)
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	c := newTestController(t, "a")
	before := c.State()

	c.ToggleCompletion(-1, true)
	c.ToggleCompletion(1, true)
	c.ToggleByID("missing", true)

	assert.Equal(t, before, c.State())
}

func TestToggleByID(t *testing.T) {
	c := newTestController(t, "a", "b")

	c.ToggleByID("t2", true)

	s := c.State()
	assert.False(t, s.Tasks[0].IsCompleted)
	assert.True(t, s.Tasks[1].IsCompleted)
}

func TestClearCompleted(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		want      []string
	}{
		{"mixed", []int{1, 2}, []string{"A", "D"}},
		{"none completed", nil, []string{"A", "B", "C", "D"}},
		{"all completed", []int{0, 1, 2, 3}, []string{}},
		{"first and last", []int{0, 3}, []string{"B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, "A", "B", "C", "D")
			for _, i := range tt.completed {
				c.ToggleCompletion(i, true)
			}

			c.ClearCompleted()

			got := []string{}
			for _, task := range c.State().Tasks {
				assert.False(t, task.IsCompleted)
				got = append(got, task.Description)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClearCompletedIdempotent(t *testing.T) {
	c := newTestController(t, "A", "B", "C")
	c.ToggleCompletion(1, true)

	c.ClearCompleted()
	once := c.State()
	c.ClearCompleted()

	assert.Equal(t, once, c.State())
}

func TestEndToEndScenario(t *testing.T) {
	c := New()
	c.SetPendingInput("Buy milk")
	c.SubmitPendingInput()
	c.SetPendingInput("Walk dog")
	c.SubmitPendingInput()
	c.ToggleCompletion(0, true)
	c.ClearCompleted()

	s := c.State()
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "Walk dog", s.Tasks[0].Description)
	assert.False(t, s.Tasks[0].IsCompleted)
	assert.NotEmpty(t, s.Tasks[0].ID)
}

func TestSubscribeNotifiesAfterEveryOperation(t *testing.T) {
	c := New(WithIDFunc(sequentialIDs()))
	var got []State
	c.Subscribe(func(s State) { got = append(got, s) })

	c.SetPendingInput("x")
	c.SubmitPendingInput()
	c.SubmitPendingInput() // no-op still re-renders
	c.ToggleCompletion(0, true)
	c.ClearCompleted()

	require.Len(t, got, 5)
	assert.Equal(t, "x", got[0].PendingInput)
	assert.Len(t, got[1].Tasks, 1)
	assert.True(t, got[3].Tasks[0].IsCompleted)
	assert.Empty(t, got[4].Tasks)
}

func TestSubscribeReplacesCallback(t *testing.T) {
	c := New()
	first, second := 0, 0
	c.Subscribe(func(State) { first++ })
	c.Subscribe(func(State) { second++ })

	c.SetPendingInput("a")
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	c.Subscribe(nil)
	c.SetPendingInput("b")
	assert.Equal(t, 1, second)
}

func TestStateIsSnapshot(t *testing.T) {
	c := newTestController(t, "a")

	s := c.State()
	s.Tasks[0] = models.Task{Description: "mutated", IsCompleted: true}

	assert.Equal(t, "a", c.State().Tasks[0].Description)
	assert.False(t, c.State().Tasks[0].IsCompleted)
}

func TestCompletedCount(t *testing.T) {
	c := newTestController(t, "a", "b", "c")
	c.ToggleCompletion(0, true)
	c.ToggleCompletion(2, true)
	assert.Equal(t, 2, c.State().CompletedCount())
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := New(WithLogger(logger), WithIDFunc(sequentialIDs()))

	c.SetPendingInput("a")
	c.SubmitPendingInput()
	c.ToggleCompletion(5, true)

	out := buf.String()
	assert.Contains(t, out, "task added")
	assert.Contains(t, out, "id=t1")
	assert.Contains(t, out, "toggle ignored")
}
