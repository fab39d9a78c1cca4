// Package tasklist owns the in-memory task list for a single screen.
//
// A Controller is the only mutator of the list and the pending input text.
// After every operation it hands a snapshot of its state to the single
// registered rendering callback. There is no persistence; state lives as long
// as the Controller does.
package tasklist

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tgienger/taskcompletion/internal/models"
)

// State is a read-only snapshot of the controller
type State struct {
	PendingInput string
	Tasks        []models.Task
}

// CompletedCount returns the number of completed tasks in the snapshot
func (s State) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.IsCompleted {
			n++
		}
	}
	return n
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used to trace mutations
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDFunc overrides task ID generation
func WithIDFunc(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// Controller is not safe for concurrent use. All calls are expected to come
// from the UI event loop.
type Controller struct {
	pendingInput string
	tasks        []models.Task

	onChange func(State)
	newID    func() string
	logger   *log.Logger
}

// New creates an empty controller
func New(opts ...Option) *Controller {
	c := &Controller{
		newID:  uuid.NewString,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers the rendering callback, replacing any previous one.
// Passing nil removes it.
func (c *Controller) Subscribe(fn func(State)) {
	c.onChange = fn
}

// State returns a copy of the current state
func (c *Controller) State() State {
	tasks := make([]models.Task, len(c.tasks))
	copy(tasks, c.tasks)
	return State{PendingInput: c.pendingInput, Tasks: tasks}
}

// Len returns the number of tasks
func (c *Controller) Len() int {
	return len(c.tasks)
}

// SetPendingInput replaces the text being composed
func (c *Controller) SetPendingInput(text string) {
	c.pendingInput = text
	c.notify()
}

// SubmitPendingInput appends the pending text as a new task and clears the
// input. Empty input is ignored. Whitespace is kept verbatim.
func (c *Controller) SubmitPendingInput() {
	if c.pendingInput == "" {
		c.logger.Debug("submit ignored", "reason", "empty input")
		c.notify()
		return
	}

	task := models.Task{
		ID:          c.newID(),
		Description: c.pendingInput,
	}
	c.tasks = append(c.tasks, task)
	c.pendingInput = ""
	c.logger.Debug("task added", "id", task.ID, "count", len(c.tasks))
	c.notify()
}

// ToggleCompletion sets the completion flag of the task at index. An index
// outside the list is ignored.
func (c *Controller) ToggleCompletion(index int, checked bool) {
	if index < 0 || index >= len(c.tasks) {
		c.logger.Debug("toggle ignored", "index", index, "count", len(c.tasks))
		c.notify()
		return
	}
	c.tasks[index].IsCompleted = checked
	c.logger.Debug("task toggled", "index", index, "id", c.tasks[index].ID, "completed", checked)
	c.notify()
}

// ToggleByID sets the completion flag of the task with the given ID. Unknown
// IDs are ignored.
func (c *Controller) ToggleByID(id string, checked bool) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.ToggleCompletion(i, checked)
			return
		}
	}
	c.logger.Debug("toggle ignored", "id", id, "reason", "unknown id")
	c.notify()
}

// ClearCompleted removes every completed task, keeping the order of the rest
func (c *Controller) ClearCompleted() {
	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.IsCompleted {
			kept = append(kept, t)
		}
	}
	removed := len(c.tasks) - len(kept)
	// zero the tail so dropped tasks are not retained by the backing array
	for i := len(kept); i < len(c.tasks); i++ {
		c.tasks[i] = models.Task{}
	}
	c.tasks = kept
	c.logger.Debug("cleared completed", "removed", removed, "count", len(c.tasks))
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
