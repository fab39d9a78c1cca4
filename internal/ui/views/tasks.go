package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tgienger/taskcompletion/internal/models"
	"github.com/tgienger/taskcompletion/internal/tasklist"
	"github.com/tgienger/taskcompletion/internal/ui/keys"
	"github.com/tgienger/taskcompletion/internal/ui/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// lines used by everything except the task list
	chromeHeight = 13
	minListRows  = 3
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusAddButton
	FocusTaskList
	FocusClearButton

	focusAreaCount
)

func (f FocusArea) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusAddButton:
		return "add"
	case FocusTaskList:
		return "list"
	case FocusClearButton:
		return "clear"
	}
	return "unknown"
}

// TaskListView renders the controller state. It keeps no task data of its
// own: everything shown comes from the last snapshot the controller pushed.
type TaskListView struct {
	controller *tasklist.Controller
	state      tasklist.State
	styles     *styles.Styles
	keys       keys.KeyMap
	help       help.Model
	logger     *log.Logger

	width  int
	height int

	// UI state
	focus  FocusArea
	cursor int
	input  textinput.Model
	list   viewport.Model
}

// NewTaskListView creates the view and registers it as the controller's
// rendering callback
func NewTaskListView(controller *tasklist.Controller, s *styles.Styles, logger *log.Logger) *TaskListView {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "Enter a task"
	input.Prompt = ""
	input.Focus()

	h := help.New()
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc

	v := &TaskListView{
		controller: controller,
		styles:     s,
		keys:       keys.DefaultKeyMap(),
		help:       h,
		logger:     logger,
		width:      defaultWidth,
		height:     defaultHeight,
		focus:      FocusInput,
		input:      input,
		list:       viewport.New(defaultWidth, minListRows),
	}
	v.resize()

	controller.Subscribe(v.render)
	v.render(controller.State())
	return v
}

// render is the controller callback. It stores the snapshot and rebuilds
// everything derived from it.
func (v *TaskListView) render(s tasklist.State) {
	v.state = s
	if v.input.Value() != s.PendingInput {
		v.input.SetValue(s.PendingInput)
	}
	v.cursor = clamp(v.cursor, 0, max(0, len(s.Tasks)-1))
	v.refreshList()
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.resize()
		v.refreshList()
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.ForceQuit) {
			return v, tea.Quit
		}
		if v.focus == FocusInput {
			return v.updateInput(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.setFocus(FocusTaskList)
		return v, nil
	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil
	case key.Matches(msg, v.keys.ShiftTab):
		v.cycleFocus(-1)
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		// keyboard "done" action
		v.controller.SubmitPendingInput()
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.controller.SetPendingInput(after)
	}
	return v, cmd
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		v.logger.Info("quit", "tasks", len(v.state.Tasks))
		return v, tea.Quit

	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil

	case key.Matches(msg, v.keys.ShiftTab):
		v.cycleFocus(-1)
		return v, nil

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil

	case key.Matches(msg, v.keys.Input):
		v.setFocus(FocusInput)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Clear):
		v.controller.ClearCompleted()
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.focus == FocusTaskList && v.cursor > 0 {
			v.cursor--
			v.refreshList()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.focus == FocusTaskList && v.cursor < len(v.state.Tasks)-1 {
			v.cursor++
			v.refreshList()
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.focus == FocusTaskList {
			v.toggleSelected()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focus {
		case FocusAddButton:
			v.controller.SubmitPendingInput()
		case FocusTaskList:
			v.toggleSelected()
		case FocusClearButton:
			v.controller.ClearCompleted()
		}
		return v, nil
	}

	return v, nil
}

// toggleSelected flips the task under the cursor. Toggles are dispatched by
// task ID so a stale cursor can never hit a different task.
func (v *TaskListView) toggleSelected() {
	if len(v.state.Tasks) == 0 {
		return
	}
	t := v.state.Tasks[v.cursor]
	v.controller.ToggleByID(t.ID, !t.IsCompleted)
}

func (v *TaskListView) cycleFocus(dir int) {
	n := int(focusAreaCount)
	v.setFocus(FocusArea((int(v.focus) + dir + n) % n))
}

func (v *TaskListView) setFocus(f FocusArea) {
	if f == v.focus {
		return
	}
	v.logger.Debug("focus", "from", v.focus, "to", f)
	v.focus = f
	if f == FocusInput {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
	v.refreshList()
}

// Focus returns the focused area
func (v *TaskListView) Focus() FocusArea {
	return v.focus
}

func (v *TaskListView) contentWidth() int {
	// App style pads two columns on each side
	return max(styles.ContentWidth(v.width)-4, 20)
}

func (v *TaskListView) resize() {
	width := v.contentWidth()
	// border + padding of the input box, plus the add button and a gap
	v.input.Width = max(width-lipgloss.Width(v.addButtonLabel())-6-1, 10)
	v.list.Width = width
	v.list.Height = max(v.height-chromeHeight, minListRows)
	v.help.Width = width
}

func (v *TaskListView) addButtonLabel() string {
	return v.styles.Button.Render("Add Task")
}

// refreshList rebuilds the list content and scrolls the cursor into view
func (v *TaskListView) refreshList() {
	if len(v.state.Tasks) == 0 {
		v.list.SetContent(v.styles.TitleMuted.Render("No tasks yet"))
		v.list.SetYOffset(0)
		return
	}

	rows := make([]string, len(v.state.Tasks))
	for i, t := range v.state.Tasks {
		rows[i] = v.renderTaskRow(t, i == v.cursor && v.focus == FocusTaskList)
	}
	v.list.SetContent(strings.Join(rows, "\n"))

	// each row is exactly one line
	if v.cursor < v.list.YOffset {
		v.list.SetYOffset(v.cursor)
	} else if v.cursor >= v.list.YOffset+v.list.Height {
		v.list.SetYOffset(v.cursor - v.list.Height + 1)
	}
}

func (v *TaskListView) renderTaskRow(t models.Task, selected bool) string {
	s := v.styles

	marker := "  "
	if selected {
		marker = s.TaskCursor.Render("› ")
	}

	checkbox := "[ ]"
	descStyle := s.TaskPending
	if t.IsCompleted {
		checkbox = "[x]"
		descStyle = s.TaskCompleted
	}

	// marker + checkbox + space
	descWidth := max(v.contentWidth()-6, 1)
	desc := descStyle.Inline(true).Width(descWidth).MaxWidth(descWidth).Render(t.Description)

	return marker + s.Checkbox.Render(checkbox) + " " + desc
}

// View renders the screen
func (v *TaskListView) View() string {
	s := v.styles
	width := v.contentWidth()

	inputStyle := s.Input
	if v.focus == FocusInput {
		inputStyle = s.InputFocused
	}
	addStyle := s.Button
	if v.focus == FocusAddButton {
		addStyle = s.ButtonFocused
	}
	clearStyle := s.ButtonDanger
	if v.focus == FocusClearButton {
		clearStyle = s.DangerFocused
	}

	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(v.input.View()),
		" ",
		addStyle.Render("Add Task"),
	)

	status := s.StatusBar.Render(fmt.Sprintf("%d tasks • %d completed",
		len(v.state.Tasks), v.state.CompletedCount()))

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Tasks"),
		"",
		inputRow,
		"",
		v.list.View(),
		"",
		clearStyle.Width(width).Render("Clear Completed Tasks"),
		status,
		s.Help.Render(v.help.View(v.keys)),
	)

	return styles.CenterView(s.App.Render(content), v.width, v.height)
}
