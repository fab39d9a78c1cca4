package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/taskcompletion/internal/tasklist"
	"github.com/tgienger/taskcompletion/internal/ui/styles"
	"github.com/tgienger/taskcompletion/internal/ui/views"
)

// App is the root model. The task screen is the only screen; App owns the
// controller for the lifetime of the program.
type App struct {
	controller *tasklist.Controller
	taskList   *views.TaskListView
	logger     *log.Logger
}

// Creates a new application
func NewApp(controller *tasklist.Controller, theme styles.Theme, logger *log.Logger) *App {
	return &App{
		controller: controller,
		taskList:   views.NewTaskListView(controller, styles.NewStyles(theme), logger),
		logger:     logger,
	}
}

func (a *App) Init() tea.Cmd {
	if a.logger != nil {
		a.logger.Info("screen started", "tasks", a.controller.Len())
	}
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.taskList.View()
}

// Controller returns the controller driving the screen
func (a *App) Controller() *tasklist.Controller {
	return a.controller
}
