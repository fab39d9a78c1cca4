package styles

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	OnPrimary lipgloss.Color
	Danger    lipgloss.Color

	// Task rows
	PendingRow    lipgloss.Color
	PendingText   lipgloss.Color
	CompletedRow  lipgloss.Color
	CompletedText lipgloss.Color
	Checkbox      lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Lavender is the default theme: purple accents on a light purple screen,
// yellow pending rows and green completed rows
var Lavender = Theme{
	Name: "lavender",

	Background:    lipgloss.Color("#EDE7F6"),
	Foreground:    lipgloss.Color("#000000"),
	ForegroundDim: lipgloss.Color("#6D6D6D"),

	Primary:   lipgloss.Color("#6200EA"),
	OnPrimary: lipgloss.Color("#FFFFFF"),
	Danger:    lipgloss.Color("#B00020"),

	PendingRow:    lipgloss.Color("#FFF176"),
	PendingText:   lipgloss.Color("#000000"),
	CompletedRow:  lipgloss.Color("#81C784"),
	CompletedText: lipgloss.Color("#388E3C"),
	Checkbox:      lipgloss.Color("#6200EA"),

	Border:      lipgloss.Color("#B39DDB"),
	BorderFocus: lipgloss.Color("#6200EA"),
	Selection:   lipgloss.Color("#D1C4E9"),
}

// TokyoNight is a dark alternative
var TokyoNight = Theme{
	Name: "tokyo-night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	OnPrimary: lipgloss.Color("#1a1b26"),
	Danger:    lipgloss.Color("#f7768e"),

	PendingRow:    lipgloss.Color("#24283b"),
	PendingText:   lipgloss.Color("#e0af68"),
	CompletedRow:  lipgloss.Color("#1f2335"),
	CompletedText: lipgloss.Color("#9ece6a"),
	Checkbox:      lipgloss.Color("#bb9af7"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

var themes = map[string]Theme{
	Lavender.Name:   Lavender,
	TokyoNight.Name: TokyoNight,
}

// Lookup finds a theme by name, case-insensitively
func Lookup(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names returns the known theme names, sorted
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	Theme Theme

	// App container
	App lipgloss.Style

	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Input field
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDanger  lipgloss.Style
	DangerFocused lipgloss.Style

	// Task rows
	TaskPending   lipgloss.Style
	TaskCompleted lipgloss.Style
	TaskCursor    lipgloss.Style
	Checkbox      lipgloss.Style

	// Help text
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
}

// NewStyles creates styles for the given theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Theme: t,

		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(t.OnPrimary).
			Background(t.Primary).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.OnPrimary).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true).
			Underline(true),

		ButtonDanger: lipgloss.NewStyle().
			Foreground(t.OnPrimary).
			Background(t.Danger).
			Padding(0, 2).
			Align(lipgloss.Center),

		DangerFocused: lipgloss.NewStyle().
			Foreground(t.OnPrimary).
			Background(t.Danger).
			Padding(0, 2).
			Align(lipgloss.Center).
			Bold(true).
			Underline(true),

		TaskPending: lipgloss.NewStyle().
			Foreground(t.PendingText).
			Background(t.PendingRow).
			Padding(0, 1),

		TaskCompleted: lipgloss.NewStyle().
			Foreground(t.CompletedText).
			Background(t.CompletedRow).
			Strikethrough(true).
			Padding(0, 1),

		TaskCursor: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(t.Checkbox).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			PaddingTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),
	}
}
