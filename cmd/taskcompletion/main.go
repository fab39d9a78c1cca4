package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/tgienger/taskcompletion/internal/config"
	"github.com/tgienger/taskcompletion/internal/logging"
	"github.com/tgienger/taskcompletion/internal/tasklist"
	"github.com/tgienger/taskcompletion/internal/ui"
	"github.com/tgienger/taskcompletion/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("taskcompletion %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer logger.Close()

	theme, ok := styles.Lookup(cfg.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "known", styles.Names())
		theme = styles.Lavender
	}

	controller := tasklist.New(tasklist.WithLogger(logger.Logger))
	app := ui.NewApp(controller, theme, logger.Logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
