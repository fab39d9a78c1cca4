// Package config loads settings from defaults, an optional TOML file, the
// environment and command line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	AppName         = "taskcompletion"
	DefaultTheme    = "lavender"
	DefaultLogLevel = "info"
	configFileName  = "config.toml"
)

// Environment variable names.
const (
	EnvTheme    = "TASKCOMPLETION_THEME"
	EnvLogFile  = "TASKCOMPLETION_LOG_FILE"
	EnvLogLevel = "TASKCOMPLETION_LOG_LEVEL"
)

// Config holds the application settings.
type Config struct {
	Theme    string `toml:"theme"`
	LogFile  string `toml:"log_file"` // empty disables logging
	LogLevel string `toml:"log_level"`

	// Set from flags only
	ConfigPath  string `toml:"-"`
	ShowVersion bool   `toml:"-"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the config from all sources. args excludes the program name.
func Load(args []string) (*Config, error) {
	return load(args, os.Getenv, os.Stderr)
}

func load(args []string, getenv func(string) string, flagOutput io.Writer) (*Config, error) {
	cfg := Default()

	// Flags are parsed twice: first to find --config, then on top of the
	// file and env values so they win.
	pre := Default()
	if err := parseFlags(pre, newFlagSet(flagOutput), args); err != nil {
		return nil, err
	}

	path := pre.ConfigPath
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath(getenv)
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := loadFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	applyEnv(cfg, getenv)

	if err := parseFlags(cfg, newFlagSet(io.Discard), args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the config file location under the XDG config
// directory, falling back to ~/.config.
func DefaultPath(getenv func(string) string) (string, error) {
	configDir := getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName, configFileName), nil
}

// loadFile decodes a TOML file into cfg. A missing file is only an error
// when the path was given explicitly.
func loadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func newFlagSet(output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	flags.SetOutput(output)
	return flags
}

func parseFlags(cfg *Config, flags *flag.FlagSet, args []string) error {
	flags.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to config file")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme (lavender, tokyo-night)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write debug logs to this file")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Print version and exit")
	flags.BoolVar(&cfg.ShowVersion, "v", cfg.ShowVersion, "Print version and exit (shorthand)")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}
	return nil
}

// Validate checks values that can be checked without other packages.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
