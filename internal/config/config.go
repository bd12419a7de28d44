package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"todo-cli/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings. Precedence is flags > env > file > defaults;
// flags are applied by the CLI after Load.
type Config struct {
	Animations         bool   `yaml:"animations" json:"animations"`
	ClearInputOnSubmit bool   `yaml:"clear_input_on_submit" json:"clearInputOnSubmit"`
	Strict             bool   `yaml:"strict" json:"strict"`
	Theme              string `yaml:"theme" json:"theme"`
	Glyphs             string `yaml:"glyphs" json:"glyphs"`
	InitialFilter      string `yaml:"initial_filter" json:"initialFilter"`
	LogPath            string `yaml:"log_path" json:"logPath,omitempty"`
	LogLevel           string `yaml:"log_level" json:"logLevel"`
	TracePath          string `yaml:"trace_path" json:"tracePath,omitempty"`
}

func Default() *Config {
	return &Config{
		Animations:    true,
		Theme:         "auto",
		Glyphs:        "unicode",
		InitialFilter: string(model.FilterAll),
		LogLevel:      "info",
	}
}

// DefaultPath returns <user config dir>/todo/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "todo", "config.yaml")
}

// Load reads path (DefaultPath when empty). A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.TracePath = expandPath(cfg.TracePath)
	return cfg, nil
}

// ApplyEnv overlays TODO_* environment variables. Unparseable booleans are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	boolEnv := func(k string, dst *bool) {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	strEnv := func(k string, dst *string) {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			*dst = v
		}
	}
	boolEnv("TODO_ANIMATIONS", &c.Animations)
	boolEnv("TODO_CLEAR_INPUT", &c.ClearInputOnSubmit)
	boolEnv("TODO_STRICT", &c.Strict)
	strEnv("TODO_THEME", &c.Theme)
	strEnv("TODO_GLYPHS", &c.Glyphs)
	strEnv("TODO_FILTER", &c.InitialFilter)
	strEnv("TODO_LOG", &c.LogPath)
	strEnv("TODO_LOG_LEVEL", &c.LogLevel)
	strEnv("TODO_TRACE", &c.TracePath)
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Theme)) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto|light|dark)", c.Theme)
	}
	switch strings.ToLower(strings.TrimSpace(c.Glyphs)) {
	case "", "unicode", "utf8", "ascii":
	default:
		return fmt.Errorf("invalid glyphs %q (want unicode|ascii)", c.Glyphs)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug|info|warn|error)", c.LogLevel)
	}
	if _, err := model.ParseFilter(c.InitialFilter); err != nil {
		return fmt.Errorf("initial_filter: %w", err)
	}
	return nil
}

// Filter returns the parsed initial filter, falling back to all.
func (c *Config) Filter() model.Filter {
	f, err := model.ParseFilter(c.InitialFilter)
	if err != nil {
		return model.FilterAll
	}
	return f
}

func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, path[1:])
}
