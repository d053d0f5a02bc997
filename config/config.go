package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/simpledeadly/fleeets-companion/internal/utils"
)

// DefaultYAML is written to disk on first run.
//
//go:embed config.yaml
var DefaultYAML []byte

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Tray     TrayConfig     `yaml:"tray"`
	Hotkey   HotkeyConfig   `yaml:"hotkey"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WindowConfig struct {
	Name        string `yaml:"name"` // Logical window name used for lookups, default: main
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Frameless   bool   `yaml:"frameless"`
	AlwaysOnTop bool   `yaml:"always_on_top"`
	StartHidden bool   `yaml:"start_hidden"` // Window starts shown unless set
	Transparent bool   `yaml:"transparent"`  // Fully transparent background where supported (macOS)
	Background  string `yaml:"background"`   // Fallback background colour, "#rrggbb" or "#rrggbbaa"
}

type TrayConfig struct {
	Title        string `yaml:"title"`          // Menu bar title next to the icon, empty for icon only
	Tooltip      string `yaml:"tooltip"`
	ShowLabel    string `yaml:"show_label"`     // Empty: "Show (<hotkey>)"
	QuitLabel    string `yaml:"quit_label"`
	HideDockIcon bool   `yaml:"hide_dock_icon"` // Only the tray icon stays visible (macOS)
}

type HotkeyConfig struct {
	Toggle string `yaml:"toggle"` // Global shortcut toggling the window, default: Alt+Space
}

type BehaviorConfig struct {
	HideOnBlur *bool `yaml:"hide_on_blur"` // Hide the window when it loses focus, default: true
}

type LoggingConfig struct {
	Level           string `yaml:"level"`
	FileEnabled     bool   `yaml:"file_enabled"`     // Enable file logging
	FilePath        string `yaml:"file_path"`        // Log file path, default: <app data>/logs/app.log
	MaxFileSize     string `yaml:"max_file_size"`    // Max file size (e.g., "10MB")
	MaxFiles        int    `yaml:"max_files"`        // Max number of rotated files to keep
	CompressRotated bool   `yaml:"compress_rotated"` // Compress rotated log files
}

// HideOnBlurEnabled resolves the optional flag.
func (b BehaviorConfig) HideOnBlurEnabled() bool {
	return b.HideOnBlur == nil || *b.HideOnBlur
}

// Parse parses YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// setDefaults sets default values for configuration
func (c *Config) setDefaults() {
	if c.Window.Name == "" {
		c.Window.Name = "main"
	}
	if c.Window.Title == "" {
		c.Window.Title = "Fleeets Companion"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 700
	}
	if c.Window.Height == 0 {
		c.Window.Height = 140
	}
	if c.Window.Background == "" {
		c.Window.Background = "#1b2636"
	}

	if c.Tray.Tooltip == "" {
		c.Tray.Tooltip = c.Window.Title
	}
	if c.Tray.QuitLabel == "" {
		c.Tray.QuitLabel = "Quit"
	}

	if c.Hotkey.Toggle == "" {
		c.Hotkey.Toggle = "Alt+Space"
	}

	if c.Behavior.HideOnBlur == nil {
		enabled := true
		c.Behavior.HideOnBlur = &enabled
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = filepath.Join(utils.GetLogDir(), "app.log")
	}
	if c.Logging.MaxFileSize == "" {
		c.Logging.MaxFileSize = "10MB"
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = 3
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	var errs []error

	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseColour(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("window.background: %w", err))
	}
	if strings.TrimSpace(c.Hotkey.Toggle) == "" {
		errs = append(errs, errors.New("hotkey.toggle must not be empty"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if n, err := humanize.ParseBytes(c.Logging.MaxFileSize); err != nil || n == 0 {
		errs = append(errs, fmt.Errorf("logging.max_file_size %q is not a positive size", c.Logging.MaxFileSize))
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, fmt.Errorf("logging.max_files must not be negative, got %d", c.Logging.MaxFiles))
	}

	return errors.Join(errs...)
}

// Colour is an RGBA colour parsed from "#rrggbb" or "#rrggbbaa".
type Colour struct {
	R, G, B, A uint8
}

// ParseColour parses a hex colour; alpha defaults to 255.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Colour{}, fmt.Errorf("colour %q must be #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Colour{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	return filepath.Join(utils.GetAppDataDir(), "config.yaml")
}

// EnsureConfigFile writes defaultContent to path when no file exists yet.
// It reports whether a file was created.
func EnsureConfigFile(path string, defaultContent []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultContent, 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
