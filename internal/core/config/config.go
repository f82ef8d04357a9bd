// Package config handles configuration loading and validation for seqcmp.
package config

import (
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

// Built-in action names for keybindings.
const (
	ActionSubmit     = "submit"
	ActionClear      = "clear"
	ActionToggleMode = "toggle_mode"
	ActionNextField  = "next_field"
	ActionExport     = "export"
	ActionLoadSample = "load_sample"
	ActionDismiss    = "dismiss"
	ActionHistory    = "history"
	ActionScrollUp   = "scroll_up"
	ActionScrollDown = "scroll_down"
	ActionQuit       = "quit"
)

// Actions lists every bindable action in display order.
var Actions = []string{
	ActionSubmit,
	ActionClear,
	ActionToggleMode,
	ActionNextField,
	ActionExport,
	ActionLoadSample,
	ActionDismiss,
	ActionHistory,
	ActionScrollUp,
	ActionScrollDown,
	ActionQuit,
}

// defaultKeybindings maps actions to their built-in keys. Users override per
// action.
var defaultKeybindings = map[string][]string{
	ActionSubmit:     {"ctrl+enter", "ctrl+s"},
	ActionClear:      {"esc"},
	ActionToggleMode: {"ctrl+t"},
	ActionNextField:  {"tab"},
	ActionExport:     {"ctrl+e"},
	ActionLoadSample: {"ctrl+l"},
	ActionDismiss:    {"ctrl+x"},
	ActionHistory:    {"ctrl+n"},
	ActionScrollUp:   {"pgup"},
	ActionScrollDown: {"pgdown"},
	ActionQuit:       {"ctrl+c"},
}

// Config holds the application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Samples       SamplesConfig       `yaml:"samples"`
	Files         FilesConfig         `yaml:"files"`
	Export        ExportConfig        `yaml:"export"`
	Notifications NotificationsConfig `yaml:"notifications"`
	TUI           TUIConfig           `yaml:"tui"`
	Keybindings   map[string][]string `yaml:"keybindings"` // action -> keys
	DataDir       string              `yaml:"-"`           // set by caller, not from config file
}

// ServerConfig locates the comparison service.
type ServerConfig struct {
	URL string `yaml:"url"`
	// Timeout bounds each request. Zero waits indefinitely.
	Timeout time.Duration `yaml:"timeout"`
}

// SamplesConfig names the sample files served by the comparison service.
type SamplesConfig struct {
	Seq1     string        `yaml:"seq1"`
	Seq2     string        `yaml:"seq2"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// FilesConfig holds sequence file settings.
type FilesConfig struct {
	// Patterns are doublestar patterns a sequence file name is expected to
	// match. Selecting another file only produces a hint.
	Patterns []string `yaml:"patterns"`
}

// ExportConfig holds result export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// NotificationsConfig holds notification settings.
type NotificationsConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL: "http://localhost:5000",
		},
		Samples: SamplesConfig{
			Seq1:     "seq1.fasta",
			Seq2:     "seq2.fasta",
			CacheTTL: 10 * time.Minute,
		},
		Files: FilesConfig{
			Patterns: slices.Clone(compare.DefaultFilePatterns),
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Notifications: NotificationsConfig{
			TTL: 3 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Keybindings: map[string][]string{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Samples.Seq1 == "" {
		c.Samples.Seq1 = defaults.Samples.Seq1
	}
	if c.Samples.Seq2 == "" {
		c.Samples.Seq2 = defaults.Samples.Seq2
	}
	if c.Files.Patterns == nil {
		c.Files.Patterns = defaults.Files.Patterns
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if c.Notifications.TTL == 0 {
		c.Notifications.TTL = defaults.Notifications.TTL
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings replace the defaults for the same action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))
	maps.Copy(result, defaults)
	maps.Copy(result, user)
	return result
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("server.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url must be an http or https URL, got %q", c.Server.URL)
	}

	if c.Server.Timeout < 0 {
		return fmt.Errorf("server.timeout cannot be negative")
	}
	if c.Samples.CacheTTL < 0 {
		return fmt.Errorf("samples.cache_ttl cannot be negative")
	}
	if c.Notifications.TTL < 0 {
		return fmt.Errorf("notifications.ttl cannot be negative")
	}

	for action, keys := range c.Keybindings {
		if !isValidAction(action) {
			return fmt.Errorf("keybinding has invalid action %q", action)
		}
		if len(keys) == 0 {
			return fmt.Errorf("keybinding %q must have at least one key", action)
		}
	}

	return nil
}

// LogFile returns the default log file path inside dataDir.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "seqcmp.log")
}

func isValidAction(action string) bool {
	_, ok := defaultKeybindings[action]
	return ok
}
