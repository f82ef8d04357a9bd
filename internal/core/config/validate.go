package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/seqcmp/internal/core/styles"
	"github.com/colonyops/seqcmp/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// pattern syntax, theme names, keybinding conflicts and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validatePatterns(),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		validate.RequiredField("samples.seq1", c.Samples.Seq1),
		validate.RequiredField("samples.seq2", c.Samples.Seq2),
		c.validateKeybindings(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.Files.Patterns) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Files",
			Message:  "no file patterns configured, file selection hints are disabled",
		})
	}

	if c.Samples.CacheTTL == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Samples",
			Item:     "cache_ttl",
			Message:  "sample caching is disabled",
		})
	}

	return warnings
}

// validateFileAccess checks config file, data directory, and export directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("export.dir", c.Export.Dir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validatePatterns checks file patterns are valid doublestar patterns.
func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Files.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("files.patterns[%d]", i), fmt.Errorf("invalid pattern %q", p))
		}
	}
	return errs.ToError()
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// validateKeybindings checks that no key is bound to more than one action.
func (c *Config) validateKeybindings() error {
	owners := make(map[string]string)

	actions := make([]string, 0, len(c.Keybindings))
	for action := range c.Keybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	var errs criterio.FieldErrorsBuilder
	for _, action := range actions {
		for _, key := range c.Keybindings[action] {
			field := fmt.Sprintf("keybindings[%q]", action)
			if strings.TrimSpace(key) == "" {
				errs = errs.Append(field, fmt.Errorf("empty key"))
				continue
			}
			if other, ok := owners[key]; ok {
				errs = errs.Append(field, fmt.Errorf("key %q is already bound to %q", key, other))
				continue
			}
			owners[key] = action
		}
	}
	return errs.ToError()
}
