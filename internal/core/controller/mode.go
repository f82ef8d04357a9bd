package controller

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

// Mode returns the active input mode.
func (c *Controller) Mode() compare.InputMode {
	return c.mode
}

// SetMode switches the active input mode. Inputs of the other mode are kept.
func (c *Controller) SetMode(m compare.InputMode) {
	if m != compare.ModeText {
		m = compare.ModeFile
	}
	if m != c.mode {
		c.log.Debug().Str("mode", m.String()).Msg("input mode changed")
	}
	c.mode = m
}

// ToggleMode flips between file and text mode.
func (c *Controller) ToggleMode() {
	c.SetMode(c.mode.Toggle())
}

// SelectFile sets the file for slot. A non-empty path switches to file mode.
// An empty path clears the slot without changing mode.
func (c *Controller) SelectFile(slot Slot, path string) {
	c.files[slot] = path
	if path == "" {
		return
	}
	c.SetMode(compare.ModeFile)

	if !compare.MatchesPatterns(path, c.deps.FilePatterns) {
		c.notifier().Infof("%s may not be a sequence file (expected %s)",
			filepath.Base(path), strings.Join(c.deps.FilePatterns, ", "))
	}
}

// SetText sets the pasted text for slot. It does not change mode.
func (c *Controller) SetText(slot Slot, text string) {
	c.texts[slot] = text
}

// LoadSample fetches the configured sample for slot and applies it.
func (c *Controller) LoadSample(ctx context.Context, slot Slot) error {
	text, err := c.FetchSample(ctx, slot)
	c.ApplySample(slot, text, err)
	return err
}

// FetchSample retrieves the configured sample for slot without touching
// controller state. The TUI calls it off the update loop and hands the outcome
// to ApplySample.
func (c *Controller) FetchSample(ctx context.Context, slot Slot) (string, error) {
	if c.deps.Samples == nil {
		return "", compare.NewError(compare.KindTransport, "sample data is not available", nil)
	}
	return c.deps.Samples.SampleData(ctx, c.deps.SampleNames[slot])
}

// ApplySample loads text into slot and switches to text mode. A non-nil err
// only reports the failure.
func (c *Controller) ApplySample(slot Slot, text string, err error) {
	if err != nil {
		c.log.Error().Err(err).Str("slot", slot.String()).Msg("failed to load sample data")
		c.notifier().Errorf("failed to load sample data")
		return
	}

	c.texts[slot] = text
	c.SetMode(compare.ModeText)
	c.notifier().Successf("sample data loaded")
}
