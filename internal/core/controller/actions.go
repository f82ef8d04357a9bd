package controller

import (
	"context"
	"fmt"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

// Clear resets the controller: inputs emptied, file mode, no banner, no
// current result. An in-flight comparison is abandoned and its outcome will
// be discarded.
func (c *Controller) Clear() {
	if c.phase == PhaseLoading {
		c.log.Debug().Uint64("gen", c.gen).Msg("abandoning in-flight comparison")
		c.gen++
		c.finish()
	}

	c.files = [2]string{}
	c.texts = [2]string{}
	c.mode = compare.ModeFile
	c.banner = ""
	c.presentation = nil
	c.deps.Store.Clear()
}

// Export writes the current result through the configured Exporter and
// returns its path. Without a result only a notification is produced.
func (c *Controller) Export() (string, error) {
	if c.deps.Exporter == nil {
		return "", fmt.Errorf("export is not configured")
	}

	path, err := c.deps.Exporter.Export()
	if err != nil {
		if compare.IsKind(err, compare.KindExportPrecondition) {
			c.notifier().Errorf("%s", compare.ErrNoResult.Message)
			return "", err
		}
		c.log.Error().Err(err).Msg("export failed")
		c.notifier().Errorf("export failed: %v", err)
		return "", err
	}

	c.log.Info().Str("path", path).Msg("results exported")
	c.notifier().Successf("results exported to %s", path)
	return path, nil
}

// Command is a message understood by Dispatch.
type Command interface {
	command()
}

type (
	SetModeCmd    struct{ Mode compare.InputMode }
	ToggleModeCmd struct{}
	SelectFileCmd struct {
		Slot Slot
		Path string
	}
	SetTextCmd struct {
		Slot Slot
		Text string
	}
	LoadSampleCmd struct{ Slot Slot }
	SubmitCmd     struct{}
	ClearCmd      struct{}
	ExportCmd     struct{}
)

func (SetModeCmd) command()    {}
func (ToggleModeCmd) command() {}
func (SelectFileCmd) command() {}
func (SetTextCmd) command()    {}
func (LoadSampleCmd) command() {}
func (SubmitCmd) command()     {}
func (ClearCmd) command()      {}
func (ExportCmd) command()     {}

// Dispatch runs cmd synchronously.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd := cmd.(type) {
	case SetModeCmd:
		c.SetMode(cmd.Mode)
	case ToggleModeCmd:
		c.ToggleMode()
	case SelectFileCmd:
		c.SelectFile(cmd.Slot, cmd.Path)
	case SetTextCmd:
		c.SetText(cmd.Slot, cmd.Text)
	case LoadSampleCmd:
		return c.LoadSample(ctx, cmd.Slot)
	case SubmitCmd:
		return c.Submit(ctx)
	case ClearCmd:
		c.Clear()
	case ExportCmd:
		_, err := c.Export()
		return err
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}
