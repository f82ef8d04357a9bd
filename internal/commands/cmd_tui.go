package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/seqcmp"
	"github.com/colonyops/seqcmp/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *seqcmp.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *seqcmp.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	var warnings []string
	for _, w := range cmd.app.Config.Warnings() {
		warnings = append(warnings, w.Message)
	}

	m := tui.New(ctx, cmd.app.Config, tui.Options{
		Comparer: cmd.app.Client,
		Samples:  cmd.app.Samples,
		Exporter: cmd.app.Exporter,
		Store:    cmd.app.Results,
		Logger:   log.Logger,
		Version:  cmd.app.Build.Version,
		Warnings: warnings,
	})

	log.Info().
		Str("server", cmd.app.Config.Server.URL).
		Str("version", cmd.app.Build.Version).
		Msg("starting tui")

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
