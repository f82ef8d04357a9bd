package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/core/export"
	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/pkg/iojson"
)

type RenderCmd struct {
	flags  *Flags
	input  iojson.FileReader[export.Record]
	format string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render an exported comparison as a report",
		UsageText: "seqcmp render [-f sequence_comparison_<timestamp>.json] [--format auto|markdown|pretty]",
		Description: `Reads an export document (from the TUI, 'compare --export' or 'compare --json')
and prints the same report 'compare' prints. Reads stdin when -f is not given.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "report format (auto, markdown, pretty)",
				Value:       formatAuto,
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(_ context.Context, c *cli.Command) error {
	if err := validateFormat(cmd.format); err != nil {
		return err
	}

	rec, err := cmd.input.Read()
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}

	return writeReport(c.Root().Writer, present.Present(rec.Result()), cmd.format)
}
