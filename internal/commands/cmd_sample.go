package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/seqcmp"
)

type SampleCmd struct {
	flags *Flags
	app   *seqcmp.App
}

// NewSampleCmd creates a new sample command
func NewSampleCmd(flags *Flags, app *seqcmp.App) *SampleCmd {
	return &SampleCmd{flags: flags, app: app}
}

// Register adds the sample command to the application
func (cmd *SampleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sample",
		Usage:     "Print sample sequence data from the service",
		UsageText: "seqcmp sample [1|2|<file name>]",
		Description: `Fetches sample data from the comparison service and prints it verbatim.

"1" and "2" select the configured samples (samples.seq1 and samples.seq2). Any
other argument is used as the sample file name. Defaults to "1".`,
		ShellComplete: SampleNameCompleter(cmd.app),
		Action:        cmd.run,
	})

	return app
}

func (cmd *SampleCmd) run(ctx context.Context, c *cli.Command) error {
	name := cmd.resolve(c.Args().First())

	data, err := cmd.app.Samples.SampleData(ctx, name)
	if err != nil {
		return fmt.Errorf("load sample: %w", err)
	}

	_, err = io.WriteString(c.Root().Writer, data)
	return err
}

func (cmd *SampleCmd) resolve(arg string) string {
	switch arg {
	case "", "1":
		return cmd.app.SampleName(controller.Seq1)
	case "2":
		return cmd.app.SampleName(controller.Seq2)
	default:
		return arg
	}
}
