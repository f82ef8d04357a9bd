package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/seqcmp"
)

// SampleNameCompleter returns a ShellCompleteFunc that suggests the slot
// shortcuts and configured sample names as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func SampleNameCompleter(app *seqcmp.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, name := range sampleCompletions(app) {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}

func sampleCompletions(app *seqcmp.App) []string {
	if app.Config == nil {
		return []string{"1", "2"}
	}
	return []string{"1", "2", app.SampleName(controller.Seq1), app.SampleName(controller.Seq2)}
}
