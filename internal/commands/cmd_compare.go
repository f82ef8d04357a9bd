package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/core/validate"
	"github.com/colonyops/seqcmp/internal/printer"
	"github.com/colonyops/seqcmp/internal/seqcmp"
	"github.com/colonyops/seqcmp/pkg/iojson"
)

type CompareCmd struct {
	flags *Flags
	app   *seqcmp.App

	// flags
	files       []string
	texts       []string
	sample      bool
	jsonOutput  bool
	export      bool
	interactive bool
	format      string
}

// NewCompareCmd creates a new compare command
func NewCompareCmd(flags *Flags, app *seqcmp.App) *CompareCmd {
	return &CompareCmd{flags: flags, app: app}
}

// Register adds the compare command to the application
func (cmd *CompareCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compare",
		Usage:     "Compare two sequences without the TUI",
		UsageText: "seqcmp compare [--file a.fasta --file b.fasta | --text ACGT --text ACGA | --sample] [options]",
		Description: `Submits two sequences to the comparison service and prints the result.

Sequences come from two --file flags, two --text flags, or the service's sample
data with --sample. Use --interactive to enter them in a form instead.

The report is markdown, styled when stdout is a terminal. Use --json for the
export document instead, and --export to also write it to the export directory.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "sequence file (pass twice)",
				Destination: &cmd.files,
			},
			&cli.StringSliceFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "sequence text (pass twice)",
				Destination: &cmd.texts,
			},
			&cli.BoolFlag{
				Name:        "sample",
				Usage:       "compare the service's sample sequences",
				Destination: &cmd.sample,
			},
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "enter the sequences in a form",
				Destination: &cmd.interactive,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the export document as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "export",
				Usage:       "write the export document to the export directory",
				Destination: &cmd.export,
			},
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

func (cmd *CompareCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := validateFormat(cmd.format); err != nil {
		return err
	}

	if cmd.interactive {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	ctrl := cmd.app.NewController(p, controller.Hooks{})
	if err := cmd.applyInputs(ctx, ctrl); err != nil {
		return err
	}

	if err := ctrl.Submit(ctx); err != nil {
		// Validation failures only reach the banner, so surface them here.
		if compare.IsKind(err, compare.KindValidation) {
			p.Errorf("%s", ctrl.State().Banner)
		}
		return cli.Exit("", 1)
	}

	if cmd.export {
		if _, err := ctrl.Export(); err != nil {
			return cli.Exit("", 1)
		}
	}

	if cmd.jsonOutput {
		rec, err := cmd.app.Exporter.Build()
		if err != nil {
			return fmt.Errorf("build export document: %w", err)
		}
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, rec)
	}

	state := ctrl.State()
	if state.Presentation == nil {
		return errors.New("comparison produced no result")
	}
	return writeReport(c.Root().Writer, *state.Presentation, cmd.format)
}

// applyInputs hands the collected inputs to the controller. Exactly one
// source kind may be used.
func (cmd *CompareCmd) applyInputs(ctx context.Context, ctrl *controller.Controller) error {
	sources := 0
	for _, used := range []bool{len(cmd.files) > 0, len(cmd.texts) > 0, cmd.sample} {
		if used {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("use only one of --file, --text or --sample")
	}

	switch {
	case cmd.sample:
		for _, slot := range []controller.Slot{controller.Seq1, controller.Seq2} {
			if err := ctrl.LoadSample(ctx, slot); err != nil {
				log.Debug().Err(err).Str("sample", cmd.app.SampleName(slot)).Msg("sample load failed")
				return cli.Exit("", 1)
			}
		}
	case len(cmd.texts) > 0:
		if len(cmd.texts) > 2 {
			return errors.New("--text accepts at most two sequences")
		}
		ctrl.SetMode(compare.ModeText)
		for i, text := range cmd.texts {
			ctrl.SetText(controller.Slot(i), text)
		}
	default:
		if len(cmd.files) > 2 {
			return errors.New("--file accepts at most two sequences")
		}
		for i, path := range cmd.files {
			ctrl.SelectFile(controller.Slot(i), path)
		}
	}

	return nil
}

func (cmd *CompareCmd) runForm() error {
	mode := string(compare.ModeFile)
	var file1, file2, text1, text2 string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Input").
				Options(
					huh.NewOption("Sequence files", string(compare.ModeFile)),
					huh.NewOption("Pasted text", string(compare.ModeText)),
				).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewInput().Title("Sequence 1 file").Validate(validate.Required).Value(&file1),
			huh.NewInput().Title("Sequence 2 file").Validate(validate.Required).Value(&file2),
		).WithHideFunc(func() bool { return mode != string(compare.ModeFile) }),
		huh.NewGroup(
			huh.NewText().Title("Sequence 1").Validate(validate.Required).Value(&text1),
			huh.NewText().Title("Sequence 2").Validate(validate.Required).Value(&text2),
		).WithHideFunc(func() bool { return mode != string(compare.ModeText) }),
	).Run()
	if err != nil {
		return err
	}

	cmd.sample = false
	if mode == string(compare.ModeText) {
		cmd.files, cmd.texts = nil, []string{text1, text2}
	} else {
		cmd.files, cmd.texts = []string{file1, file2}, nil
	}
	return nil
}
