package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/commands"
	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/internal/core/logging"
	"github.com/colonyops/seqcmp/internal/core/styles"
	"github.com/colonyops/seqcmp/internal/printer"
	"github.com/colonyops/seqcmp/internal/seqcmp"
	"github.com/colonyops/seqcmp/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() seqcmp.BuildInfo {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	return seqcmp.BuildInfo{Version: v, Commit: c, Date: d}
}

func build() string {
	info := buildInfo()

	short := info.Commit
	if len(short) > 7 {
		short = short[:7]
	}

	return fmt.Sprintf("%s (%s) %s", info.Version, short, info.Date)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		seqApp    = &seqcmp.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "seqcmp",
		Usage:     "Compare two DNA sequences with a remote alignment service",
		UsageText: "seqcmp [global options] command [command options]",
		Description: `seqcmp submits two sequences, as files or pasted text, to a sequence
comparison service and shows the similarity, alignment, and differences.

Run 'seqcmp' with no arguments to open the interactive comparison screen.
Run 'seqcmp compare' to compare from scripts.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SEQCMP_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/seqcmp.log)",
				Sources:     cli.EnvVars("SEQCMP_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SEQCMP_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("SEQCMP_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/seqcmp.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = config.LogFile(flags.DataDir)
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
				styles.SetTheme(palette)
			} else {
				log.Warn().Str("theme", cfg.TUI.Theme).Msg("unknown theme, using default")
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*seqApp = *seqcmp.NewApp(cfg, log.Logger, buildInfo())

			return printer.NewContext(ctx, printer.New(os.Stderr)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, seqApp)

	app = commands.NewCompareCmd(flags, seqApp).Register(app)
	app = commands.NewSampleCmd(flags, seqApp).Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'seqcmp --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
