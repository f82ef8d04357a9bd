package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/internal/printer"
	"github.com/colonyops/seqcmp/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "seqcmp config validate [options]",
				Description: "Validates the configuration file, checking the server URL, file patterns, theme, keybindings, and paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationIssue          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := buildReport(cmd.flags.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(printer.Ctx(ctx), report)
}

func buildReport(cfg *config.Config, configPath string) validationReport {
	report := validationReport{Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
	default:
		report.Errors = append(report.Errors, validationIssue{Field: "config", Message: err.Error()})
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, report validationReport) error {
	if len(report.Warnings) > 0 {
		p.Section("Warnings")
	}
	for _, warn := range report.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	if len(report.Errors) > 0 {
		p.Section("Errors")
	}
	for _, issue := range report.Errors {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	// Print summary
	p.Printf("")
	if report.Valid {
		p.Success("Configuration is valid", cmd.flags.ConfigPath)
		return nil
	}

	p.Errorf("%d error(s) found", len(report.Errors))
	return cli.Exit("", 1)
}
