package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/printer"
	"github.com/colonyops/taskboard/pkg/iojson"
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
				UsageText:   "taskboard config validate [--format text|json]",
				Description: "Checks the configuration values plus access to the config file, data directory and storage file.",
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

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	result := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	switch cmd.format {
	case "json":
		if err := cmd.outputJSON(c, result); err != nil {
			return err
		}
	case "text":
		cmd.outputText(printer.Ctx(ctx), result)
	default:
		return fmt.Errorf("unknown format %q: must be text or json", cmd.format)
	}

	if !result.IsValid() {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, result *config.ValidationResult) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []config.ValidationError   `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		Checks   []config.ValidationCheck   `json:"checks,omitempty"`
	}{
		Valid:    result.IsValid(),
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Checks:   result.Checks,
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, result *config.ValidationResult) {
	p.Section("Configuration")

	for _, check := range result.Checks {
		p.CheckItem(check.Category, check.Message)
		for _, detail := range check.Details {
			p.Printf("      %s", detail)
		}
	}

	for _, warn := range result.Warnings {
		p.WarnItem(warn.Category, joinDetail(warn.Message, warn.Item))
	}

	for _, err := range result.Errors {
		p.FailItem(err.Category, joinDetail(err.Message, err.Item))
		if err.Fix != "" {
			p.Printf("      fix: %s", err.Fix)
		}
	}

	p.Printf("")
	if result.IsValid() {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", result.ErrorCount())
}

func joinDetail(msg, item string) string {
	if item == "" {
		return msg
	}
	return msg + " (" + item + ")"
}
