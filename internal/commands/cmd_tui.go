package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	altScreen bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "alt-screen",
			Usage:       "render the board in the terminal's alternate screen",
			Sources:     cli.EnvVars("TASKBOARD_ALT_SCREEN"),
			Value:       true,
			Destination: &cmd.altScreen,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithSurface(ctx, "tui")
	log := logging.Component("tui")

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cmd.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Info().Ctx(ctx).Int("tasks", len(cmd.flags.Board.Tasks())).Msg("starting tui")

	p := tea.NewProgram(tui.New(ctx, cmd.flags.Board, log), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	// The view shows write failures inline; surface the last one on exit too.
	return cmd.flags.Board.SaveErr()
}
