package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
	"github.com/colonyops/taskboard/internal/printer"
)

type AddCmd struct {
	flags *Flags

	// flags
	priority string
	idOnly   bool

	// interactive reports whether the title form may be shown
	interactive func() bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{
		flags:       flags,
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "taskboard add [--priority low|medium|high] [title...]",
		Description: `Adds an incomplete task with the given title and priority.

When no title is given and stdin is a terminal, an interactive form asks for
the title and priority.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "task priority (low, medium, high)",
				Value:       string(task.DefaultPriority),
				Destination: &cmd.priority,
			},
			&cli.BoolFlag{
				Name:        "id-only",
				Aliases:     []string{"q"},
				Usage:       "print only the new task id",
				Destination: &cmd.idOnly,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	title := strings.Join(c.Args().Slice(), " ")

	if title == "" {
		if !cmd.interactive() {
			return fmt.Errorf("title is required")
		}
		if err := cmd.runForm(&title); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := validate.TaskInput(title, cmd.priority); err != nil {
		return err
	}
	priority, _ := task.ParsePriority(cmd.priority)

	t, _ := cmd.flags.Board.AddTask(ctx, title, priority)
	if err := cmd.flags.Board.SaveErr(); err != nil {
		return err
	}

	if cmd.idOnly {
		_, _ = fmt.Fprintln(c.Root().Writer, t.ID)
		return nil
	}

	p.Successf("Added %q (%s) %s", t.Title, t.Priority.Label(), t.ID)
	return nil
}

func (cmd *AddCmd) runForm(title *string) error {
	options := make([]huh.Option[string], 0, len(task.Priorities()))
	for _, pr := range task.Priorities() {
		options = append(options, huh.NewOption(pr.Label(), string(pr)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Add new task...").
				Validate(validate.TaskTitle).
				Value(title),
			huh.NewSelect[string]().
				Title("Priority").
				Options(options...).
				Value(&cmd.priority),
		),
	).WithTheme(styles.FormTheme()).Run()
}
