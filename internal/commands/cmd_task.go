package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
	"github.com/colonyops/taskboard/internal/printer"
)

// TaskCmd groups the commands that act on one task by id: toggle, rm and edit.
type TaskCmd struct {
	flags *Flags

	// edit flags
	title    string
	priority string
}

// NewTaskCmd creates the toggle, rm and edit commands
func NewTaskCmd(flags *Flags) *TaskCmd {
	return &TaskCmd{flags: flags}
}

// Register adds the toggle, rm and edit commands to the application
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	complete := TaskIDCompleter(cmd.flags)

	app.Commands = append(app.Commands,
		&cli.Command{
			Name:          "toggle",
			Usage:         "Flip the completed flag of a task",
			UsageText:     "taskboard toggle <id>",
			Description:   "The id may be shortened to any unique prefix.",
			ShellComplete: complete,
			Action:        cmd.runToggle,
		},
		&cli.Command{
			Name:          "rm",
			Aliases:       []string{"delete"},
			Usage:         "Delete a task",
			UsageText:     "taskboard rm <id>",
			Description:   "The id may be shortened to any unique prefix.",
			ShellComplete: complete,
			Action:        cmd.runRm,
		},
		&cli.Command{
			Name:      "edit",
			Usage:     "Change the title or priority of a task",
			UsageText: "taskboard edit <id> [--title t] [--priority p]",
			Description: `Updates a task in place. Its id and completed flag are kept.

Unset flags keep the current value.`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "title",
					Aliases:     []string{"t"},
					Usage:       "new title",
					Destination: &cmd.title,
				},
				&cli.StringFlag{
					Name:        "priority",
					Aliases:     []string{"p"},
					Usage:       "new priority (low, medium, high)",
					Destination: &cmd.priority,
				},
			},
			ShellComplete: complete,
			Action:        cmd.runEdit,
		},
	)

	return app
}

func (cmd *TaskCmd) resolve(c *cli.Command) (task.Task, error) {
	if c.Args().Len() != 1 {
		return task.Task{}, fmt.Errorf("expected exactly one task id, got %d", c.Args().Len())
	}
	return cmd.flags.Board.Resolve(c.Args().First())
}

func (cmd *TaskCmd) runToggle(ctx context.Context, c *cli.Command) error {
	t, err := cmd.resolve(c)
	if err != nil {
		return err
	}

	b := cmd.flags.Board
	b.ToggleCompletion(ctx, t.ID)
	if err := b.SaveErr(); err != nil {
		return err
	}

	state := "incomplete"
	if !t.Completed {
		state = "completed"
	}
	printer.Ctx(ctx).Successf("Marked %q %s", t.Title, state)
	return nil
}

func (cmd *TaskCmd) runRm(ctx context.Context, c *cli.Command) error {
	t, err := cmd.resolve(c)
	if err != nil {
		return err
	}

	b := cmd.flags.Board
	b.DeleteTask(ctx, t.ID)
	if err := b.SaveErr(); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Deleted %q", t.Title)
	return nil
}

func (cmd *TaskCmd) runEdit(ctx context.Context, c *cli.Command) error {
	t, err := cmd.resolve(c)
	if err != nil {
		return err
	}

	if !c.IsSet("title") && !c.IsSet("priority") {
		return fmt.Errorf("nothing to change: pass --title or --priority")
	}

	title, priority := t.Title, string(t.Priority)
	if c.IsSet("title") {
		title = cmd.title
	}
	if c.IsSet("priority") {
		priority = cmd.priority
	}
	if err := validate.TaskInput(title, priority); err != nil {
		return err
	}
	p, _ := task.ParsePriority(priority)

	b := cmd.flags.Board
	b.BeginEdit(t.ID)
	b.SetInput(title)
	b.SetPriority(p)
	b.CommitEdit(ctx)
	if err := b.SaveErr(); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Updated %q (%s)", title, p.Label())
	return nil
}
