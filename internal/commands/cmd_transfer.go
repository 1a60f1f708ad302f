package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
	"github.com/colonyops/taskboard/internal/printer"
	"github.com/colonyops/taskboard/pkg/iojson"
)

// TransferCmd provides import and export of the whole task list as JSON.
type TransferCmd struct {
	flags  *Flags
	reader *iojson.FileReader[[]task.Task]
}

// NewTransferCmd creates the import and export commands
func NewTransferCmd(flags *Flags) *TransferCmd {
	return &TransferCmd{flags: flags, reader: &iojson.FileReader[[]task.Task]{}}
}

// Register adds the import and export commands to the application
func (cmd *TransferCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "import",
			Usage:     "Replace the task list from JSON",
			UsageText: "taskboard import [-f file]",
			Description: `Reads a JSON array of tasks, as written by export, and replaces the stored list.

Input is read from --file or, when piped, from stdin. Every task needs a
non-blank title. Tasks without an id get a new one, a missing priority means
low, and later duplicates of an id are dropped.`,
			Flags:  []cli.Flag{cmd.reader.Flag()},
			Action: cmd.runImport,
		},
		&cli.Command{
			Name:      "export",
			Usage:     "Print the task list as JSON",
			UsageText: "taskboard export > tasks.json",
			Action:    cmd.runExport,
		},
	)

	return app
}

func (cmd *TransferCmd) runImport(ctx context.Context, _ *cli.Command) error {
	tasks, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	for i, t := range tasks {
		if err := validate.TaskTitle(t.Title); err != nil {
			return fmt.Errorf("import tasks: [%d].title: %w", i, err)
		}
		if t.Priority != "" && !t.Priority.IsValid() {
			return fmt.Errorf("import tasks: [%d].priority: invalid priority %q", i, t.Priority)
		}
	}

	b := cmd.flags.Board
	b.Replace(ctx, tasks)
	if err := b.SaveErr(); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Imported %d task(s)", len(b.Tasks()))
	return nil
}

func (cmd *TransferCmd) runExport(_ context.Context, c *cli.Command) error {
	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, cmd.flags.Board.Tasks())
}
