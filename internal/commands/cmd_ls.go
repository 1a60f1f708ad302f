package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/printer"
	"github.com/colonyops/taskboard/pkg/iojson"
)

// Output formats for ls.
const (
	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type LsCmd struct {
	flags *Flags

	// flags
	priority string
	all      bool
	match    string
	format   string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List tasks",
		UsageText: "taskboard ls [--priority p | --all] [--match glob] [--format table|json|markdown]",
		Description: `Lists the tasks of one priority, like the interactive view does.

Without --priority the default low priority is shown; --all lists every task.
--match filters titles with a case-insensitive glob such as "buy *".
The summary line always counts the full list.

Use --format json for one JSON object per line. In that format invalid flags
are reported as a JSON error document on stdout.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "only list tasks with this priority (low, medium, high)",
				Destination: &cmd.priority,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "list tasks of every priority",
				Destination: &cmd.all,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob pattern matched against task titles",
				Destination: &cmd.match,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (table, json, markdown)",
				Value:       formatTable,
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	filter, err := cmd.filter()
	if err != nil {
		if cmd.format == formatJSON {
			data := map[string]any{"priority": cmd.priority, "all": cmd.all, "match": cmd.match}
			if werr := iojson.WriteError(c.Root().Writer, err.Error(), data); werr != nil {
				return werr
			}
			return cli.Exit("", 1)
		}
		return err
	}

	b := cmd.flags.Board
	tasks := filter.Apply(b.Tasks())
	out := c.Root().Writer

	switch cmd.format {
	case formatJSON:
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	case formatMarkdown:
		rendered, err := renderMarkdown(tasks, b.Summary())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, rendered)
		return nil
	case formatTable:
		if len(tasks) == 0 {
			printer.Ctx(ctx).Infof("No tasks found")
		} else {
			_, _ = fmt.Fprintln(out, renderTable(tasks))
		}
		_, _ = fmt.Fprintln(out, styles.MutedStyle.Render(b.Summary().String()))
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be %s, %s or %s", cmd.format, formatTable, formatJSON, formatMarkdown)
	}
}

func (cmd *LsCmd) filter() (task.Filter, error) {
	f := task.Filter{Match: cmd.match}

	switch {
	case cmd.all && cmd.priority != "":
		return f, fmt.Errorf("--all and --priority cannot be used together")
	case cmd.all:
	case cmd.priority == "":
		f.Priority = task.DefaultPriority
	default:
		p, err := task.ParsePriority(cmd.priority)
		if err != nil {
			return f, err
		}
		f.Priority = p
	}

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

func renderTable(tasks []task.Task) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.DividerStyle).
		Headers("ID", "DONE", "TITLE", "PRIORITY").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(styles.HeaderStyle)
			}
			if col == 2 && tasks[row].Completed {
				return base.Inherit(styles.CompletedStyle)
			}
			if col == 3 {
				return base.Inherit(styles.PriorityStyle(tasks[row].Priority))
			}
			return base
		})

	for _, tk := range tasks {
		done := " "
		if tk.Completed {
			done = "x"
		}
		t.Row(tk.ShortID(), done, tk.Title, string(tk.Priority))
	}

	return t.Render()
}

// markdownList builds the markdown document rendered by ls --format markdown.
func markdownList(tasks []task.Task, summary task.Summary) string {
	var sb strings.Builder
	sb.WriteString("# Todo List\n\n")
	if len(tasks) == 0 {
		sb.WriteString("_No tasks found_\n")
	}
	for _, t := range tasks {
		title := t.Title
		if t.Completed {
			title = "~~" + title + "~~"
		}
		check := " "
		if t.Completed {
			check = "x"
		}
		fmt.Fprintf(&sb, "- [%s] %s *(%s)* `%s`\n", check, title, t.Priority, t.ShortID())
	}
	sb.WriteString("\n")
	sb.WriteString(summary.String())
	sb.WriteString("\n")
	return sb.String()
}

func renderMarkdown(tasks []task.Task, summary task.Summary) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdownList(tasks, summary))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
