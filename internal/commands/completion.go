package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// TaskIDCompleter returns a ShellCompleteFunc that suggests task ids as
// positional completions, with the title as the description.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TaskIDCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Board == nil {
			return
		}

		w := cmd.Root().Writer
		for _, t := range flags.Board.Tasks() {
			_, _ = fmt.Fprintf(w, "%s:%s\n", t.ID, t.Title)
		}
	}
}
