package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/board"
)

// ToggleCmd returns the board toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <column-id>",
		Short: "Collapse or expand a column",
		Long: `Collapse or expand a column. Running it twice restores the column.

Examples:
  paso board toggle deferred
  paso board toggle assignee-unassigned --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runToggle,
	}

	addOutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)

	s, err := openSession(ctx, formatter)
	if err != nil {
		return err
	}
	defer s.close()

	col, err := s.findColumn(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	b := s.cli.App.Board
	b.ToggleColumn(ctx, col.ID)
	collapsed := b.IsCollapsed(col.ID)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"column":    col.ID,
			"collapsed": collapsed,
		})
	}

	state := "expanded"
	if collapsed {
		state = "collapsed"
	}
	fmt.Printf("✓ Column %s %s\n", board.DescribeColumn(col), state)
	return nil
}
