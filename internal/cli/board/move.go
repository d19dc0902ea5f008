package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/cli"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column-id>",
		Short: "Move a column left or right",
		Long: `Move a column by a number of positions. Negative values move it left.
Moves past either end stop at the edge.

Examples:
  paso board move deferred --by=-2
  paso board move open --by=1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().Int("by", 0, "Positions to move (required, negative moves left)")
	if err := cmd.MarkFlagRequired("by"); err != nil {
		fmt.Printf("Error marking flag as required: %v\n", err)
	}
	addOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)
	by, _ := cmd.Flags().GetInt("by")

	s, err := openSession(ctx, formatter)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.cli.App.Board.MoveColumn(ctx, args[0], by); err != nil {
		return formatter.Fail(err)
	}

	col, err := s.findColumn(args[0])
	if err != nil {
		return formatter.FailWith(cli.ExitError, "INTERNAL_ERROR", err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"column": col})
	}

	fmt.Printf("✓ Column %s is now at position %d\n", board.DescribeColumn(col), col.Order)
	return nil
}
