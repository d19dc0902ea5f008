package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved board layout",
		Long: `Forget the saved board layout, buckets and collapsed columns.
Columns are rebuilt from defaults for the selected view.

Examples:
  paso board reset
`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	addOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
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

	if _, err := s.cli.App.ResetBoard(ctx, s.view); err != nil {
		return formatter.Fail(err)
	}
	s.cli.App.Notifications.Drain()
	cfg := s.cli.App.Board.Config()

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"view": s.view, "columns": cfg.Columns})
	}

	fmt.Printf("✓ Board reset (%d columns)\n", len(cfg.Columns))
	return nil
}
