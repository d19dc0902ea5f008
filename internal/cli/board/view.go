package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/models"
)

// ViewCmd returns the board view subcommand
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <dimension>",
		Short: "Select the dimension the board groups by",
		Long: `Select the dimension the board groups by. The selection is remembered.

Dimensions: status, sprint, assignee, priority, label, release

Examples:
  paso board view assignee
  paso board view sprint --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	addOutputFlags(cmd)

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)

	view, err := models.ParseViewDimension(args[0])
	if err != nil {
		return formatter.FailWith(cli.ExitValidation, "INVALID_VIEW", err, "use one of: "+viewNames())
	}

	s, err := openSession(ctx, formatter)
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.cli.App.SelectView(ctx, view); err != nil {
		return formatter.Fail(err)
	}
	s.cli.App.Notifications.Drain()
	cfg := s.cli.App.Board.Config()

	if formatter.Quiet {
		fmt.Println(view)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"view":    view,
			"columns": cfg.Columns,
		})
	}

	fmt.Printf("✓ Board now grouped by %s (%d columns)\n", view, len(cfg.Columns))
	return nil
}
