package board

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and arrange the kanban board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ViewCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(BucketCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// session is an opened CLI with the board mounted on the active view
type session struct {
	cli   *cli.CLI
	view  models.ViewDimension
	items []models.BacklogItem
}

// openSession opens the CLI and mounts the board on the selected view
func openSession(ctx context.Context, formatter *cli.OutputFormatter) (*session, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}

	view := cliInstance.App.CurrentView(ctx)
	items, err := cliInstance.App.Mount(ctx, view)
	if err != nil {
		closeCLI(cliInstance)
		return nil, formatter.FailWith(cli.ExitError, "BOARD_LOAD_ERROR", err, "")
	}

	return &session{cli: cliInstance, view: view, items: items}, nil
}

func (s *session) close() {
	closeCLI(s.cli)
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		log.Printf("Error closing CLI: %v", err)
	}
}

// findColumn returns the column with id on the mounted board
func (s *session) findColumn(id string) (models.KanbanColumn, error) {
	cfg := s.cli.App.Board.Config()
	i := cfg.ColumnIndex(id)
	if i < 0 {
		return models.KanbanColumn{}, fmt.Errorf("%w: %s", models.ErrColumnNotFound, id)
	}
	return cfg.Columns[i], nil
}

// printNotifications shows queued board notifications in human mode
func (s *session) printNotifications(formatter *cli.OutputFormatter) {
	notes := s.cli.App.Notifications.Drain()
	if formatter.JSON || formatter.Quiet {
		return
	}
	for _, n := range notes {
		fmt.Println(notifications.Render(n))
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}
