package item

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
)

// MoveCmd returns the item move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Change an item's status",
		Long: `Change an item's status. A bucket's status value moves the item into that bucket.

Examples:
  paso item move BI-1 --status=in-progress
  paso item move BI-1 --status=bucket-1
  paso item move BI-1 --status=completed --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().String("status", "", "New status or bucket status value (required)")
	if err := cmd.MarkFlagRequired("status"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	status, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	a := cliInstance.App
	view := a.CurrentView(ctx)
	if _, err := a.Mount(ctx, view); err != nil {
		return formatter.FailWith(cli.ExitError, "BOARD_LOAD_ERROR", err, "")
	}

	item, err := a.MoveItem(ctx, view, args[0], status)
	if err != nil {
		return formatter.Fail(err)
	}
	a.Notifications.Drain()

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"item": item})
	}

	fmt.Printf("✓ Item '%s' moved to %s\n", item.Title, item.Status)
	return nil
}
