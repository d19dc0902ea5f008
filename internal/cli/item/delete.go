package item

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a backlog item",
		Long:  "Delete a backlog item by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := args[0]
	force, _ := cmd.Flags().GetBool("force")
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
	item, err := a.Items.GetItem(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !quietMode && !jsonOutput {
		fmt.Printf("Delete item %s: '%s'? (y/N): ", item.ID, item.Title)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	view := a.CurrentView(ctx)
	if _, err := a.Mount(ctx, view); err != nil {
		return formatter.FailWith(cli.ExitError, "BOARD_LOAD_ERROR", err, "")
	}
	if err := a.DeleteItem(ctx, view, item.ID); err != nil {
		return formatter.Fail(err)
	}
	a.Notifications.Drain()

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"item_id": item.ID})
	}

	fmt.Printf("✓ Item %s deleted successfully\n", item.ID)
	return nil
}
