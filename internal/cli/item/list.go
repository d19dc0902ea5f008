package item

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog items",
		Long: `List all backlog items in creation order.

Examples:
  paso item list
  paso item list --json
  paso item list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
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

	items, err := cliInstance.App.Items.ListItems(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode
	if quietMode {
		for _, item := range items {
			fmt.Println(item.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"items": items})
	}

	// Human-readable output
	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}

	fmt.Printf("%d item(s):\n", len(items))
	for i, item := range items {
		fmt.Printf("  %d. %s [%s] (ID: %s)", i+1, item.Title, item.Status, item.ID)
		if item.Assignee != "" {
			fmt.Printf(" @%s", item.Assignee)
		}
		if len(item.Labels) > 0 {
			fmt.Printf(" {%s}", strings.Join(item.Labels, ", "))
		}
		fmt.Println()
	}
	return nil
}
