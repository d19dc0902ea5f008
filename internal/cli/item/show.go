package item

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a backlog item",
		Long: `Show every attribute of a single backlog item.

Examples:
  paso item show BI-1
  paso item show BI-1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (status only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	item, err := cliInstance.App.Items.GetItem(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		fmt.Println(item.Status)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"item": item})
	}

	fmt.Printf("%s (ID: %s)\n", item.Title, item.ID)
	fmt.Printf("  Status:   %s\n", item.Status)
	if item.Assignee != "" {
		fmt.Printf("  Assignee: %s\n", item.Assignee)
	}
	if item.Priority != "" {
		fmt.Printf("  Priority: %s\n", item.Priority)
	}
	if item.ReleaseID != "" {
		fmt.Printf("  Release:  %s\n", item.ReleaseID)
	}
	if len(item.Labels) > 0 {
		fmt.Printf("  Labels:   %s\n", strings.Join(item.Labels, ", "))
	}
	return nil
}
