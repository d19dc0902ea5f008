package item

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/user"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a backlog item",
		Long: `Create a backlog item. Columns for new assignees, labels and releases
appear on the board automatically.

Examples:
  # Create an item (human-readable output)
  paso item create --title="Fix login"

  # Create it straight into a bucket column
  paso item create --title="Spike" --status=bucket-1

  # Full set of attributes
  paso item create --title="Outage" --status=blocked --assignee=kim \
    --priority=critical --label=ops --label=incident --release=sprint-current

  # Assign it to yourself
  paso item create --title="Review" --mine

  # Quiet mode for bash capture
  ITEM_ID=$(paso item create --title="Docs" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Item title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("status", "", "Status or bucket status value (default: open)")
	cmd.Flags().String("assignee", "", "Assignee")
	cmd.Flags().Bool("mine", false, "Assign to the current user ($PASO_USER or the OS account)")
	cmd.MarkFlagsMutuallyExclusive("assignee", "mine")
	cmd.Flags().String("priority", "", "Priority (critical, high, medium, low)")
	cmd.Flags().StringSlice("label", nil, "Label (repeatable)")
	cmd.Flags().String("release", "", "Release or sprint id")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	title, _ := cmd.Flags().GetString("title")
	status, _ := cmd.Flags().GetString("status")
	assignee, _ := cmd.Flags().GetString("assignee")
	mine, _ := cmd.Flags().GetBool("mine")
	priority, _ := cmd.Flags().GetString("priority")
	labels, _ := cmd.Flags().GetStringSlice("label")
	release, _ := cmd.Flags().GetString("release")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	priority = strings.ToLower(strings.TrimSpace(priority))
	if priority != "" && !slices.Contains(models.KnownPriorities, priority) {
		return formatter.FailWith(cli.ExitValidation, "INVALID_PRIORITY",
			fmt.Errorf("invalid priority %q", priority), "use one of: "+strings.Join(models.KnownPriorities, ", "))
	}

	if mine {
		assignee = user.CurrentUsername()
		if assignee == "" {
			return formatter.FailWith(cli.ExitValidation, "UNKNOWN_USER",
				fmt.Errorf("cannot determine the current user"), "set PASO_USER or pass --assignee")
		}
	}

	// Initialize CLI
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

	item, err := a.CreateItem(ctx, view, database.CreateItemRequest{
		Title:     title,
		Status:    strings.TrimSpace(status),
		ReleaseID: strings.TrimSpace(release),
		Assignee:  strings.TrimSpace(assignee),
		Priority:  priority,
		Labels:    labels,
	})
	if err != nil {
		return formatter.Fail(err)
	}
	a.Notifications.Drain()

	// Output based on mode
	if quietMode {
		fmt.Println(item.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"item": item})
	}

	// Human-readable output
	fmt.Printf("✓ Item '%s' created successfully (ID: %s)\n", item.Title, item.ID)
	fmt.Printf("  Status: %s\n", item.Status)
	return nil
}

