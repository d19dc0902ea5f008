package item

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/models"
)

// sampleItems spread over every dimension so each view has something to show
var sampleItems = []database.CreateItemRequest{
	{Title: "Fix auth bug", Status: models.StatusOpen, Assignee: "kim", Priority: models.PriorityHigh, Labels: []string{"bug"}, ReleaseID: "sprint-current"},
	{Title: "Refactor UI", Status: models.StatusOpen, Labels: []string{"ui", "tech-debt"}},
	{Title: "Update deps", Status: models.StatusReady, Assignee: "lee", Priority: models.PriorityLow, ReleaseID: "sprint-next"},
	{Title: "Add tests", Status: models.StatusInProgress, Assignee: "kim", Priority: models.PriorityMedium, ReleaseID: "sprint-current"},
	{Title: "Review PR #42", Status: models.StatusInProgress, Assignee: "zoe", Labels: []string{"review"}, ReleaseID: "sprint-current"},
	{Title: "Payment outage", Status: models.StatusBlocked, Assignee: "lee", Priority: models.PriorityCritical, Labels: []string{"ops", "incident"}, ReleaseID: "release-1.1"},
	{Title: "Deploy v1.0", Status: models.StatusCompleted, Priority: models.PriorityHigh, ReleaseID: "release-1.0"},
	{Title: "Dark mode", Status: models.StatusDeferred, Labels: []string{"ui"}},
}

// SeedCmd returns the item seed subcommand
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty backlog with sample items",
		Long: `Fill an empty backlog with sample items covering every status,
several assignees, priorities, labels and sprints.

Examples:
  paso item seed
  paso item seed --force   # add the samples even when items exist
`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().Bool("force", false, "Seed even when the backlog is not empty")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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
	existing, err := a.Items.ListItems(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	if len(existing) > 0 && !force {
		return formatter.FailWith(cli.ExitValidation, "BACKLOG_NOT_EMPTY",
			fmt.Errorf("backlog already has %d items", len(existing)), "pass --force to add the samples anyway")
	}

	view := a.CurrentView(ctx)
	if _, err := a.Mount(ctx, view); err != nil {
		return formatter.FailWith(cli.ExitError, "BOARD_LOAD_ERROR", err, "")
	}

	created := make([]models.BacklogItem, 0, len(sampleItems))
	for _, req := range sampleItems {
		item, err := a.CreateItem(ctx, view, req)
		if err != nil {
			return formatter.Fail(err)
		}
		created = append(created, item)
	}
	a.Notifications.Drain()

	if quietMode {
		for _, item := range created {
			fmt.Println(item.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]any{"items": created})
	}

	fmt.Printf("✓ Seeded %d items\n", len(created))
	return nil
}
