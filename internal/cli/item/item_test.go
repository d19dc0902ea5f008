package item

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/testutil"
	clitest "github.com/thenoetrevino/paso/internal/testutil/cli"
)

func TestCreateItem_Integration(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)

	tests := []struct {
		name         string
		flags        []string
		wantExitCode int
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:         "basic item defaults to open",
			flags:        []string{"--title", "Fix login"},
			wantExitCode: cli.ExitSuccess,
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Item 'Fix login' created successfully")
				assert.Contains(t, output, "Status: open")
			},
		},
		{
			name: "all attributes in JSON",
			flags: []string{
				"--title", "Outage",
				"--status", "blocked",
				"--assignee", "kim",
				"--priority", "Critical",
				"--label", "ops", "--label", "incident",
				"--release", "sprint-current",
				"--json",
			},
			wantExitCode: cli.ExitSuccess,
			verifyOutput: func(t *testing.T, output string) {
				result := clitest.ParseJSON(t, output)
				item := result["data"].(map[string]any)["item"].(map[string]any)
				assert.Equal(t, "blocked", item["status"])
				assert.Equal(t, "critical", item["priority"])
				assert.Equal(t, []any{"ops", "incident"}, item["labels"])
			},
		},
		{
			name:         "invalid priority",
			flags:        []string{"--title", "x", "--priority", "urgent", "--quiet"},
			wantExitCode: cli.ExitValidation,
		},
		{
			name:         "blank title",
			flags:        []string{"--title", "   ", "--json"},
			wantExitCode: cli.ExitValidation,
			verifyOutput: func(t *testing.T, output string) {
				result := clitest.ParseJSON(t, output)
				assert.Equal(t, "INVALID_TITLE", result["error"].(map[string]any)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), append([]string{"create"}, tt.flags...))
			assert.Equal(t, tt.wantExitCode, cli.ExitCode(err))
			if tt.verifyOutput != nil {
				tt.verifyOutput(t, output)
			}
		})
	}
}

func TestCreateItem_AddsDerivedColumns(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)
	_, err := testApp.SelectView(context.Background(), models.ViewAssignee)
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"create", "--title", "Triage", "--assignee", "lee", "--quiet"})
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(output))

	assert.True(t, testApp.Board.Config().HasColumn("assignee-lee"))
	assert.Equal(t, models.ViewAssignee, testApp.Board.Config().ViewType)
}

func TestListItems(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "No items found")

	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-1", Title: "First", Assignee: "zoe", Labels: []string{"ui"}})
	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-2", Title: "Second"})

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "1. First [open] (ID: BI-1) @zoe {ui}")
	assert.Contains(t, output, "2. Second [open] (ID: BI-2)")

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"list", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "BI-1\nBI-2\n", output)

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"list", "--json"})
	require.NoError(t, err)
	items := clitest.ParseJSON(t, output)["data"].(map[string]any)["items"].([]any)
	assert.Len(t, items, 2)
}

func TestCreateItem_Mine(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)
	t.Setenv("PASO_USER", "ana")

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"create", "--title", "Mine", "--mine", "--json"})
	require.NoError(t, err)
	item := clitest.ParseJSON(t, output)["data"].(map[string]any)["item"].(map[string]any)
	assert.Equal(t, "ana", item["assignee"])

	_, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"create", "--title", "Both", "--mine", "--assignee", "kim"})
	assert.Error(t, err, "--mine and --assignee are mutually exclusive")
}

func TestSeedItems(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"seed"})
	require.NoError(t, err)
	assert.Contains(t, output, "Seeded 8 items")

	items, err := testApp.Items.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(sampleItems))
	assert.Equal(t, "Fix auth bug", items[0].Title)

	// A second seed refuses to touch a non-empty backlog
	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"seed", "--json"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, "BACKLOG_NOT_EMPTY", clitest.ParseJSON(t, output)["error"].(map[string]any)["code"])

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"seed", "--force", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), len(sampleItems))
}

func TestShowItem(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)
	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-1", Title: "Outage", Status: models.StatusBlocked, Assignee: "kim", Labels: []string{"ops"}})

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"show", "BI-1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Outage (ID: BI-1)")
	assert.Contains(t, output, "Assignee: kim")
	assert.Contains(t, output, "Labels:   ops")

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"show", "BI-404", "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, "ITEM_NOT_FOUND", clitest.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

func TestMoveItem_IntoBucket(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)
	ctx := context.Background()
	_, err := testApp.Mount(ctx, models.ViewStatus)
	require.NoError(t, err)
	bucket := testApp.Board.AddBucket(ctx)
	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-1", Title: "Spike"})

	output, err := clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"move", "BI-1", "--status", bucket.StatusValue, "--json"})
	require.NoError(t, err)
	item := clitest.ParseJSON(t, output)["data"].(map[string]any)["item"].(map[string]any)
	assert.Equal(t, bucket.StatusValue, item["status"])

	stored, err := testApp.Items.GetItem(ctx, "BI-1")
	require.NoError(t, err)
	assert.Equal(t, bucket.StatusValue, stored.Status)

	_, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"move", "BI-404", "--status", "open", "--quiet"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"move", "BI-1", "--status", " ", "--json"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, "INVALID_STATUS", clitest.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

func TestDeleteItem(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)
	ctx := context.Background()
	_, err := testApp.SelectView(ctx, models.ViewAssignee)
	require.NoError(t, err)
	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-1", Title: "Triage", Assignee: "lee"})
	testutil.CreateTestItem(t, testApp, database.CreateItemRequest{ID: "BI-2", Title: "Keep"})

	// Declining the prompt keeps the item
	cmd := ItemCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	output, err := clitest.ExecuteCLICommand(t, testApp, cmd, []string{"delete", "BI-1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	_, err = testApp.Items.GetItem(ctx, "BI-1")
	require.NoError(t, err)

	cmd = ItemCmd()
	cmd.SetIn(strings.NewReader("y\n"))
	output, err = clitest.ExecuteCLICommand(t, testApp, cmd, []string{"delete", "BI-1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Item BI-1 deleted successfully")
	assert.False(t, testApp.Board.Config().HasColumn("assignee-lee"))

	_, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"delete", "BI-2", "--force", "--quiet"})
	require.NoError(t, err)
	items, err := testApp.Items.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	output, err = clitest.ExecuteCLICommand(t, testApp, ItemCmd(), []string{"delete", "BI-1", "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, "ITEM_NOT_FOUND", clitest.ParseJSON(t, output)["error"].(map[string]any)["code"])
}
