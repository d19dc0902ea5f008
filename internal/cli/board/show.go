package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/render"
)

// boardOutput is the printable state of the board
type boardOutput struct {
	View      models.ViewDimension `json:"view"`
	Columns   []board.ColumnView   `json:"columns"`
	Collapsed []string             `json:"collapsed"`
	Unplaced  []models.BacklogItem `json:"unplaced,omitempty"`
}

func (o boardOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board by %s\n", o.View)
	b.WriteString(render.RenderBoard(o.Columns, -1, -1))
	if len(o.Unplaced) > 0 {
		fmt.Fprintf(&b, "\n%d item(s) match no column:", len(o.Unplaced))
		for _, item := range o.Unplaced {
			fmt.Fprintf(&b, "\n  • %s (%s)", item.Title, item.Status)
		}
	}
	return b.String()
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Long: `Show the board columns and the items in each.

Examples:
  # Show the board on the last selected view
  paso board show

  # Group by assignee without changing the selected view
  paso board show --view=assignee

  # Preview without writing any board changes
  paso board show --view=label --ephemeral

  # JSON output for agents
  paso board show --json

  # Quiet mode (one column ID per line)
  paso board show --quiet
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("view", "", "Dimension to group by (status, sprint, assignee, priority, label, release)")
	cmd.Flags().Bool("ephemeral", false, "Do not persist board changes")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)
	viewFlag, _ := cmd.Flags().GetString("view")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)
	a := cliInstance.App

	view := a.CurrentView(ctx)
	if viewFlag != "" {
		view, err = models.ParseViewDimension(viewFlag)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "INVALID_VIEW", err, "use one of: "+viewNames())
		}
	}

	items, err := a.Items.ListItems(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Another view never writes its columns over the selected view's board
	b := a.Board
	if ephemeral || view != a.CurrentView(ctx) {
		if b, err = a.Ephemeral(ctx); err != nil {
			return formatter.Fail(err)
		}
	}
	b.Mount(ctx, view, items)
	a.Notifications.Drain()

	cfg := b.Config()
	out := boardOutput{
		View:      view,
		Columns:   b.View(items),
		Collapsed: b.Collapsed(),
		Unplaced:  board.Unplaced(cfg, items),
	}

	if formatter.Quiet {
		for _, col := range board.SortedColumns(cfg) {
			fmt.Println(col.ID)
		}
		return nil
	}

	return formatter.Success(out)
}

func viewNames() string {
	dims := models.AllViewDimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}
