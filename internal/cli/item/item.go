package item

import (
	"github.com/spf13/cobra"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage backlog items",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SeedCmd())

	return cmd
}
