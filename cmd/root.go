package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/cli/board"
	"github.com/thenoetrevino/paso/internal/cli/item"
	"github.com/thenoetrevino/paso/internal/launcher"
)

// NewRootCmd builds the paso command tree.
// Running paso without a subcommand opens the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "paso",
		Short: "Paso - A terminal-based kanban board",
		Long: `Paso is a terminal-based kanban board for a backlog of items.

The board groups items into columns by one dimension at a time
(status, sprint, assignee, priority, label or release) and remembers
column order, collapsed columns and custom buckets between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.CommandError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(item.ItemCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Command failures were already reported by the output formatter
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code == cli.ExitUsage {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
