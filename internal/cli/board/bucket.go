package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso/internal/board"
)

// BucketCmd returns the board bucket parent command
func BucketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "Manage ad-hoc bucket columns",
	}

	cmd.AddCommand(bucketAddCmd())
	cmd.AddCommand(bucketRemoveCmd())

	return cmd
}

func bucketAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new bucket column",
		Long: `Append a new bucket column to the board.

Examples:
  paso board bucket add

  # Capture the new column ID
  BUCKET=$(paso board bucket add --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runBucketAdd,
	}

	addOutputFlags(cmd)

	return cmd
}

func runBucketAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)

	s, err := openSession(ctx, formatter)
	if err != nil {
		return err
	}
	defer s.close()

	col := s.cli.App.Board.AddBucket(ctx)

	if formatter.Quiet {
		fmt.Println(col.ID)
		s.printNotifications(formatter)
		return nil
	}
	if formatter.JSON {
		s.printNotifications(formatter)
		return formatter.Success(map[string]any{"column": col})
	}

	s.printNotifications(formatter)
	fmt.Printf("✓ Added %s\n", board.DescribeColumn(col))
	fmt.Printf("  Status value: %s\n", col.StatusValue)
	return nil
}

func bucketRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <column-id>",
		Short: "Remove a bucket column",
		Long: `Remove a bucket column. Only columns created with "bucket add" can be removed.

Examples:
  paso board bucket remove bucket-3f2a...
`,
		Args: cobra.ExactArgs(1),
		RunE: runBucketRemove,
	}

	addOutputFlags(cmd)

	return cmd
}

func runBucketRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := formatterFor(cmd)

	s, err := openSession(ctx, formatter)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.cli.App.Board.RemoveBucket(ctx, args[0]); err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		s.printNotifications(formatter)
		return formatter.Success(map[string]any{"column": args[0]})
	}
	s.printNotifications(formatter)
	if !formatter.Quiet {
		fmt.Printf("✓ Bucket %s removed\n", args[0])
	}
	return nil
}
