// ABOUTME: CLI command to remove all indexed documents from the collection
// ABOUTME: Requires --yes to guard against accidental deletion
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearConfirmed bool

// NewClearCmd creates the clear command
func NewClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all indexed documents",
		Long: `Delete every indexed chunk in the configured collection.

This cannot be undone; pass --yes to confirm.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolVar(&clearConfirmed, "yes", false, "Confirm deletion")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearConfirmed {
		return fmt.Errorf("refusing to clear the index without --yes")
	}

	pipeline, err := loadPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	if err := pipeline.Clear(); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Index cleared")
	}
	return nil
}
