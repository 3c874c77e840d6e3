// ABOUTME: CLI command to ingest legal documents into the index
// ABOUTME: Reads files or stdin, chunks, embeds, and reports indexed chunk counts
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	ingestSource string
	ingestType   string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [file...]",
		Short: "Ingest legal documents",
		Long: `Ingest legal documents into the local index.

Each file is cleaned, split into overlapping chunks, tagged with a legal
domain, embedded, and stored. With no arguments, text is read from stdin.

Examples:
  nyaya ingest constitution.txt crpc.txt
  nyaya ingest --type judgment kesavananda.txt
  cat section_302.txt | nyaya ingest --source "IPC Section 302"`,
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestSource, "source", "", "Source label (defaults to the file name)")
	cmd.Flags().StringVar(&ingestType, "type", "txt", "Document type stored in chunk metadata")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	pipeline, err := loadPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return fmt.Errorf("no text provided")
		}

		source := ingestSource
		if source == "" {
			source = "stdin"
		}
		count, err := pipeline.IngestDocument(text, source, ingestType)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", source, err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d chunks from %s\n", count, source)
		}
		return nil
	}

	total := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		source := ingestSource
		if source == "" {
			source = filepath.Base(path)
		}

		count, err := pipeline.IngestDocument(string(data), source, ingestType)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", source, err)
		}
		total += count

		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d chunks\n", source, count)
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d chunks from %d files\n", total, len(args))
	}
	return nil
}
