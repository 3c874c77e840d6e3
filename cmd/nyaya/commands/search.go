// ABOUTME: CLI command to retrieve similar document chunks without generation
// ABOUTME: Supports domain filtering and text or JSON output
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nyaya-ai/nyaya/internal/rag"
)

var (
	searchDomain string
	searchLimit  int
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search indexed documents",
		Long: `Search the indexed corpus by semantic similarity.

Prints the most similar chunks with their rank, source, domain, and
similarity score, without generating an answer.

Examples:
  nyaya search "equality before law"
  nyaya search --domain criminal --limit 10 "anticipatory bail"
  nyaya search --format json "directors duties"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchDomain, "domain", "", "Restrict results to one legal domain")
	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}
	domain, err := parseDomain(searchDomain)
	if err != nil {
		return err
	}

	pipeline, err := loadPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	results, err := pipeline.Retrieve(args[0], rag.QueryOptions{TopK: searchLimit, Domain: domain})
	if err != nil {
		return fmt.Errorf("searching documents: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No documents found for query: %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tSOURCE\tDOMAIN\tCONTENT")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%.3f\t%s\t%s\t%s\n",
			res.Rank,
			res.SimilarityScore,
			res.Metadata.Source,
			res.Metadata.Domain,
			truncate(res.Content, 60),
		)
	}
	return w.Flush()
}
