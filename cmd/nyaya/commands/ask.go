// ABOUTME: CLI command to ask a legal question against the indexed corpus
// ABOUTME: Prints the assembled answer with sources and confidence
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyaya-ai/nyaya/internal/models"
	"github.com/nyaya-ai/nyaya/internal/rag"
)

var (
	askDomain string
	askTopK   int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a legal question",
		Long: `Ask a legal question and get an answer grounded in the indexed corpus.

The answer cites the source documents it was assembled from and carries
a confidence score derived from retrieval similarity.

Examples:
  nyaya ask "What does Article 14 guarantee?"
  nyaya ask --domain criminal "When is bail denied for a non-bailable offence?"
  nyaya ask --format json "What is the limitation period for a civil suit?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askDomain, "domain", "", "Restrict retrieval to one legal domain")
	cmd.Flags().IntVar(&askTopK, "top-k", 0, "Number of documents to retrieve (0 = default)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	domain, err := parseDomain(askDomain)
	if err != nil {
		return err
	}

	pipeline, err := loadPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	answer := pipeline.Ask(args[0], rag.QueryOptions{TopK: askTopK, Domain: domain})

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Response)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nConfidence: %.2f\n", answer.Confidence)
		if len(answer.Sources) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Sources:")
			for _, src := range answer.Sources {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%s)\n", src.Source, src.Domain)
			}
		}
	}
	return nil
}

// parseDomain validates the --domain flag value.
func parseDomain(raw string) (models.Domain, error) {
	if raw == "" {
		return "", nil
	}
	domain := models.Domain(raw)
	if !domain.Valid() {
		return "", fmt.Errorf("unknown domain %q (valid: %v)", raw, models.FilterableDomains())
	}
	return domain, nil
}
