// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines verbose/quiet/format behavior shared by every subcommand
package commands

import (
	"github.com/spf13/cobra"
)

const banner = `
███╗   ██╗██╗   ██╗ █████╗ ██╗   ██╗ █████╗
████╗  ██║╚██╗ ██╔╝██╔══██╗╚██╗ ██╔╝██╔══██╗
██╔██╗ ██║ ╚████╔╝ ███████║ ╚████╔╝ ███████║
██║╚██╗██║  ╚██╔╝  ██╔══██║  ╚██╔╝  ██╔══██║
██║ ╚████║   ██║   ██║  ██║   ██║   ██║  ██║
╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
`

// Global flags shared by all subcommands
var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nyaya",
		Short: "Legal research assistant for Indian law",
		Long: banner + `
Nyaya is a retrieval-augmented legal research assistant for Indian law.
It chunks and indexes legal documents locally, retrieves the most
relevant passages for a question, and assembles a grounded answer
with source citations and a confidence score.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, text, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewAskCmd(),
		NewIngestCmd(),
		NewSearchCmd(),
		NewStatsCmd(),
		NewClearCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
