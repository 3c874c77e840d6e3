// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to query and grow the legal corpus via stdio
package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nyaya-ai/nyaya/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Nyaya as an MCP (Model Context Protocol) server, exposing legal
query, document ingestion, and corpus statistics tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  nyaya mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "nyaya": {
  #       "command": "nyaya",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - ingestion and retrieval will not work")
	}

	pipeline, err := loadPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	server := mcpserver.NewMCPServer(
		"Nyaya Legal Research",
		"0.1.0",
	)

	mcp.RegisterTools(server, pipeline)

	if !quiet {
		log.Println("Nyaya MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
