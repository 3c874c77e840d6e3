// ABOUTME: Main entry point for the Nyaya MCP server with stdio transport
// ABOUTME: Initializes the RAG pipeline and registers all legal research tools
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nyaya-ai/nyaya/internal/config"
	"github.com/nyaya-ai/nyaya/internal/mcp"
	"github.com/nyaya-ai/nyaya/internal/rag"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - ingestion and retrieval will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pipeline, err := rag.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer func() { _ = pipeline.Close() }()

	server := mcpserver.NewMCPServer(
		"Nyaya Legal Research",
		"0.1.0",
	)

	mcp.RegisterTools(server, pipeline)

	log.Println("Nyaya MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
