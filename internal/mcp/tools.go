// ABOUTME: MCP tool definitions and registration for the legal RAG server
// ABOUTME: Defines JSON schemas for the query, ingestion, and stats tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nyaya-ai/nyaya/internal/rag"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline *rag.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. legal_query - Answer a legal question from the indexed corpus
	server.AddTool(mcp.Tool{
		Name:        "legal_query",
		Description: "Answer a legal question using documents indexed in the corpus. Returns the answer with source citations and a confidence score.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Legal question to answer",
				},
				"domain": map[string]interface{}{
					"type":        "string",
					"description": "Optional legal domain filter (constitutional, criminal, civil, family, corporate, general)",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of documents to retrieve (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.LegalQuery)

	// 2. retrieve_documents - Ranked retrieval without answer generation
	server.AddTool(mcp.Tool{
		Name:        "retrieve_documents",
		Description: "Retrieve the most similar document chunks for a query without generating an answer. Each chunk carries the legal citations found in its text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"domain": map[string]interface{}{
					"type":        "string",
					"description": "Optional legal domain filter",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RetrieveDocuments)

	// 3. ingest_document - Chunk, embed, and index a document
	server.AddTool(mcp.Tool{
		Name:        "ingest_document",
		Description: "Chunk, embed, and index a legal document so it becomes retrievable.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full document text",
				},
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Document name or citation used in answers",
				},
				"doc_type": map[string]interface{}{
					"type":        "string",
					"description": "Document type (e.g. txt, pdf, judgment)",
				},
			},
			Required: []string{"text", "source"},
		},
	}, handlers.IngestDocument)

	// 4. corpus_stats - Report the size of the indexed corpus
	server.AddTool(mcp.Tool{
		Name:        "corpus_stats",
		Description: "Report the collection name and number of indexed document chunks.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.CorpusStats)

	return handlers
}
