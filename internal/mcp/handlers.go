// ABOUTME: MCP tool handler implementations for the legal RAG server
// ABOUTME: Wraps pipeline operations with argument validation and JSON responses
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nyaya-ai/nyaya/internal/chunker"
	"github.com/nyaya-ai/nyaya/internal/models"
	"github.com/nyaya-ai/nyaya/internal/rag"
)

// defaultToolTopK is the result count advertised by the tool schemas.
// Passed explicitly so a domain-filtered call gets the same default.
const defaultToolTopK = 5

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	pipeline *rag.Pipeline
}

// LegalQuery handles the legal_query tool
func (h *Handlers) LegalQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	domain, errResult := domainArg(request)
	if errResult != nil {
		return errResult, nil
	}

	answer := h.pipeline.Ask(query, rag.QueryOptions{
		TopK:   request.GetInt("top_k", defaultToolTopK),
		Domain: domain,
	})

	sources := make([]map[string]interface{}, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, map[string]interface{}{
			"source": src.Source,
			"type":   src.DocType,
			"domain": string(src.Domain),
		})
	}

	response := map[string]interface{}{
		"response":   answer.Response,
		"sources":    sources,
		"confidence": answer.Confidence,
	}

	return jsonResult(response)
}

// RetrieveDocuments handles the retrieve_documents tool
func (h *Handlers) RetrieveDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	domain, errResult := domainArg(request)
	if errResult != nil {
		return errResult, nil
	}

	results, err := h.pipeline.Retrieve(query, rag.QueryOptions{
		TopK:   request.GetInt("top_k", defaultToolTopK),
		Domain: domain,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("retrieval failed: %v", err)), nil
	}

	documents := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		citations := []string{}
		for _, c := range chunker.ExtractCitations(res.Content) {
			citations = append(citations, c.String())
		}
		documents = append(documents, map[string]interface{}{
			"rank":             res.Rank,
			"content":          res.Content,
			"source":           res.Metadata.Source,
			"domain":           string(res.Metadata.Domain),
			"similarity_score": res.SimilarityScore,
			"citations":        citations,
		})
	}

	return jsonResult(map[string]interface{}{"documents": documents})
}

// IngestDocument handles the ingest_document tool
func (h *Handlers) IngestDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("source argument is required and must be a string"), nil
	}
	docType := request.GetString("doc_type", "txt")

	count, err := h.pipeline.IngestDocument(text, source, docType)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"source":         source,
		"chunks_indexed": count,
	})
}

// CorpusStats handles the corpus_stats tool
func (h *Handlers) CorpusStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.pipeline.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read stats: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"collection": stats.Collection,
		"documents":  stats.Documents,
	})
}

// domainArg reads and validates the optional domain argument.
func domainArg(request mcp.CallToolRequest) (models.Domain, *mcp.CallToolResult) {
	raw := request.GetString("domain", "")
	if raw == "" {
		return "", nil
	}
	domain := models.Domain(raw)
	if !domain.Valid() {
		return "", mcp.NewToolResultError(fmt.Sprintf("unknown domain %q", raw))
	}
	return domain, nil
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
