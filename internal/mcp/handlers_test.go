// ABOUTME: Tests for the MCP tool handlers over an in-memory pipeline
// ABOUTME: Covers argument validation, default result counts, and citation output
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nyaya-ai/nyaya/internal/chunker"
	"github.com/nyaya-ai/nyaya/internal/generate"
	"github.com/nyaya-ai/nyaya/internal/index"
	"github.com/nyaya-ai/nyaya/internal/rag"
)

// stubEmbedder maps every text to the same vector so all documents match
// any query with full similarity.
type stubEmbedder struct{}

func (stubEmbedder) Embed(text string) ([]float64, error) {
	return []float64{0, 0, 1}, nil
}

func (s stubEmbedder) EmbedBatch(texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i := range texts {
		vectors[i], _ = s.Embed(texts[i])
	}
	return vectors, nil
}

func testHandlers(t *testing.T) *Handlers {
	t.Helper()

	db, err := index.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ix, err := index.New(db, "test_docs")
	if err != nil {
		t.Fatalf("index.New() error = %v", err)
	}

	ch := chunker.New(200, 5, nil)
	pipeline := rag.New(ch, stubEmbedder{}, ix, generate.NewAssembler(nil))
	return &Handlers{pipeline: pipeline}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText extracts the single text payload from a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	for _, content := range res.Content {
		switch c := content.(type) {
		case mcp.TextContent:
			return c.Text
		case *mcp.TextContent:
			return c.Text
		}
	}
	t.Fatal("tool result has no text content")
	return ""
}

func ingest(t *testing.T, h *Handlers, text, source string) {
	t.Helper()
	res, err := h.IngestDocument(context.Background(), callReq(map[string]any{
		"text":   text,
		"source": source,
	}))
	if err != nil {
		t.Fatalf("IngestDocument(%s) error = %v", source, err)
	}
	if res.IsError {
		t.Fatalf("IngestDocument(%s) failed: %s", source, resultText(t, res))
	}
}

func TestLegalQuery_MissingQuery(t *testing.T) {
	h := testHandlers(t)

	res, err := h.LegalQuery(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("LegalQuery() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing query argument")
	}
}

func TestLegalQuery_InvalidDomain(t *testing.T) {
	h := testHandlers(t)

	res, err := h.LegalQuery(context.Background(), callReq(map[string]any{
		"query":  "what is bail?",
		"domain": "maritime",
	}))
	if err != nil {
		t.Fatalf("LegalQuery() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for unknown domain")
	}
}

func TestLegalQuery_AnswersFromCorpus(t *testing.T) {
	h := testHandlers(t)
	ingest(t, h, "Article 14 of the Constitution guarantees equality before the law.", "constitution.txt")

	res, err := h.LegalQuery(context.Background(), callReq(map[string]any{
		"query": "What does Article 14 guarantee?",
	}))
	if err != nil {
		t.Fatalf("LegalQuery() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("LegalQuery() failed: %s", resultText(t, res))
	}

	var payload struct {
		Response   string  `json:"response"`
		Confidence float64 `json:"confidence"`
		Sources    []struct {
			Source string `json:"source"`
			Domain string `json:"domain"`
		} `json:"sources"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.Response == "" {
		t.Error("expected a non-empty response")
	}
	if payload.Confidence <= 0 {
		t.Errorf("confidence = %v, want > 0", payload.Confidence)
	}
	if len(payload.Sources) == 0 || payload.Sources[0].Source != "constitution.txt" {
		t.Errorf("sources = %+v, want constitution.txt first", payload.Sources)
	}
}

func TestRetrieveDocuments_IncludesCitations(t *testing.T) {
	h := testHandlers(t)
	ingest(t, h, "Murder is punishable under Section 302 of the Indian Penal Code.", "ipc.txt")

	res, err := h.RetrieveDocuments(context.Background(), callReq(map[string]any{
		"query": "murder",
	}))
	if err != nil {
		t.Fatalf("RetrieveDocuments() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("RetrieveDocuments() failed: %s", resultText(t, res))
	}

	var payload struct {
		Documents []struct {
			Rank      int      `json:"rank"`
			Source    string   `json:"source"`
			Citations []string `json:"citations"`
		} `json:"documents"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(payload.Documents) != 1 {
		t.Fatalf("got %d documents, want 1", len(payload.Documents))
	}

	doc := payload.Documents[0]
	if doc.Rank != 1 {
		t.Errorf("rank = %d, want 1", doc.Rank)
	}
	found := false
	for _, c := range doc.Citations {
		if c == "Section 302 of the Indian Penal Code" {
			found = true
		}
	}
	if !found {
		t.Errorf("citations = %v, want statutory reference to Section 302", doc.Citations)
	}
}

func TestRetrieveDocuments_DefaultTopK(t *testing.T) {
	h := testHandlers(t)
	for i := 0; i < 7; i++ {
		ingest(t, h, fmt.Sprintf("Bail clause %d for the offence was heard.", i), fmt.Sprintf("crpc_%d.txt", i))
	}

	// With top_k omitted the advertised default of 5 applies, also when a
	// domain filter is set.
	for _, args := range []map[string]any{
		{"query": "bail"},
		{"query": "bail", "domain": "criminal"},
	} {
		res, err := h.RetrieveDocuments(context.Background(), callReq(args))
		if err != nil {
			t.Fatalf("RetrieveDocuments(%v) error = %v", args, err)
		}
		if res.IsError {
			t.Fatalf("RetrieveDocuments(%v) failed: %s", args, resultText(t, res))
		}

		var payload struct {
			Documents []json.RawMessage `json:"documents"`
		}
		if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if len(payload.Documents) != 5 {
			t.Errorf("args %v: got %d documents, want default of 5", args, len(payload.Documents))
		}
	}
}

func TestRetrieveDocuments_ExplicitTopK(t *testing.T) {
	h := testHandlers(t)
	for i := 0; i < 4; i++ {
		ingest(t, h, fmt.Sprintf("Bail clause %d for the offence was heard.", i), fmt.Sprintf("crpc_%d.txt", i))
	}

	res, err := h.RetrieveDocuments(context.Background(), callReq(map[string]any{
		"query": "bail",
		"top_k": 2,
	}))
	if err != nil {
		t.Fatalf("RetrieveDocuments() error = %v", err)
	}

	var payload struct {
		Documents []json.RawMessage `json:"documents"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(payload.Documents) != 2 {
		t.Errorf("got %d documents, want 2", len(payload.Documents))
	}
}

func TestIngestDocument_ReportsChunkCount(t *testing.T) {
	h := testHandlers(t)

	res, err := h.IngestDocument(context.Background(), callReq(map[string]any{
		"text":   "Article 14 of the Constitution guarantees equality before the law.",
		"source": "constitution.txt",
	}))
	if err != nil {
		t.Fatalf("IngestDocument() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IngestDocument() failed: %s", resultText(t, res))
	}

	var payload struct {
		Source        string `json:"source"`
		ChunksIndexed int    `json:"chunks_indexed"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.ChunksIndexed != 1 {
		t.Errorf("chunks_indexed = %d, want 1", payload.ChunksIndexed)
	}
	if payload.Source != "constitution.txt" {
		t.Errorf("source = %q, want constitution.txt", payload.Source)
	}
}

func TestIngestDocument_MissingText(t *testing.T) {
	h := testHandlers(t)

	res, err := h.IngestDocument(context.Background(), callReq(map[string]any{
		"source": "constitution.txt",
	}))
	if err != nil {
		t.Fatalf("IngestDocument() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing text argument")
	}
}

func TestCorpusStats(t *testing.T) {
	h := testHandlers(t)
	ingest(t, h, "Article 14 of the Constitution guarantees equality before the law.", "constitution.txt")

	res, err := h.CorpusStats(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("CorpusStats() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("CorpusStats() failed: %s", resultText(t, res))
	}

	var payload struct {
		Collection string `json:"collection"`
		Documents  int    `json:"documents"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.Collection != "test_docs" {
		t.Errorf("collection = %q, want test_docs", payload.Collection)
	}
	if payload.Documents != 1 {
		t.Errorf("documents = %d, want 1", payload.Documents)
	}
}
