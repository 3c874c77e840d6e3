// ABOUTME: Pipeline wires chunker, embedder, vector index, retriever, and assembler
// ABOUTME: Ingests documents end to end and answers queries with graceful degradation
package rag

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nyaya-ai/nyaya/internal/chunker"
	"github.com/nyaya-ai/nyaya/internal/config"
	"github.com/nyaya-ai/nyaya/internal/generate"
	"github.com/nyaya-ai/nyaya/internal/index"
	"github.com/nyaya-ai/nyaya/internal/llm"
	"github.com/nyaya-ai/nyaya/internal/models"
	"github.com/nyaya-ai/nyaya/internal/retriever"
)

// EmbeddingClient maps text to fixed-length vectors. Satisfied by
// llm.Client.
type EmbeddingClient interface {
	Embed(text string) ([]float64, error)
	EmbedBatch(texts []string) ([][]float64, error)
}

// QueryOptions tune a single Ask call. The zero value uses the default
// result count and no domain filter.
type QueryOptions struct {
	TopK   int
	Domain models.Domain
}

// Stats describes the indexed corpus.
type Stats struct {
	Collection string `json:"collection"`
	Documents  int    `json:"documents"`
}

// Pipeline is the assembled legal RAG system: document ingestion on one
// side, query answering on the other.
type Pipeline struct {
	chunker    *chunker.Chunker
	normalizer *chunker.Normalizer
	embedder   EmbeddingClient
	index      *index.VectorIndex
	retriever  *retriever.Retriever
	assembler  *generate.Assembler

	db *index.DB // owned when constructed via FromConfig, nil otherwise
}

// New assembles a Pipeline from its parts. The caller retains ownership
// of the underlying database.
func New(ch *chunker.Chunker, embedder EmbeddingClient, ix *index.VectorIndex, assembler *generate.Assembler) *Pipeline {
	return &Pipeline{
		chunker:    ch,
		normalizer: chunker.NewNormalizer(nil),
		embedder:   embedder,
		index:      ix,
		retriever:  retriever.New(embedder, ix),
		assembler:  assembler,
	}
}

// FromConfig builds a ready-to-use Pipeline: opens the database, creates
// the OpenAI client, and wires the model responder. A missing API key is
// not fatal; the pipeline runs with the rule-based responder only and a
// warning on stderr, but ingestion will fail without an embedder.
func FromConfig(cfg *config.Config) (*Pipeline, error) {
	db, err := index.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	ix, err := index.New(db, cfg.Collection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})

	var embedder EmbeddingClient
	var primary generate.Responder
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; answers will use the rule-based responder\n", err)
	} else {
		embedder = client
		primary = generate.NewModelResponder(client)
	}

	ch := chunker.New(cfg.ChunkSize, cfg.ChunkOverlap, nil)

	p := New(ch, embedder, ix, generate.NewAssembler(primary))
	p.db = db
	return p, nil
}

// Close releases the database when the Pipeline owns it.
func (p *Pipeline) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

// IngestDocument normalizes, chunks, embeds, and indexes a raw document.
// Returns the number of chunks indexed. Empty or whitespace-only text
// indexes nothing and is not an error.
func (p *Pipeline) IngestDocument(text, source, docType string) (int, error) {
	chunks := p.chunker.Chunk(p.normalizer.Normalize(text), source, docType)
	return p.IngestChunks(chunks)
}

// IngestChunks embeds and indexes pre-chunked documents.
func (p *Pipeline) IngestChunks(chunks []models.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	if p.embedder == nil {
		return 0, fmt.Errorf("cannot ingest documents: %w", llm.ErrModelUnavailable)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := p.embedder.EmbedBatch(texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed %d chunks: %w", len(chunks), err)
	}

	if err := p.index.Add(chunks, vectors); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// Ask retrieves context for the query and assembles an answer. Per-query
// failures degrade: a retrieval failure yields the no-information answer
// rather than an error, so Ask only fails on misuse, never on transient
// backend trouble.
func (p *Pipeline) Ask(query string, opts QueryOptions) models.GeneratedAnswer {
	docs := p.retrieve(query, opts)
	return p.assembler.Generate(query, docs)
}

func (p *Pipeline) retrieve(query string, opts QueryOptions) []models.RetrievalResult {
	if p.embedder == nil {
		return nil
	}

	var docs []models.RetrievalResult
	var err error
	if opts.Domain != "" {
		docs, err = p.retriever.RetrieveFiltered(query, opts.Domain, opts.TopK)
	} else {
		docs, err = p.retriever.Retrieve(query, opts.TopK)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: retrieval failed, answering without context: %v\n", err)
		return nil
	}
	return docs
}

// Retrieve exposes ranked retrieval without answer generation.
func (p *Pipeline) Retrieve(query string, opts QueryOptions) ([]models.RetrievalResult, error) {
	if p.embedder == nil {
		return nil, llm.ErrModelUnavailable
	}
	if opts.Domain != "" {
		return p.retriever.RetrieveFiltered(query, opts.Domain, opts.TopK)
	}
	return p.retriever.Retrieve(query, opts.TopK)
}

// Stats reports the size of the indexed corpus.
func (p *Pipeline) Stats() (Stats, error) {
	count, err := p.index.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{Collection: p.index.Collection(), Documents: count}, nil
}

// Clear removes every indexed document in the collection.
func (p *Pipeline) Clear() error {
	return p.index.Clear()
}
