// ABOUTME: Request-scoped result types produced on the query path
// ABOUTME: Defines RetrievalResult and GeneratedAnswer returned to callers
package models

// RetrievalResult is one ranked hit from the vector index. Ephemeral,
// produced per query and never persisted.
type RetrievalResult struct {
	Content         string        `json:"content"`
	Metadata        ChunkMetadata `json:"metadata"`
	SimilarityScore float64       `json:"similarity_score"`
	Rank            int           `json:"rank"`
}

// GeneratedAnswer is the final response assembled for a query.
// Sources always lists the metadata of every document supplied to the
// assembler, regardless of which generation path produced the response.
type GeneratedAnswer struct {
	Response   string          `json:"response"`
	Sources    []ChunkMetadata `json:"sources"`
	Confidence float64         `json:"confidence"`
}
