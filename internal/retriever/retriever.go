// ABOUTME: Retriever turns a query into ranked RetrievalResults via the vector index
// ABOUTME: Converts distances to similarity scores and assigns 1-based ranks
package retriever

import (
	"fmt"

	"github.com/nyaya-ai/nyaya/internal/index"
	"github.com/nyaya-ai/nyaya/internal/models"
)

const (
	// DefaultTopK is the result count for unfiltered retrieval
	DefaultTopK = 5
	// DefaultFilteredTopK is the result count for domain-filtered retrieval
	DefaultFilteredTopK = 10
)

// Embedder maps text to a fixed-length vector.
type Embedder interface {
	Embed(text string) ([]float64, error)
}

// Retriever answers similarity queries over one vector index.
type Retriever struct {
	embedder Embedder
	index    *index.VectorIndex
}

// New creates a Retriever over the given embedder and index.
func New(embedder Embedder, ix *index.VectorIndex) *Retriever {
	return &Retriever{embedder: embedder, index: ix}
}

// Retrieve returns up to k results ranked by descending similarity.
// An empty index or no matches yields an empty result, not an error.
func (r *Retriever) Retrieve(query string, k int) ([]models.RetrievalResult, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	return r.retrieve(query, k, nil)
}

// RetrieveFiltered restricts candidates to the given legal domain.
// An empty domain behaves like Retrieve with the filtered default k.
func (r *Retriever) RetrieveFiltered(query string, domain models.Domain, k int) ([]models.RetrievalResult, error) {
	if k <= 0 {
		k = DefaultFilteredTopK
	}

	var filter *index.Filter
	if domain != "" {
		filter = &index.Filter{Domain: domain}
	}
	return r.retrieve(query, k, filter)
}

func (r *Retriever) retrieve(query string, k int, filter *index.Filter) ([]models.RetrievalResult, error) {
	vector, err := r.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := r.index.Query(vector, k, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	results := make([]models.RetrievalResult, len(hits))
	for i, hit := range hits {
		results[i] = models.RetrievalResult{
			Content:         hit.Content,
			Metadata:        hit.Metadata,
			SimilarityScore: clamp01(1.0 - hit.Distance),
			Rank:            i + 1,
		}
	}
	return results, nil
}

// clamp01 bounds a similarity score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
