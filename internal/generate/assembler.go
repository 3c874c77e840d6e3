// ABOUTME: Assembler builds a grounded prompt from retrieved documents and produces a GeneratedAnswer
// ABOUTME: Falls back to the rule-based responder and never propagates a per-query failure
package generate

import (
	"fmt"
	"os"
	"strings"

	"github.com/nyaya-ai/nyaya/internal/models"
)

const (
	contextDocs      = 3
	contextCharLimit = 500

	defaultSourceLabel = "Legal Document"

	apologyResponse = "I apologize, but I'm unable to process your legal query at the moment. " +
		"Please try again later."
)

const promptTemplate = `Based on Indian legal documents and constitution, please answer the following legal question:

Query: %s

Legal Context:
%s

Please provide a clear, accurate response based on Indian law. If the information is insufficient, please mention that additional legal consultation may be required.

Response:`

// Assembler turns a query and its retrieved documents into a grounded
// answer. The primary responder is tried first; any failure falls back to
// the rule-based responder, and a total failure yields a fixed apology
// answer with confidence 0.
type Assembler struct {
	primary  Responder // may be nil when no model is available
	fallback Responder
}

// NewAssembler creates an Assembler. primary may be nil, in which case
// every query takes the rule-based path.
func NewAssembler(primary Responder) *Assembler {
	return &Assembler{
		primary:  primary,
		fallback: NewRuleBasedResponder(),
	}
}

// Generate produces a GeneratedAnswer for the query. It never returns an
// error: per-query failures degrade to the rule-based response or, on
// total failure, to a fixed apology answer.
func (a *Assembler) Generate(query string, docs []models.RetrievalResult) (answer models.GeneratedAnswer) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Warning: response generation panicked: %v\n", r)
			answer = models.GeneratedAnswer{
				Response:   apologyResponse,
				Sources:    []models.ChunkMetadata{},
				Confidence: 0.0,
			}
		}
	}()

	context := a.buildContext(docs)
	prompt := fmt.Sprintf(promptTemplate, query, context)

	response := a.respond(prompt, docs)

	sources := make([]models.ChunkMetadata, len(docs))
	for i, doc := range docs {
		sources[i] = doc.Metadata
	}

	return models.GeneratedAnswer{
		Response:   response,
		Sources:    sources,
		Confidence: confidence(docs),
	}
}

// respond tries the primary responder, then the fallback. The fallback
// never fails.
func (a *Assembler) respond(prompt string, docs []models.RetrievalResult) string {
	if a.primary != nil {
		response, err := a.primary.Respond(prompt, docs)
		if err == nil {
			return response
		}
		fmt.Fprintf(os.Stderr, "Warning: falling back to rule-based response: %v\n", err)
	}

	response, _ := a.fallback.Respond(prompt, docs)
	return response
}

// buildContext joins the top documents as "From <source>: <content>"
// blocks, truncating each to the context character limit.
func (a *Assembler) buildContext(docs []models.RetrievalResult) string {
	limit := contextDocs
	if len(docs) < limit {
		limit = len(docs)
	}

	parts := make([]string, 0, limit)
	for _, doc := range docs[:limit] {
		source := doc.Metadata.Source
		if source == "" {
			source = defaultSourceLabel
		}
		parts = append(parts, fmt.Sprintf("From %s: %s", source, truncate(doc.Content, contextCharLimit)))
	}
	return strings.Join(parts, "\n\n")
}

// confidence is the arithmetic mean of the supplied similarity scores,
// 0 when none were supplied.
func confidence(docs []models.RetrievalResult) float64 {
	if len(docs) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, doc := range docs {
		sum += doc.SimilarityScore
	}
	return sum / float64(len(docs))
}
