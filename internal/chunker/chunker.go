// ABOUTME: Chunker splits cleaned legal text into overlapping, size-bounded segments
// ABOUTME: Tags each chunk with a heuristically inferred legal domain
package chunker

import (
	"regexp"
	"strings"

	"github.com/nyaya-ai/nyaya/internal/models"
)

const (
	// DefaultChunkSize is the character threshold at which a chunk closes.
	DefaultChunkSize = 1000
	// DefaultOverlap is the number of trailing words carried into the next chunk.
	DefaultOverlap = 200
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Strips everything except word characters (any script) and
	// punctuation relevant to legal citations.
	unsafeCharRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s.,;:()\-\[\]"'/&]`)
	pageMarkerRe = regexp.MustCompile(`--- Page \d+ ---`)
)

// Chunker produces ordered, overlapping chunks from raw document text.
type Chunker struct {
	chunkSize int
	overlap   int
	domains   []DomainKeywords
}

// New creates a Chunker. chunkSize is in characters, overlap in words.
// Non-positive values fall back to the defaults. The domain tables are
// held immutably for the lifetime of the Chunker.
func New(chunkSize, overlap int, domains []DomainKeywords) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if domains == nil {
		domains = DefaultDomainKeywords()
	}
	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
		domains:   domains,
	}
}

// Chunk cleans text, splits it into sentence-bounded segments of at most
// chunkSize characters (plus one sentence of overrun), and tags each with
// source provenance and an inferred legal domain. Chunks are returned in
// document order with contiguous 0-based sequence numbers.
func (c *Chunker) Chunk(text, source, docType string) []models.Chunk {
	cleaned := c.Clean(text)
	if cleaned == "" {
		return nil
	}

	segments := c.split(cleaned)

	chunks := make([]models.Chunk, len(segments))
	for i, seg := range segments {
		chunks[i] = models.Chunk{
			Content: seg,
			Metadata: models.ChunkMetadata{
				Source:      source,
				DocType:     docType,
				ChunkID:     i,
				TotalChunks: len(segments),
				Domain:      c.ClassifyDomain(seg),
			},
		}
	}
	return chunks
}

// Clean normalizes whitespace, strips characters outside the legal-safe
// set, replaces the rupee glyph with its ASCII abbreviation, and removes
// page-break markers.
func (c *Chunker) Clean(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "₹", "Rs.")
	text = unsafeCharRe.ReplaceAllString(text, "")
	text = pageMarkerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// split greedily accumulates ". "-delimited sentences into chunks. When
// the next sentence would push the buffer past chunkSize, the buffer is
// closed and the next one is seeded with the trailing overlap words plus
// the sentence that triggered the overflow. A single sentence longer than
// chunkSize becomes its own oversized chunk.
func (c *Chunker) split(text string) []string {
	sentences := strings.Split(text, ". ")

	var chunks []string
	current := ""
	for i, sentence := range sentences {
		if i < len(sentences)-1 {
			// Restore the separator consumed by Split; the final
			// sentence keeps whatever terminator it had.
			sentence += ". "
		}
		if len(current)+len(sentence) > c.chunkSize && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))

			words := strings.Fields(current)
			if len(words) > c.overlap {
				words = words[len(words)-c.overlap:]
			}
			current = strings.Join(words, " ") + " " + sentence
		} else {
			current += sentence
		}
	}
	if trailing := strings.TrimSpace(current); trailing != "" {
		chunks = append(chunks, trailing)
	}
	return chunks
}

// ClassifyDomain counts, per domain, how many of its keywords occur in the
// text (case-insensitive). The highest-scoring domain wins; equal scores
// resolve to the earlier entry in the domain table. All-zero scores yield
// DomainGeneral.
func (c *Chunker) ClassifyDomain(text string) models.Domain {
	lower := strings.ToLower(text)

	best := models.DomainGeneral
	bestScore := 0
	for _, dk := range c.domains {
		score := 0
		for _, kw := range dk.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = dk.Domain
			bestScore = score
		}
	}
	return best
}
