// ABOUTME: Chunk represents a bounded segment of legal text with provenance metadata
// ABOUTME: Defines the legal domain enum shared by chunking and retrieval filters
package models

// Domain is a coarse legal-topic label attached to a chunk.
type Domain string

const (
	DomainConstitutional Domain = "constitutional"
	DomainCriminal       Domain = "criminal"
	DomainCivil          Domain = "civil"
	DomainFamily         Domain = "family"
	DomainCorporate      Domain = "corporate"
	DomainGeneral        Domain = "general"
)

// FilterableDomains lists the domains a caller may filter retrieval by.
// DomainGeneral is a fallback tag, not a filter value.
func FilterableDomains() []Domain {
	return []Domain{
		DomainConstitutional,
		DomainCriminal,
		DomainCivil,
		DomainFamily,
		DomainCorporate,
	}
}

// Valid reports whether d is a known domain label (including general).
func (d Domain) Valid() bool {
	switch d {
	case DomainConstitutional, DomainCriminal, DomainCivil, DomainFamily, DomainCorporate, DomainGeneral:
		return true
	}
	return false
}

// ChunkMetadata carries the provenance of a chunk. The field set is the
// shared schema between ingestion and retrieval filtering; filter code
// references these fields by name, so renames must migrate stored rows.
type ChunkMetadata struct {
	Source      string `json:"source"`
	DocType     string `json:"type"`
	ChunkID     int    `json:"chunk_id"`
	TotalChunks int    `json:"total_chunks"`
	Domain      Domain `json:"domain"`
}

// Chunk is a bounded segment of source text ready for embedding.
type Chunk struct {
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}
