// ABOUTME: IndexedDocument is the persisted form of a chunk in the vector index
// ABOUTME: Created on ingestion, immutable thereafter
package models

import "time"

// IndexedDocument pairs a chunk with its embedding and a globally unique
// identifier. The vector index exclusively owns these rows.
type IndexedDocument struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Metadata  ChunkMetadata `json:"metadata"`
	Vector    []float64     `json:"vector"`
	CreatedAt time.Time     `json:"created_at"`
}
