// ABOUTME: VectorIndex persists chunks with embeddings and answers nearest-neighbor queries
// ABOUTME: Supports exact-match metadata filters and distance-ascending ranking
package index

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nyaya-ai/nyaya/internal/models"
)

// Filter restricts query candidates to rows whose metadata matches exactly
// on every set field. The zero value matches everything.
type Filter struct {
	Domain models.Domain
	Source string
}

// Hit is one nearest-neighbor result with its raw distance.
type Hit struct {
	ID       string
	Content  string
	Metadata models.ChunkMetadata
	Distance float64
}

// VectorIndex owns the persisted documents of one collection.
// Reads are safe concurrently; Add calls are serialized against each
// other and each batch is atomic.
type VectorIndex struct {
	db         *DB
	collection string
	mu         sync.Mutex // serializes Add
}

// New creates a VectorIndex over the given collection namespace.
func New(db *DB, collection string) (*VectorIndex, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection name must not be empty")
	}
	return &VectorIndex{db: db, collection: collection}, nil
}

// Collection returns the namespace this index writes to.
func (ix *VectorIndex) Collection() string {
	return ix.collection
}

// Add persists one batch of chunks with their embeddings. Each chunk is
// assigned a fresh unique identifier; duplicate content produces separate
// entries. The batch commits atomically.
func (ix *VectorIndex) Add(chunks []models.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("got %d chunks but %d vectors", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO documents (id, collection, content, source, doc_type, chunk_seq, total_chunks, domain, vector, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for i, chunk := range chunks {
		_, err := stmt.Exec(
			uuid.New().String(),
			ix.collection,
			chunk.Content,
			chunk.Metadata.Source,
			chunk.Metadata.DocType,
			chunk.Metadata.ChunkID,
			chunk.Metadata.TotalChunks,
			string(chunk.Metadata.Domain),
			vectorToBlob(vectors[i]),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Query returns the k nearest entries to the query vector by cosine
// distance, ascending. A non-nil filter restricts candidates to exact
// metadata matches. Fewer than k matches returns all of them.
func (ix *VectorIndex) Query(vector []float64, k int, filter *Filter) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, content, source, doc_type, chunk_seq, total_chunks, domain, vector
		FROM documents
		WHERE collection = ?
	`
	args := []interface{}{ix.collection}

	if filter != nil {
		if filter.Domain != "" {
			query += " AND domain = ?"
			args = append(args, string(filter.Domain))
		}
		if filter.Source != "" {
			query += " AND source = ?"
			args = append(args, filter.Source)
		}
	}

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []Hit
	for rows.Next() {
		var (
			hit    Hit
			domain string
			blob   []byte
		)
		if err := rows.Scan(
			&hit.ID,
			&hit.Content,
			&hit.Metadata.Source,
			&hit.Metadata.DocType,
			&hit.Metadata.ChunkID,
			&hit.Metadata.TotalChunks,
			&domain,
			&blob,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		hit.Metadata.Domain = models.Domain(domain)
		hit.Distance = CosineDistance(vector, blobToVector(blob))
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Get loads one persisted document by its identifier.
func (ix *VectorIndex) Get(id string) (*models.IndexedDocument, error) {
	var (
		doc    models.IndexedDocument
		domain string
		blob   []byte
	)
	err := ix.db.QueryRow(`
		SELECT id, content, source, doc_type, chunk_seq, total_chunks, domain, vector, created_at
		FROM documents
		WHERE collection = ? AND id = ?
	`, ix.collection, id).Scan(
		&doc.ID,
		&doc.Content,
		&doc.Metadata.Source,
		&doc.Metadata.DocType,
		&doc.Metadata.ChunkID,
		&doc.Metadata.TotalChunks,
		&domain,
		&blob,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	doc.Metadata.Domain = models.Domain(domain)
	doc.Vector = blobToVector(blob)
	return &doc, nil
}

// Count returns the total number of entries in the collection.
func (ix *VectorIndex) Count() (int, error) {
	var count int
	err := ix.db.QueryRow(
		"SELECT COUNT(*) FROM documents WHERE collection = ?", ix.collection,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// Clear removes every entry in the collection.
func (ix *VectorIndex) Clear() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	_, err := ix.db.Exec("DELETE FROM documents WHERE collection = ?", ix.collection)
	if err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	return nil
}
