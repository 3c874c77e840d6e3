// ABOUTME: Tests for the vector index add/query/count/clear contract
// ABOUTME: Verifies metadata filters, ranking order, and batch atomicity
package index

import (
	"testing"

	"github.com/nyaya-ai/nyaya/internal/models"
)

func testIndex(t *testing.T) *VectorIndex {
	t.Helper()

	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ix, err := New(db, "test_docs")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return ix
}

func testChunk(content string, seq int, domain models.Domain) models.Chunk {
	return models.Chunk{
		Content: content,
		Metadata: models.ChunkMetadata{
			Source:      "test.txt",
			DocType:     "txt",
			ChunkID:     seq,
			TotalChunks: 1,
			Domain:      domain,
		},
	}
}

func TestNew_EmptyCollection(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := New(db, ""); err == nil {
		t.Error("New() should reject an empty collection name")
	}
}

func TestAdd_MismatchedLengths(t *testing.T) {
	ix := testIndex(t)

	err := ix.Add(
		[]models.Chunk{testChunk("a", 0, models.DomainGeneral)},
		[][]float64{{1, 0}, {0, 1}},
	)
	if err == nil {
		t.Error("Add() should fail when chunks and vectors differ in length")
	}
}

func TestAddAndCount(t *testing.T) {
	ix := testIndex(t)

	chunks := []models.Chunk{
		testChunk("equality before law", 0, models.DomainConstitutional),
		testChunk("punishment for offence", 1, models.DomainCriminal),
	}
	vectors := [][]float64{{1, 0, 0}, {0, 1, 0}}

	if err := ix.Add(chunks, vectors); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	count, err := ix.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestAdd_DuplicateContentAllowed(t *testing.T) {
	ix := testIndex(t)

	chunk := testChunk("same text", 0, models.DomainGeneral)
	vec := []float64{1, 0}

	if err := ix.Add([]models.Chunk{chunk}, [][]float64{vec}); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if err := ix.Add([]models.Chunk{chunk}, [][]float64{vec}); err != nil {
		t.Fatalf("second Add() error = %v", err)
	}

	count, err := ix.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2 (duplicates produce separate entries)", count)
	}
}

func TestQuery_DistanceAscending(t *testing.T) {
	ix := testIndex(t)

	chunks := []models.Chunk{
		testChunk("exact match", 0, models.DomainGeneral),
		testChunk("close match", 1, models.DomainGeneral),
		testChunk("far match", 2, models.DomainGeneral),
	}
	vectors := [][]float64{
		{1, 0},
		{0.9, 0.1},
		{0, 1},
	}
	if err := ix.Add(chunks, vectors); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 0}, 3, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}

	if hits[0].Content != "exact match" {
		t.Errorf("top hit = %q, want exact match", hits[0].Content)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Distance < hits[i-1].Distance {
			t.Errorf("hits not in ascending distance order: %v then %v",
				hits[i-1].Distance, hits[i].Distance)
		}
	}
	if hits[0].Distance > 1e-9 {
		t.Errorf("distance of exact match = %v, want ~0", hits[0].Distance)
	}
}

func TestQuery_LimitsToK(t *testing.T) {
	ix := testIndex(t)

	var chunks []models.Chunk
	var vectors [][]float64
	for i := 0; i < 10; i++ {
		chunks = append(chunks, testChunk("chunk", i, models.DomainGeneral))
		vectors = append(vectors, []float64{float64(i), 1})
	}
	if err := ix.Add(chunks, vectors); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 1}, 3, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 3 {
		t.Errorf("got %d hits, want 3", len(hits))
	}
}

func TestQuery_FewerMatchesThanK(t *testing.T) {
	ix := testIndex(t)

	if err := ix.Add(
		[]models.Chunk{testChunk("only one", 0, models.DomainGeneral)},
		[][]float64{{1, 0}},
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("got %d hits, want 1", len(hits))
	}
}

func TestQuery_EmptyIndex(t *testing.T) {
	ix := testIndex(t)

	hits, err := ix.Query([]float64{1, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("got %d hits from empty index, want 0", len(hits))
	}
}

func TestQuery_DomainFilter(t *testing.T) {
	ix := testIndex(t)

	chunks := []models.Chunk{
		testChunk("bail provisions", 0, models.DomainCriminal),
		testChunk("divorce proceedings", 1, models.DomainFamily),
		testChunk("arrest procedure", 2, models.DomainCriminal),
	}
	vectors := [][]float64{{1, 0}, {1, 0.01}, {0.9, 0.1}}
	if err := ix.Add(chunks, vectors); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 0}, 10, &Filter{Domain: models.DomainCriminal})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	for _, h := range hits {
		if h.Metadata.Domain != models.DomainCriminal {
			t.Errorf("hit domain = %q, want criminal", h.Metadata.Domain)
		}
	}
}

func TestQuery_ComposedFilters(t *testing.T) {
	ix := testIndex(t)

	a := testChunk("criminal text from a", 0, models.DomainCriminal)
	a.Metadata.Source = "a.txt"
	b := testChunk("criminal text from b", 0, models.DomainCriminal)
	b.Metadata.Source = "b.txt"

	if err := ix.Add([]models.Chunk{a, b}, [][]float64{{1, 0}, {1, 0}}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 0}, 10, &Filter{
		Domain: models.DomainCriminal,
		Source: "b.txt",
	})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Metadata.Source != "b.txt" {
		t.Errorf("hit source = %q, want b.txt", hits[0].Metadata.Source)
	}
}

func TestQuery_MetadataRoundTrip(t *testing.T) {
	ix := testIndex(t)

	chunk := models.Chunk{
		Content: "Article 14 guarantees equality",
		Metadata: models.ChunkMetadata{
			Source:      "Constitution Article 14",
			DocType:     "txt",
			ChunkID:     3,
			TotalChunks: 7,
			Domain:      models.DomainConstitutional,
		},
	}
	if err := ix.Add([]models.Chunk{chunk}, [][]float64{{1, 0}}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	hits, err := ix.Query([]float64{1, 0}, 1, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}

	got := hits[0].Metadata
	if got != chunk.Metadata {
		t.Errorf("metadata = %+v, want %+v", got, chunk.Metadata)
	}
	if hits[0].ID == "" {
		t.Error("hit should carry its assigned id")
	}

	doc, err := ix.Get(hits[0].ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.Content != chunk.Content {
		t.Errorf("Get() content = %q, want %q", doc.Content, chunk.Content)
	}
	if doc.Metadata != chunk.Metadata {
		t.Errorf("Get() metadata = %+v, want %+v", doc.Metadata, chunk.Metadata)
	}
	if len(doc.Vector) != 2 || doc.Vector[0] != 1 || doc.Vector[1] != 0 {
		t.Errorf("Get() vector = %v, want [1 0]", doc.Vector)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("Get() should carry the ingestion timestamp")
	}
}

func TestGet_UnknownID(t *testing.T) {
	ix := testIndex(t)

	if _, err := ix.Get("no-such-id"); err == nil {
		t.Error("Get() should fail for an unknown id")
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ixA, err := New(db, "coll_a")
	if err != nil {
		t.Fatal(err)
	}
	ixB, err := New(db, "coll_b")
	if err != nil {
		t.Fatal(err)
	}

	if err := ixA.Add(
		[]models.Chunk{testChunk("in a", 0, models.DomainGeneral)},
		[][]float64{{1, 0}},
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	countB, err := ixB.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if countB != 0 {
		t.Errorf("collection b count = %d, want 0", countB)
	}

	hits, err := ixB.Query([]float64{1, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("collection b got %d hits, want 0", len(hits))
	}
}

func TestClear(t *testing.T) {
	ix := testIndex(t)

	if err := ix.Add(
		[]models.Chunk{testChunk("to clear", 0, models.DomainGeneral)},
		[][]float64{{1, 0}},
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := ix.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	count, err := ix.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after Clear = %d, want 0", count)
	}
}
