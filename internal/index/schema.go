// ABOUTME: SQLite schema for the legal document vector index
// ABOUTME: One row per indexed chunk with metadata columns and a vector BLOB
package index

// Schema contains all SQL statements for database initialization
const Schema = `
-- Indexed document chunks (content + provenance + embedding)
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    collection TEXT NOT NULL,
    content TEXT NOT NULL,
    source TEXT NOT NULL,
    doc_type TEXT,
    chunk_seq INTEGER NOT NULL,
    total_chunks INTEGER NOT NULL,
    domain TEXT NOT NULL,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for the metadata filters used on the query path
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
CREATE INDEX IF NOT EXISTS idx_documents_domain ON documents(collection, domain);
CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(collection, source);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
