// ABOUTME: Centralized configuration for the legal RAG pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration consumed by the core pipeline.
type Config struct {
	// Storage settings
	DataDir    string
	DBPath     string
	Collection string

	// Chunking settings
	ChunkSize    int // characters per chunk
	ChunkOverlap int // words of overlap between consecutive chunks

	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	ChatModel      string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	DefaultTopK     int
	VectorDimension int
}

// DefaultDataDir returns the XDG-compliant default data directory.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/nyaya"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "nyaya")
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataDir := getEnv("NYAYA_DATA_DIR", DefaultDataDir())

	cfg := &Config{
		DataDir:         dataDir,
		DBPath:          getEnv("NYAYA_DB_PATH", filepath.Join(dataDir, "legal_docs.db")),
		Collection:      getEnv("NYAYA_COLLECTION", "indian_legal_docs"),
		ChunkSize:       getEnvInt("NYAYA_CHUNK_SIZE", 1000),
		ChunkOverlap:    getEnvInt("NYAYA_CHUNK_OVERLAP", 200),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:  getEnv("NYAYA_EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:       getEnv("NYAYA_CHAT_MODEL", "gpt-4o-mini"),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DefaultTopK:     getEnvInt("NYAYA_DEFAULT_TOP_K", 5),
		VectorDimension: getEnvInt("NYAYA_VECTOR_DIMENSION", 1536),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("NYAYA_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("NYAYA_CHUNK_OVERLAP must be non-negative, got %d", c.ChunkOverlap)
	}
	if c.DefaultTopK <= 0 {
		return fmt.Errorf("NYAYA_DEFAULT_TOP_K must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("NYAYA_VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.Collection == "" {
		return fmt.Errorf("NYAYA_COLLECTION must not be empty")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
