// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Pipeline construction, output helpers, and flag validation
package commands

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/nyaya-ai/nyaya/internal/config"
	"github.com/nyaya-ai/nyaya/internal/rag"
)

// loadPipeline builds the full pipeline from the environment. Callers
// must Close() the returned pipeline.
func loadPipeline() (*rag.Pipeline, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	pipeline, err := rag.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing pipeline: %w", err)
	}
	return pipeline, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
