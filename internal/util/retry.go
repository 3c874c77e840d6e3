// ABOUTME: Retry utilities for model API calls with exponential backoff
// ABOUTME: Shared by the embedding and generation clients for consistent retry behavior
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns exponential backoff with jitter for the given attempt.
// Base delay is doubled each attempt, with random jitter up to 25%,
// capped at 30 seconds.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in the bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	// A zero or negative base delay means no wait; the jitter draw below
	// requires a positive interval.
	if backoff <= 0 {
		return 0
	}
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// Jitter: -25% to +25%
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
