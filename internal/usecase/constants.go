package usecase

import "time"

const (
	// DefaultRuleCacheTTL is how long the active rule snapshot stays cached
	// between explicit invalidations.
	DefaultRuleCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
