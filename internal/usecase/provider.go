package usecase

import (
	"context"
	"time"

	"career-path/internal/domain/skill"
	"career-path/internal/provider/adzuna"
)

// JobSearchProvider is the credentialed primary job source.
type JobSearchProvider interface {
	Search(ctx context.Context, what string) ([]skill.Listing, error)
	HasCredentials() bool
}

// FallbackJobProvider is the no-credential alternate job source used when
// the primary is unconfigured or failing.
type FallbackJobProvider interface {
	Search(ctx context.Context, query string) ([]skill.Listing, error)
}

// SalaryProvider exposes the two provider endpoints the estimator chains:
// salary history first, listing search second.
type SalaryProvider interface {
	SalaryHistory(ctx context.Context, what string) (adzuna.History, error)
	Search(ctx context.Context, what string) ([]skill.Listing, error)
	HasCredentials() bool
}

// Cache is the slice of the Redis wrapper the usecases need. A nil Cache
// disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
