package usecase

import (
	"context"
	"log"
	"strings"

	"career-path/internal/domain/skill"
)

const (
	// maxListings caps the merged result of a live-jobs call.
	maxListings = 20
	// maxFanOutTerms bounds the per-term queries issued for a multi-term
	// role string, to cap worst-case latency and provider load.
	maxFanOutTerms = 6
)

const (
	JobSourceAdzuna   = "adzuna"
	JobSourceRemotive = "remotive"
)

type JobsResult struct {
	Source   string
	Listings []skill.Listing
}

type JobsUsecase interface {
	LiveJobs(ctx context.Context, role string) (JobsResult, error)
}

type Jobs struct {
	primary  JobSearchProvider
	fallback FallbackJobProvider
	cache    Cache
	logger   *log.Logger
}

func NewJobsUsecase(primary JobSearchProvider, fallback FallbackJobProvider, cache Cache, logger *log.Logger) *Jobs {
	return &Jobs{primary: primary, fallback: fallback, cache: cache, logger: logger}
}

// LiveJobs fetches candidate listings for a role string. The combined query
// runs first; multi-term roles additionally fan out one query per term.
// Results merge deduplicated by listing id, first occurrence wins, capped
// at maxListings.
func (u *Jobs) LiveJobs(ctx context.Context, role string) (JobsResult, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return JobsResult{}, ErrInvalidInput
	}

	cacheKey := "jobs:live:" + skill.Normalize(role)
	if u.cache != nil {
		var cached JobsResult
		if ok, _ := u.cache.GetJSON(ctx, cacheKey, &cached); ok {
			return cached, nil
		}
	}

	res, err := u.liveJobs(ctx, role)
	if err != nil {
		return JobsResult{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, res, 0)
	}
	return res, nil
}

func (u *Jobs) liveJobs(ctx context.Context, role string) (JobsResult, error) {
	if u.primary == nil || !u.primary.HasCredentials() {
		listings, err := u.fallbackSearch(ctx, role)
		if err != nil {
			return JobsResult{}, err
		}
		return JobsResult{Source: JobSourceRemotive, Listings: listings}, nil
	}

	combined, err := u.primary.Search(ctx, role)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("jobs | combined query failed, using fallback provider | role=%q err=%v", role, err)
		}
		listings, fbErr := u.fallbackSearch(ctx, role)
		if fbErr != nil {
			// The primary failure is the interesting one.
			return JobsResult{}, err
		}
		return JobsResult{Source: JobSourceRemotive, Listings: listings}, nil
	}

	merged := capListings(combined, maxListings)
	seen := make(map[string]struct{}, len(merged))
	for _, l := range merged {
		seen[l.ID] = struct{}{}
	}

	terms := skill.Tokenize([]string{role})
	if len(terms) > 1 {
		if len(terms) > maxFanOutTerms {
			terms = terms[:maxFanOutTerms]
		}
		for _, term := range terms {
			if len(merged) >= maxListings {
				break
			}
			perTerm, err := u.primary.Search(ctx, term)
			if err != nil {
				if u.logger != nil {
					u.logger.Printf("jobs | per-term query skipped | term=%q err=%v", term, err)
				}
				continue
			}
			for _, l := range perTerm {
				if len(merged) >= maxListings {
					break
				}
				if _, ok := seen[l.ID]; ok {
					continue
				}
				seen[l.ID] = struct{}{}
				merged = append(merged, l)
			}
		}
	}

	return JobsResult{Source: JobSourceAdzuna, Listings: merged}, nil
}

func (u *Jobs) fallbackSearch(ctx context.Context, role string) ([]skill.Listing, error) {
	if u.fallback == nil {
		return nil, ErrMissingCredentials
	}
	listings, err := u.fallback.Search(ctx, role)
	if err != nil {
		return nil, err
	}
	return capListings(listings, maxListings), nil
}

// capListings truncates to n entries while deduplicating by listing id,
// first occurrence wins.
func capListings(listings []skill.Listing, n int) []skill.Listing {
	out := make([]skill.Listing, 0, n)
	seen := make(map[string]struct{}, n)
	for _, l := range listings {
		if len(out) >= n {
			break
		}
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}
