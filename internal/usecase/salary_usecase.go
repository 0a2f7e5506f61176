package usecase

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"career-path/internal/domain/skill"
)

const (
	// maxSalaryTerms bounds the per-term retry chain for multi-term queries.
	maxSalaryTerms = 4
	// maxSalarySample bounds how many listings feed the search-based estimate.
	maxSalarySample = 50
)

const (
	SalarySourceHistory = "history"
	SalarySourceSearch  = "search"
)

// SalaryResult is a single representative mean salary for a query. Mean is
// nil when every fallback level came up empty; Source then stays "".
type SalaryResult struct {
	Mean    *float64           `json:"mean"`
	Source  string             `json:"source,omitempty"`
	Months  map[string]float64 `json:"month,omitempty"`
	Warning *Warning           `json:"warning,omitempty"`
}

type SalaryUsecase interface {
	Trends(ctx context.Context, techStack string) (SalaryResult, error)
}

type Salary struct {
	provider SalaryProvider
	cache    Cache
	logger   *log.Logger
}

func NewSalaryUsecase(provider SalaryProvider, cache Cache, logger *log.Logger) *Salary {
	return &Salary{provider: provider, cache: cache, logger: logger}
}

// Trends chains history → search → per-term history → per-term search,
// short-circuiting at the first level that yields a mean.
func (u *Salary) Trends(ctx context.Context, techStack string) (SalaryResult, error) {
	techStack = strings.TrimSpace(techStack)
	if techStack == "" {
		return SalaryResult{}, ErrInvalidInput
	}
	if u.provider == nil || !u.provider.HasCredentials() {
		return SalaryResult{}, ErrMissingCredentials
	}

	cacheKey := "salary:trends:" + skill.Normalize(techStack)
	if u.cache != nil {
		var cached SalaryResult
		if ok, _ := u.cache.GetJSON(ctx, cacheKey, &cached); ok {
			return cached, nil
		}
	}

	res := u.estimate(ctx, techStack)

	if u.cache != nil && res.Mean != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, res, 0)
	}
	return res, nil
}

func (u *Salary) estimate(ctx context.Context, techStack string) SalaryResult {
	res := SalaryResult{}

	if mean, months, ok := u.historyMean(ctx, techStack); ok {
		res.Mean = &mean
		res.Source = SalarySourceHistory
		res.Months = months
		return res
	} else if months != nil {
		res.Months = months
	}

	if mean, ok := u.searchMean(ctx, techStack); ok {
		res.Mean = &mean
		res.Source = SalarySourceSearch
		res.Warning = newWarning("salary history unavailable; estimated from search listings", "")
		return res
	}

	terms := skill.Tokenize([]string{techStack})
	if len(terms) > 1 {
		if len(terms) > maxSalaryTerms {
			terms = terms[:maxSalaryTerms]
		}
		for _, term := range terms {
			if mean, months, ok := u.historyMean(ctx, term); ok {
				res.Mean = &mean
				res.Source = SalarySourceHistory
				res.Months = months
				res.Warning = newWarning("no salary data for combined query; used per-term history", term)
				return res
			}
			if mean, ok := u.searchMean(ctx, term); ok {
				res.Mean = &mean
				res.Source = SalarySourceSearch
				res.Warning = newWarning("no salary data for combined query; estimated from per-term search listings", term)
				return res
			}
		}
	}

	res.Warning = newWarning("no salary data available for query", techStack)
	return res
}

// historyMean asks the salary-history endpoint. An explicit provider mean
// wins; otherwise the histogram's count-weighted average is used. The months
// series is returned even when no mean could be derived so callers can pass
// it through.
func (u *Salary) historyMean(ctx context.Context, what string) (float64, map[string]float64, bool) {
	h, err := u.provider.SalaryHistory(ctx, what)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("salary | history lookup failed | what=%q err=%v", what, err)
		}
		return 0, nil, false
	}

	if h.Mean != nil {
		return *h.Mean, h.Months, true
	}

	var weighted, total float64
	for bucket, count := range h.Histogram {
		v, err := strconv.ParseFloat(bucket, 64)
		if err != nil || count <= 0 {
			continue
		}
		weighted += v * count
		total += count
	}
	if total <= 0 {
		return 0, h.Months, false
	}
	return math.Round(weighted / total), h.Months, true
}

// searchMean estimates a mean from listing salary ranges: per listing the
// average of min/max when both are positive, otherwise whichever side is
// positive; listings with neither are excluded.
func (u *Salary) searchMean(ctx context.Context, what string) (float64, bool) {
	listings, err := u.provider.Search(ctx, what)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("salary | search lookup failed | what=%q err=%v", what, err)
		}
		return 0, false
	}
	if len(listings) > maxSalarySample {
		listings = listings[:maxSalarySample]
	}

	var sum float64
	var n int
	for _, l := range listings {
		est, ok := listingEstimate(l.SalaryMin, l.SalaryMax)
		if !ok {
			continue
		}
		sum += est
		n++
	}
	if n == 0 {
		return 0, false
	}
	return math.Round(sum / float64(n)), true
}

func listingEstimate(min, max float64) (float64, bool) {
	switch {
	case min > 0 && max > 0:
		return (min + max) / 2, true
	case min > 0:
		return min, true
	case max > 0:
		return max, true
	default:
		return 0, false
	}
}
