package pipeline

import (
	"context"

	"github.com/rohankatakam/reporadar/internal/types"
)

// Enricher exposes the secondary lookups that compute signals absent from
// the search response. Every lookup degrades to zero/false on failure.
type Enricher interface {
	ContributorStats(ctx context.Context, owner, name string) (count int, topShare float64)
	LastActivityWithin(ctx context.Context, owner, name string, windowDays int) bool
	StarGrowth(ctx context.Context, owner, name string, windowDays int) int
}

// Filter is one predicate in the chain. The chain short-circuits on the
// first rejection, so predicates that only read search-response fields must
// be ordered before predicates that call the Enricher: enrichment is
// network-bound and must not run for already-disqualified candidates.
type Filter struct {
	Name string
	Keep func(ctx context.Context, c *types.Candidate, e Enricher) bool
}

// WithinBounds re-checks the star and fork caps already embedded in the
// query; the search index occasionally lags the live counts. Cheap.
func WithinBounds(maxStars, maxForks int) Filter {
	return Filter{
		Name: "within-bounds",
		Keep: func(_ context.Context, c *types.Candidate, _ Enricher) bool {
			return c.Stars < maxStars && c.Forks < maxForks
		},
	}
}

// MaxAge rejects repositories older than the lookback window. Cheap: the
// age is derived from the search response.
func MaxAge(lookbackDays int) Filter {
	return Filter{
		Name: "max-age",
		Keep: func(_ context.Context, c *types.Candidate, _ Enricher) bool {
			return c.AgeDays <= lookbackDays
		},
	}
}

// FewContributors keeps repositories with fewer than max contributors,
// the early-stage signal. Enriching.
func FewContributors(max int) Filter {
	return Filter{
		Name: "few-contributors",
		Keep: func(ctx context.Context, c *types.Candidate, e Enricher) bool {
			c.Contributors, c.TopShare = e.ContributorStats(ctx, c.Owner, c.Name)
			return c.Contributors < max
		},
	}
}

// ActiveWithin keeps repositories whose most recent commit falls inside the
// window. Enriching.
func ActiveWithin(windowDays int) Filter {
	return Filter{
		Name: "active-within-window",
		Keep: func(ctx context.Context, c *types.Candidate, e Enricher) bool {
			c.ActiveInWindow = e.LastActivityWithin(ctx, c.Owner, c.Name, windowDays)
			return c.ActiveInWindow
		},
	}
}

// MinStarGrowth keeps repositories that gained at least min stars within the
// window. Enriching.
func MinStarGrowth(windowDays, min int) Filter {
	return Filter{
		Name: "min-star-growth",
		Keep: func(ctx context.Context, c *types.Candidate, e Enricher) bool {
			c.StarGrowth = e.StarGrowth(ctx, c.Owner, c.Name, windowDays)
			return c.StarGrowth >= min
		},
	}
}

// HealthyContributorBase keeps repositories with at least minCore
// contributors where no single contributor holds more than maxShare of the
// recorded contributions. Concentration is a bus-factor risk signal.
// Enriching.
func HealthyContributorBase(minCore int, maxShare float64) Filter {
	return Filter{
		Name: "healthy-contributor-base",
		Keep: func(ctx context.Context, c *types.Candidate, e Enricher) bool {
			c.Contributors, c.TopShare = e.ContributorStats(ctx, c.Owner, c.Name)
			return c.Contributors >= minCore && c.TopShare <= maxShare
		},
	}
}

// LicenseAllowed keeps repositories whose license is in the allow set.
// Cheap: the license ships with the search response.
func LicenseAllowed(licenses []string) Filter {
	allowed := make(map[string]struct{}, len(licenses))
	for _, l := range licenses {
		allowed[l] = struct{}{}
	}
	return Filter{
		Name: "license-allowed",
		Keep: func(_ context.Context, c *types.Candidate, _ Enricher) bool {
			_, ok := allowed[c.License]
			return ok
		},
	}
}

// NoKnownAdvisories is a placeholder: the advisories feed needs the GraphQL
// API, so every candidate passes for now.
// TODO: reject candidates with open security advisories once the GraphQL
// client lands.
func NoKnownAdvisories() Filter {
	return Filter{
		Name: "no-known-advisories",
		Keep: func(context.Context, *types.Candidate, Enricher) bool {
			return true
		},
	}
}
