package pipeline

import (
	"strconv"
	"time"

	"github.com/rohankatakam/reporadar/internal/config"
	"github.com/rohankatakam/reporadar/internal/types"
)

// Column maps one result field to a sheet column.
type Column struct {
	Header string
	Value  func(*types.Candidate) string
}

// Variant is the policy object that configures one run of the pipeline:
// which queries to issue, in what sort order, which predicates to apply,
// whether to score, and when to stop. The two variants are configurations
// of the same engine, not separate pipelines.
type Variant struct {
	Name    string
	Queries []string
	Sort    types.Sort

	// MaxPagesPerQuery bounds pagination per query; 0 means follow the
	// pagination until the API reports no further pages.
	MaxPagesPerQuery int

	Filters []Filter

	// Score is nil for variants that keep candidates in acceptance order.
	Score func(*types.Candidate) int

	// StopAtTarget stops issuing requests once Target candidates are
	// accepted. Without it the run explores every query, then ranks.
	StopAtTarget bool
	Target       int

	Columns []Column
}

// EarlyStage is the startup-radar variant: one query per topic x keyword
// pair sorted by stars ascending to surface the least visible repositories,
// cheap age filter before the contributor lookup, scored and ranked after
// every query has been explored.
func EarlyStage(cfg *config.Config, now time.Time) Variant {
	sc := cfg.Search
	return Variant{
		Name:             "early-stage",
		Queries:          EarlyStageQueries(sc, now),
		Sort:             types.Sort{Field: "stars", Direction: "asc"},
		MaxPagesPerQuery: 1,
		Filters: []Filter{
			WithinBounds(sc.MaxStars, sc.MaxForks),
			MaxAge(sc.LookbackDays),
			FewContributors(sc.MaxContributors),
		},
		Score:        EarlyStageScore(sc.MaxStars),
		StopAtTarget: false,
		Target:       sc.Target,
		Columns: []Column{
			{"name", func(c *types.Candidate) string { return c.FullName }},
			{"url", func(c *types.Candidate) string { return c.URL }},
			{"created", func(c *types.Candidate) string { return c.CreatedAt.Format("2006-01-02") }},
			{"stars", func(c *types.Candidate) string { return strconv.Itoa(c.Stars) }},
			{"score", func(c *types.Candidate) string { return strconv.Itoa(c.Score) }},
			{"description", func(c *types.Candidate) string { return c.Description }},
		},
	}
}

// Momentum is the star-growth variant: a single push-recency query sorted by
// stars descending, paged until the target count is reached. Accepted
// candidates keep their acceptance order; the run stops as soon as the
// target is met, so the tail of the set is not guaranteed to be the globally
// best. That approximation is the variant's contract.
func Momentum(cfg *config.Config, now time.Time) Variant {
	sc := cfg.Search
	return Variant{
		Name:    "momentum",
		Queries: []string{MomentumQuery(sc, now)},
		Sort:    types.Sort{Field: "stars", Direction: "desc"},
		Filters: []Filter{
			ActiveWithin(sc.PushedWithinDays),
			MinStarGrowth(sc.GrowthWindowDays, sc.MinStarGrowth),
			HealthyContributorBase(sc.MinCoreContributors, sc.MaxTopShare),
			LicenseAllowed(sc.Licenses),
			NoKnownAdvisories(),
		},
		StopAtTarget: true,
		Target:       sc.Target,
		Columns: []Column{
			{"name", func(c *types.Candidate) string { return c.FullName }},
			{"url", func(c *types.Candidate) string { return c.URL }},
			{"pushed", func(c *types.Candidate) string { return c.PushedAt.Format("2006-01-02") }},
			{"stars", func(c *types.Candidate) string { return strconv.Itoa(c.Stars) }},
			{"star_growth", func(c *types.Candidate) string { return strconv.Itoa(c.StarGrowth) }},
			{"license", func(c *types.Candidate) string { return c.License }},
			{"description", func(c *types.Candidate) string { return c.Description }},
		},
	}
}

// Table renders the final result set as a header row plus one row per
// candidate, every cell as text. This is the block handed to the sheet
// writer.
func Table(v Variant, results []types.Candidate) ([]string, [][]string) {
	header := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		header[i] = col.Header
	}

	rows := make([][]string, len(results))
	for i := range results {
		row := make([]string, len(v.Columns))
		for j, col := range v.Columns {
			row[j] = col.Value(&results[i])
		}
		rows[i] = row
	}
	return header, rows
}
