package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rohankatakam/reporadar/internal/types"
)

// Searcher issues one page of a repository search. A returned error is
// transient: the runner logs it, drops the query, and moves on.
type Searcher interface {
	Search(ctx context.Context, query string, sort types.Sort, page int) (items []types.Candidate, hasMore bool, err error)
}

// Runner executes one pull-filter-score-write cycle for a Variant. It owns
// the only mutable state of a run: the dedup set and the accepted list.
type Runner struct {
	searcher Searcher
	enricher Enricher
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewRunner creates a pipeline runner
func NewRunner(searcher Searcher, enricher Enricher, log logrus.FieldLogger) *Runner {
	return &Runner{
		searcher: searcher,
		enricher: enricher,
		log:      log,
		now:      time.Now,
	}
}

// Run iterates the variant's queries and pages in order, deduplicates by
// full name (first seen wins), filters, and applies the variant's stop and
// ranking discipline. The result is unique by identifier, at most Target
// long, and every member passed every predicate.
func (r *Runner) Run(ctx context.Context, v Variant) []types.Candidate {
	seen := make(map[string]struct{})
	var accepted []*types.Candidate

	for _, query := range v.Queries {
		page := 1
		for {
			items, hasMore, err := r.searcher.Search(ctx, query, v.Sort, page)
			if err != nil {
				r.log.WithError(err).WithField("query", query).Warn("search failed, skipping query")
				break
			}

			for i := range items {
				c := &items[i]
				if _, dup := seen[c.FullName]; dup {
					continue
				}
				seen[c.FullName] = struct{}{}

				c.AgeDays = int(r.now().Sub(c.CreatedAt).Hours() / 24)
				if !r.accept(ctx, c, v) {
					continue
				}
				if v.Score != nil {
					c.Score = v.Score(c)
				}
				accepted = append(accepted, c)

				if v.StopAtTarget && len(accepted) >= v.Target {
					return finalize(accepted, v)
				}
			}

			page++
			if !hasMore || (v.MaxPagesPerQuery > 0 && page > v.MaxPagesPerQuery) {
				break
			}
		}
	}

	return finalize(accepted, v)
}

// accept runs the filter chain with short-circuit rejection.
func (r *Runner) accept(ctx context.Context, c *types.Candidate, v Variant) bool {
	for _, f := range v.Filters {
		if !f.Keep(ctx, c, r.enricher) {
			r.log.WithFields(logrus.Fields{
				"repo":   c.FullName,
				"filter": f.Name,
			}).Debug("candidate rejected")
			return false
		}
	}
	return true
}

// finalize ranks by score when the variant scores, then truncates to the
// target count. Non-scoring variants keep acceptance order.
func finalize(accepted []*types.Candidate, v Variant) []types.Candidate {
	if v.Score != nil {
		sort.SliceStable(accepted, func(i, j int) bool {
			return accepted[i].Score > accepted[j].Score
		})
	}
	if len(accepted) > v.Target {
		accepted = accepted[:v.Target]
	}

	results := make([]types.Candidate, len(accepted))
	for i, c := range accepted {
		results[i] = *c
	}
	return results
}
