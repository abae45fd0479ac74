package github

import (
	"context"
	"time"

	"github.com/google/go-github/v57/github"
)

// Enrichment lookups compute signals the search response does not carry.
// Each lookup degrades to a conservative default (zero, false) when the API
// call fails, so an API hiccup lowers candidate quality instead of aborting
// the run.

// ContributorStats returns the contributor count and the largest single
// contributor's share of recorded contributions.
//
// The count comes from a single-item page: with per_page=1 the Link header's
// rel="last" page number equals the contributor count, so one request
// replaces a full enumeration. The share is computed over the first full
// page; contributors arrive ordered by contribution count, so the top
// contributor is always included and the share is exact for repositories
// with at most one page of contributors.
func (c *Client) ContributorStats(ctx context.Context, owner, name string) (int, float64) {
	reqCtx, cancel, err := c.wait(ctx)
	if err != nil {
		return 0, 0
	}
	defer cancel()

	one := &github.ListContributorsOptions{
		Anon:        "true",
		ListOptions: github.ListOptions{PerPage: 1},
	}
	first, resp, err := c.api.Repositories.ListContributors(reqCtx, owner, name, one)
	if err != nil {
		c.log.WithError(err).WithField("repo", owner+"/"+name).Debug("contributor count lookup failed")
		return 0, 0
	}

	count := len(first)
	if resp.LastPage > 0 {
		count = resp.LastPage
	}
	if count == 0 {
		return 0, 0
	}

	reqCtx, cancel, err = c.wait(ctx)
	if err != nil {
		return count, 0
	}
	defer cancel()

	full := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: c.pageSize},
	}
	contributors, _, err := c.api.Repositories.ListContributors(reqCtx, owner, name, full)
	if err != nil {
		c.log.WithError(err).WithField("repo", owner+"/"+name).Debug("contributor share lookup failed")
		return count, 0
	}

	var total, top int
	for _, contributor := range contributors {
		n := contributor.GetContributions()
		total += n
		if n > top {
			top = n
		}
	}
	if total == 0 {
		return count, 0
	}
	return count, float64(top) / float64(total)
}

// LastActivityWithin reports whether the most recent commit is within
// windowDays of now. One request: commits arrive newest first.
func (c *Client) LastActivityWithin(ctx context.Context, owner, name string, windowDays int) bool {
	reqCtx, cancel, err := c.wait(ctx)
	if err != nil {
		return false
	}
	defer cancel()

	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	commits, _, err := c.api.Repositories.ListCommits(reqCtx, owner, name, opts)
	if err != nil || len(commits) == 0 {
		if err != nil {
			c.log.WithError(err).WithField("repo", owner+"/"+name).Debug("commit lookup failed")
		}
		return false
	}

	ts := commits[0].GetCommit().GetCommitter().GetDate().Time
	if ts.IsZero() {
		ts = commits[0].GetCommit().GetAuthor().GetDate().Time
	}
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	return ts.After(cutoff)
}

// StarGrowth counts star events within windowDays of now. The event feed is
// consumed newest first and the scan stops at the first event older than the
// window; star histories can be unbounded, so the early exit is what keeps
// this lookup affordable.
func (c *Client) StarGrowth(ctx context.Context, owner, name string, windowDays int) int {
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	opts := &github.ListOptions{PerPage: c.pageSize}

	count := 0
	for {
		reqCtx, cancel, err := c.wait(ctx)
		if err != nil {
			return count
		}

		stargazers, resp, err := c.api.Activity.ListStargazers(reqCtx, owner, name, opts)
		cancel()
		if err != nil {
			c.log.WithError(err).WithField("repo", owner+"/"+name).Debug("stargazer lookup failed")
			return count
		}

		for _, sg := range stargazers {
			if !sg.GetStarredAt().Time.After(cutoff) {
				return count
			}
			count++
		}

		if resp.NextPage == 0 {
			return count
		}
		opts.Page = resp.NextPage
	}
}
