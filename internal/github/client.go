package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	apperrors "github.com/rohankatakam/reporadar/internal/errors"
	"github.com/rohankatakam/reporadar/internal/types"
)

// Client wraps the GitHub API client with rate limiting. The limiter is the
// courtesy-delay discipline: every call, search or enrichment, waits on the
// same token bucket so the job stays under the API's secondary rate limits.
type Client struct {
	api      *github.Client
	limiter  *rate.Limiter
	log      logrus.FieldLogger
	pageSize int
	timeout  time.Duration
}

// NewClient creates a new GitHub client with rate limiting
func NewClient(token string, rateLimit int, pageSize int, timeout time.Duration, log logrus.FieldLogger) *Client {
	api := github.NewClient(nil).WithAuthToken(token)

	return &Client{
		api:      api,
		limiter:  rate.NewLimiter(rate.Limit(rateLimit), 1),
		log:      log,
		pageSize: pageSize,
		timeout:  timeout,
	}
}

// wait blocks on the shared limiter and bounds the upcoming request.
func (c *Client) wait(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter: %w", err)
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	return reqCtx, cancel, nil
}

// Search issues one page of a repository search and reports whether more
// pages follow. A failed request is a transient search error: the caller
// skips the query and continues with the remaining ones.
func (c *Client) Search(ctx context.Context, query string, sort types.Sort, page int) ([]types.Candidate, bool, error) {
	reqCtx, cancel, err := c.wait(ctx)
	if err != nil {
		return nil, false, apperrors.SearchError(err, "repository search")
	}
	defer cancel()

	opts := &github.SearchOptions{
		Sort:  sort.Field,
		Order: sort.Direction,
		ListOptions: github.ListOptions{
			PerPage: c.pageSize,
			Page:    page,
		},
	}

	result, resp, err := c.api.Search.Repositories(reqCtx, query, opts)
	if err != nil {
		return nil, false, apperrors.SearchError(err, "repository search")
	}

	candidates := make([]types.Candidate, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		candidates = append(candidates, toCandidate(repo))
	}

	return candidates, resp.NextPage != 0, nil
}

func toCandidate(repo *github.Repository) types.Candidate {
	license := ""
	if repo.GetLicense() != nil {
		license = strings.ToLower(repo.GetLicense().GetSPDXID())
	}

	return types.Candidate{
		FullName:    repo.GetFullName(),
		Owner:       repo.GetOwner().GetLogin(),
		Name:        repo.GetName(),
		URL:         repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		License:     license,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		// The REST search payload carries no sponsorship signal; candidates
		// enter the pipeline unsponsored and the scorer's bonus stays inert.
		Sponsored: false,
		CreatedAt: repo.GetCreatedAt().Time,
		PushedAt:  repo.GetPushedAt().Time,
	}
}
