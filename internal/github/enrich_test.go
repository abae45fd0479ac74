package github

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributorStatsUsesLastPageShortcut(t *testing.T) {
	var srvURL string
	requests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/contributors", func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Query().Get("per_page") {
		case "1":
			// the count probe: one record, Link header carries the total
			assert.Equal(t, "true", r.URL.Query().Get("anon"))
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/repos/org/repo/contributors?per_page=1&page=15>; rel="last"`, srvURL))
			fmt.Fprint(w, `[{"login": "alice", "contributions": 90}]`)
		default:
			// the share probe: first full page, ordered by contributions
			fmt.Fprint(w, `[
				{"login": "alice", "contributions": 90},
				{"login": "bob", "contributions": 10}
			]`)
		}
	})

	client, srv := newTestClient(t, mux)
	srvURL = srv.URL

	count, topShare := client.ContributorStats(context.Background(), "org", "repo")

	assert.Equal(t, 15, count, "count must come from the last-page indicator")
	assert.InDelta(t, 0.9, topShare, 0.001)
	assert.Equal(t, 2, requests, "stats must not enumerate all contributor pages")
}

func TestContributorStatsSinglePageFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/tiny/contributors", func(w http.ResponseWriter, r *http.Request) {
		// no Link header: everything fits on one page
		fmt.Fprint(w, `[{"login": "alice", "contributions": 7}]`)
	})

	client, _ := newTestClient(t, mux)
	count, topShare := client.ContributorStats(context.Background(), "org", "tiny")

	assert.Equal(t, 1, count)
	assert.InDelta(t, 1.0, topShare, 0.001)
}

func TestContributorStatsDefaultsOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/gone/contributors", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client, _ := newTestClient(t, mux)
	count, topShare := client.ContributorStats(context.Background(), "org", "gone")

	assert.Zero(t, count)
	assert.Zero(t, topShare)
}

func TestLastActivityWithin(t *testing.T) {
	tests := []struct {
		name       string
		commitAge  time.Duration
		windowDays int
		want       bool
	}{
		{"Fresh commit", 24 * time.Hour, 14, true},
		{"Stale commit", 40 * 24 * time.Hour, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Now().Add(-tt.commitAge).UTC().Format(time.RFC3339)
			mux := http.NewServeMux()
			mux.HandleFunc("/repos/org/repo/commits", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `[{
					"sha": "abc123",
					"commit": {
						"author": {"date": %q},
						"committer": {"date": %q}
					}
				}]`, ts, ts)
			})

			client, _ := newTestClient(t, mux)
			got := client.LastActivityWithin(context.Background(), "org", "repo", tt.windowDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLastActivityDefaultsOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/commits", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "boom"}`, http.StatusBadGateway)
	})

	client, _ := newTestClient(t, mux)
	assert.False(t, client.LastActivityWithin(context.Background(), "org", "repo", 14))
}

// starEvents renders a stargazer page, newest first, with the given ages.
func starEvents(ages []time.Duration) string {
	out := "["
	for i, age := range ages {
		if i > 0 {
			out += ","
		}
		ts := time.Now().Add(-age).UTC().Format(time.RFC3339)
		out += fmt.Sprintf(`{"starred_at": %q, "user": {"login": "u%d"}}`, ts, i)
	}
	return out + "]"
}

func TestStarGrowthStopsAtFirstOutOfWindowEvent(t *testing.T) {
	// ten events newest first, cutoff between the 5th and 6th
	ages := []time.Duration{
		1 * 24 * time.Hour, 2 * 24 * time.Hour, 3 * 24 * time.Hour,
		4 * 24 * time.Hour, 5 * 24 * time.Hour,
		60 * 24 * time.Hour, 61 * 24 * time.Hour, 62 * 24 * time.Hour,
		63 * 24 * time.Hour, 64 * 24 * time.Hour,
	}

	var srvURL string
	pagesRequested := []string{}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/stargazers", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesRequested = append(pagesRequested, page)
		// advertise a next page; the early exit must never fetch it
		w.Header().Set("Link", fmt.Sprintf(
			`<%s/repos/org/repo/stargazers?page=2>; rel="next"`, srvURL))
		fmt.Fprint(w, starEvents(ages))
	})

	client, srv := newTestClient(t, mux)
	srvURL = srv.URL

	growth := client.StarGrowth(context.Background(), "org", "repo", 30)

	assert.Equal(t, 5, growth)
	require.Len(t, pagesRequested, 1, "scan must stop at the first out-of-window event")
}

func TestStarGrowthFollowsPagesWhileInWindow(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/stargazers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, starEvents([]time.Duration{
				3 * 24 * time.Hour, 90 * 24 * time.Hour,
			}))
			return
		}
		w.Header().Set("Link", fmt.Sprintf(
			`<%s/repos/org/repo/stargazers?page=2>; rel="next"`, srvURL))
		fmt.Fprint(w, starEvents([]time.Duration{
			1 * 24 * time.Hour, 2 * 24 * time.Hour,
		}))
	})

	client, srv := newTestClient(t, mux)
	srvURL = srv.URL

	assert.Equal(t, 3, client.StarGrowth(context.Background(), "org", "repo", 30))
}

func TestStarGrowthDefaultsOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/stargazers", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "boom"}`, http.StatusBadGateway)
	})

	client, _ := newTestClient(t, mux)
	assert.Zero(t, client.StarGrowth(context.Background(), "org", "repo", 30))
}
