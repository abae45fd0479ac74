package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohankatakam/reporadar/internal/config"
)

// Query construction is pure string assembly: deterministic given the same
// criteria and clock, no network access.

// EarlyStageQueries returns one search query per topic x keyword pair.
// Each query restricts full-text matches to the readme and description,
// bounds stars and forks from above, bounds creation date from below, and
// excludes forks and archived repositories.
func EarlyStageQueries(sc config.SearchConfig, now time.Time) []string {
	since := now.AddDate(0, 0, -sc.LookbackDays).Format("2006-01-02")

	queries := make([]string, 0, len(sc.Topics)*len(sc.Keywords))
	for _, topic := range sc.Topics {
		for _, keyword := range sc.Keywords {
			queries = append(queries, fmt.Sprintf(
				"topic:%s %s in:readme,description created:>=%s stars:<%d forks:<%d fork:false archived:false",
				topic, quoteKeyword(keyword), since, sc.MaxStars, sc.MaxForks,
			))
		}
	}
	return queries
}

// MomentumQuery returns the single push-recency query; the momentum variant
// pages through it until the target count is reached.
func MomentumQuery(sc config.SearchConfig, now time.Time) string {
	pushed := now.AddDate(0, 0, -sc.PushedWithinDays).Format("2006-01-02")
	return fmt.Sprintf(
		"pushed:>=%s stars:<%d forks:<%d fork:false archived:false",
		pushed, sc.MaxStars, sc.MaxForks,
	)
}

// quoteKeyword wraps multi-word phrases so the search API treats them as
// exact phrases rather than separate terms.
func quoteKeyword(keyword string) string {
	if strings.ContainsRune(keyword, ' ') {
		return `"` + keyword + `"`
	}
	return keyword
}
