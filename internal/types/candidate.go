package types

import "time"

// Sort is the field/direction pair applied to a repository search.
type Sort struct {
	Field     string // e.g. "stars"
	Direction string // "asc" or "desc"
}

// Candidate is one repository pulled from a search response, carried through
// the whole pipeline. The search fields are filled by the search client and
// never mutated afterward; the derived signals are filled lazily by the
// enrichment filters that need them.
type Candidate struct {
	// Search response fields
	FullName    string // "owner/name", the dedup key
	Owner       string
	Name        string
	URL         string
	Description string
	License     string // lowercase SPDX id, "" when unlicensed
	Stars       int
	Forks       int
	Sponsored   bool
	CreatedAt   time.Time
	PushedAt    time.Time

	// Derived signals
	AgeDays        int
	Contributors   int
	TopShare       float64 // largest single contributor's share, 0.0-1.0
	StarGrowth     int
	ActiveInWindow bool

	// Relevance score, set only by the scoring variant
	Score int
}
