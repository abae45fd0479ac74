package pipeline

import "github.com/rohankatakam/reporadar/internal/types"

// EarlyStageScore builds the early-stage relevance scorer:
//
//	score = (maxStars - stars) + (365 - ageDays) + sponsorship bonus
//
// Fewer stars and younger age both raise the score; sponsorship adds a flat
// bonus. The score is floored at zero so the sheet column sorts without sign
// confusion.
func EarlyStageScore(maxStars int) func(*types.Candidate) int {
	return func(c *types.Candidate) int {
		score := (maxStars - c.Stars) + (365 - c.AgeDays)
		if c.Sponsored {
			score += 50
		}
		if score < 0 {
			return 0
		}
		return score
	}
}
