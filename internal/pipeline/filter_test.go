package pipeline

import (
	"context"
	"testing"

	"github.com/rohankatakam/reporadar/internal/types"
)

func TestLicenseAllowed(t *testing.T) {
	filter := LicenseAllowed([]string{"mit", "apache-2.0"})
	tests := []struct {
		name    string
		license string
		keep    bool
	}{
		{"MIT allowed", "mit", true},
		{"Apache allowed", "apache-2.0", true},
		{"GPL rejected", "gpl-3.0", false},
		{"Unlicensed rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.Candidate{License: tt.license}
			if got := filter.Keep(context.Background(), c, nil); got != tt.keep {
				t.Errorf("keep(%q) = %v, want %v", tt.license, got, tt.keep)
			}
		})
	}
}

func TestWithinBounds(t *testing.T) {
	filter := WithinBounds(200, 50)
	tests := []struct {
		name  string
		stars int
		forks int
		keep  bool
	}{
		{"Well within", 5, 3, true},
		{"Star bound exact", 200, 3, false},
		{"Stars over", 250, 3, false},
		{"Forks over", 5, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.Candidate{Stars: tt.stars, Forks: tt.forks}
			if got := filter.Keep(context.Background(), c, nil); got != tt.keep {
				t.Errorf("keep(stars=%d forks=%d) = %v, want %v", tt.stars, tt.forks, got, tt.keep)
			}
		})
	}
}

func TestHealthyContributorBase(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		topShare float64
		keep     bool
	}{
		{"Healthy base", 5, 0.3, true},
		{"Too few contributors", 2, 0.3, false},
		{"Too concentrated", 5, 0.9, false},
		{"Boundary share", 5, 0.6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &fakeEnricher{
				contributors: map[string]int{"org/r": tt.count},
				topShare:     map[string]float64{"org/r": tt.topShare},
			}
			c := &types.Candidate{FullName: "org/r", Owner: "org", Name: "r"}
			filter := HealthyContributorBase(3, 0.6)
			if got := filter.Keep(context.Background(), c, e); got != tt.keep {
				t.Errorf("keep(count=%d share=%.1f) = %v, want %v", tt.count, tt.topShare, got, tt.keep)
			}
			if c.Contributors != tt.count || c.TopShare != tt.topShare {
				t.Error("filter must record the derived signals on the candidate")
			}
		})
	}
}

func TestMinStarGrowthRecordsSignal(t *testing.T) {
	e := &fakeEnricher{growth: map[string]int{"org/r": 42}}
	c := &types.Candidate{FullName: "org/r", Owner: "org", Name: "r"}
	if !MinStarGrowth(30, 20).Keep(context.Background(), c, e) {
		t.Fatal("growth 42 >= 20 must pass")
	}
	if c.StarGrowth != 42 {
		t.Errorf("StarGrowth = %d, want 42", c.StarGrowth)
	}
}

func TestNoKnownAdvisoriesAlwaysPasses(t *testing.T) {
	if !NoKnownAdvisories().Keep(context.Background(), &types.Candidate{}, nil) {
		t.Fatal("placeholder advisory check must pass every candidate")
	}
}
