package main

import (
	"github.com/spf13/cobra"

	"github.com/rohankatakam/reporadar/internal/pipeline"
)

var momentumCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Collect recently-active repositories with strong star growth",
	Long: `Pages through a single push-recency search for repositories that are
actively maintained, growing in stars, healthily staffed, and acceptably
licensed. Collection stops as soon as the target count is reached; rows
keep their acceptance order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(cmd.Context(), pipeline.Momentum)
	},
}
