package main

import (
	"github.com/spf13/cobra"

	"github.com/rohankatakam/reporadar/internal/pipeline"
)

var startupsCmd = &cobra.Command{
	Use:   "startups",
	Short: "Collect early-stage startup repositories, scored and ranked",
	Long: `Searches every configured topic x keyword pair for young, low-star
repositories with small contributor bases, scores them by youth and
obscurity, and writes the top results to the sheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(cmd.Context(), pipeline.EarlyStage)
	},
}
