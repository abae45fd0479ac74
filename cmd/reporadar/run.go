package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rohankatakam/reporadar/internal/config"
	gh "github.com/rohankatakam/reporadar/internal/github"
	"github.com/rohankatakam/reporadar/internal/pipeline"
	"github.com/rohankatakam/reporadar/internal/sheets"
)

// runVariant is the shared cycle behind both subcommands: validate config,
// collect, write. Configuration is checked before any client is constructed
// so a misconfigured run exits without a single network call.
func runVariant(ctx context.Context, build func(*config.Config, time.Time) pipeline.Variant) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.WithField("run_id", uuid.New().String())
	variant := build(cfg, time.Now())
	log = log.WithField("variant", variant.Name)

	client := gh.NewClient(cfg.GitHub.Token, cfg.GitHub.RateLimit, cfg.Search.PageSize, cfg.GitHub.Timeout, log)
	runner := pipeline.NewRunner(client, client, log)

	log.WithField("queries", len(variant.Queries)).Info("collection started")
	results := runner.Run(ctx, variant)

	if len(results) == 0 {
		log.Warn("no repositories passed the filters; writing an empty table")
	}

	header, rows := pipeline.Table(variant, results)

	if dryRun {
		printTable(header, rows)
		return nil
	}

	writer, err := sheets.NewWriter(ctx, []byte(cfg.Sheets.CredentialsJSON),
		cfg.Sheets.SpreadsheetID, cfg.Sheets.Worksheet, log)
	if err != nil {
		return err
	}
	if err := writer.Replace(ctx, header, rows); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"rows":      len(rows),
		"worksheet": cfg.Sheets.Worksheet,
	}).Info("run complete")
	return nil
}

func printTable(header []string, rows [][]string) {
	fmt.Println(strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Println(strings.Join(row, "\t"))
	}
}
