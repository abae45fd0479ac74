package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/rohankatakam/reporadar/internal/errors"
)

// Config holds all configuration settings. It is built once at startup and
// passed to every component constructor; nothing reads the environment after
// Load returns.
type Config struct {
	// GitHub API configuration
	GitHub GitHubConfig `yaml:"github"`

	// Google Sheets output configuration
	Sheets SheetsConfig `yaml:"sheets"`

	// Search criteria shared by both pipeline variants
	Search SearchConfig `yaml:"search"`
}

type GitHubConfig struct {
	Token     string        `yaml:"token"`
	RateLimit int           `yaml:"rate_limit"` // Requests per second
	Timeout   time.Duration `yaml:"timeout"`    // Per-request timeout
}

type SheetsConfig struct {
	CredentialsJSON string `yaml:"credentials_json"` // Raw service-account JSON blob
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	Worksheet       string `yaml:"worksheet"`
}

type SearchConfig struct {
	Topics   []string `yaml:"topics"`
	Keywords []string `yaml:"keywords"`

	MaxStars        int `yaml:"max_stars"`
	MaxForks        int `yaml:"max_forks"`
	MaxContributors int `yaml:"max_contributors"`
	LookbackDays    int `yaml:"lookback_days"`

	// Momentum variant knobs
	PushedWithinDays    int      `yaml:"pushed_within_days"`
	GrowthWindowDays    int      `yaml:"growth_window_days"`
	MinStarGrowth       int      `yaml:"min_star_growth"`
	MinCoreContributors int      `yaml:"min_core_contributors"`
	MaxTopShare         float64  `yaml:"max_top_share"`
	Licenses            []string `yaml:"licenses"` // lowercase SPDX ids

	Target   int `yaml:"target"`
	PageSize int `yaml:"page_size"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			RateLimit: 5, // GitHub allows 5,000 core requests/hour; stay well under
			Timeout:   30 * time.Second,
		},
		Sheets: SheetsConfig{
			Worksheet: "AI-radar",
		},
		Search: SearchConfig{
			Topics:   []string{"ai", "machine-learning", "deep-learning", "generative-ai"},
			Keywords: []string{"pre-seed", "seed round", "MVP", "early stage", "YC W"},

			MaxStars:        200,
			MaxForks:        50,
			MaxContributors: 20,
			LookbackDays:    365,

			PushedWithinDays:    14,
			GrowthWindowDays:    30,
			MinStarGrowth:       20,
			MinCoreContributors: 3,
			MaxTopShare:         0.6,
			Licenses:            []string{"mit", "apache-2.0", "bsd-3-clause"},

			Target:   30,
			PageSize: 100, // maximum allowed by the search API
		},
	}
}

// Load loads configuration from an optional YAML file plus the environment.
// Secrets always come from the environment, never from the config file.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("github", cfg.GitHub)
	v.SetDefault("sheets", cfg.Sheets)
	v.SetDefault("search", cfg.Search)

	v.SetEnvPrefix("REPORADAR")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".reporadar")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".reporadar"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// applyEnvOverrides maps the job's well-known environment variables onto the
// config. These names match the cron job's secrets.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GH_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("GS_CREDS_JSON"); v != "" {
		cfg.Sheets.CredentialsJSON = v
	}
	if v := os.Getenv("GSHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("GSHEET_TAB"); v != "" {
		cfg.Sheets.Worksheet = v
	}
}

// Validate checks that every required value is present. It reports all
// missing values at once so a misconfigured cron job fails with one clear
// message instead of one per run.
func (c *Config) Validate() error {
	var missing []string
	if c.GitHub.Token == "" {
		missing = append(missing, "GH_TOKEN")
	}
	if c.Sheets.CredentialsJSON == "" {
		missing = append(missing, "GS_CREDS_JSON")
	}
	if c.Sheets.SpreadsheetID == "" {
		missing = append(missing, "GSHEET_ID")
	}
	if len(missing) > 0 {
		return apperrors.ConfigErrorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
