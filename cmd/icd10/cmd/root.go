// Package cmd implements the icd10 command-line interface.
package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matteobe/icd10-scraper/internal/config"
	"github.com/matteobe/icd10-scraper/internal/export"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

var (
	configFile   string
	icdVersion   int
	workers      int
	fetchTimeout time.Duration
	bestEffort   bool
	outputFile   string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "icd10",
	Short: "Scrapes the WHO ICD-10 classification hierarchy.",
	Long: `Scrapes chapters, blocks and categories of the WHO ICD-10
classification from icd.who.int and writes them as CSV, JSON or a table.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to a YAML configuration file")
	flags.IntVar(&icdVersion, "icd-version", 2019, "ICD-10 release to scrape")
	flags.IntVar(&workers, "workers", 20, "number of concurrent fetches")
	flags.DurationVar(&fetchTimeout, "timeout", 30*time.Second, "timeout per fetch")
	flags.BoolVar(&bestEffort, "best-effort", false, "record failed fetches instead of aborting the run")
	flags.StringVarP(&outputFile, "output", "o", "records.csv", "file to write results to")
	flags.StringVar(&outputFormat, "format", "csv", "output format: csv, json or table")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig builds the effective configuration from the config file and
// any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("icd-version") {
		cfg.Version = icdVersion
	}
	if flags.Changed("workers") {
		cfg.Scraper.Workers = workers
	}
	if flags.Changed("timeout") {
		cfg.Scraper.FetchTimeout = fetchTimeout
	}
	if flags.Changed("best-effort") {
		cfg.Scraper.BestEffort = bestEffort
	}
	if flags.Changed("output") {
		cfg.Output.File = outputFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeRecords saves the records per the output configuration and logs a
// run summary.
func writeRecords(cfg *config.Config, records []icd.Record) error {
	if err := export.NewWriter(&cfg.Output).Save(records); err != nil {
		return err
	}

	failures := 0
	for _, r := range records {
		if r.Failed() {
			failures++
		}
	}
	slog.Info("scrape complete",
		"records", len(records),
		"failures", failures,
		"format", cfg.Output.Format,
		"output", cfg.Output.File,
	)
	return nil
}
