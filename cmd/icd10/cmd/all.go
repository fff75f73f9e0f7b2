package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteobe/icd10-scraper/internal/scraper"
)

func init() {
	rootCmd.AddCommand(allCmd)
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Scrape the full hierarchy: chapters, blocks and categories.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		records, err := scraper.NewClient(cfg).All(cmd.Context())
		if err != nil {
			return err
		}
		return writeRecords(cfg, records)
	},
}
