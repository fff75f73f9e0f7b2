package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteobe/icd10-scraper/internal/scraper"
)

func init() {
	rootCmd.AddCommand(chaptersCmd)
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "Scrape the chapter list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		records, err := scraper.NewClient(cfg).Chapters(cmd.Context())
		if err != nil {
			return err
		}
		return writeRecords(cfg, records)
	},
}
