package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteobe/icd10-scraper/internal/keyio"
	"github.com/matteobe/icd10-scraper/internal/scraper"
)

var categoriesInput string

func init() {
	categoriesCmd.Flags().StringVar(&categoriesInput, "input", "", "file with block codes, one per line")
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [block codes...]",
	Short: "Scrape the categories of the given blocks.",
	Long: `Scrapes the categories of the blocks given as arguments or through
--input. With neither, chapters and blocks are scraped first and every
block code is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client := scraper.NewClient(cfg)

		codes := args
		if categoriesInput != "" {
			codes, err = keyio.ReadCodes(categoriesInput)
			if err != nil {
				return err
			}
		}
		if len(codes) == 0 {
			chapters, err := client.Chapters(cmd.Context())
			if err != nil {
				return err
			}
			blocks, err := client.Blocks(cmd.Context(), scraper.Codes(chapters))
			if err != nil {
				return err
			}
			codes = scraper.Codes(blocks)
		}

		records, err := client.Categories(cmd.Context(), codes)
		if err != nil {
			return err
		}
		return writeRecords(cfg, records)
	},
}
