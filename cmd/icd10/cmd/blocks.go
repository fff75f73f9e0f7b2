package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteobe/icd10-scraper/internal/keyio"
	"github.com/matteobe/icd10-scraper/internal/scraper"
)

var blocksInput string

func init() {
	blocksCmd.Flags().StringVar(&blocksInput, "input", "", "file with chapter codes, one per line")
	rootCmd.AddCommand(blocksCmd)
}

var blocksCmd = &cobra.Command{
	Use:   "blocks [chapter codes...]",
	Short: "Scrape the blocks of the given chapters.",
	Long: `Scrapes the blocks of the chapters given as arguments or through
--input. With neither, the chapter list is scraped first and all of its
codes are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client := scraper.NewClient(cfg)

		codes := args
		if blocksInput != "" {
			codes, err = keyio.ReadCodes(blocksInput)
			if err != nil {
				return err
			}
		}
		if len(codes) == 0 {
			chapters, err := client.Chapters(cmd.Context())
			if err != nil {
				return err
			}
			codes = scraper.Codes(chapters)
		}

		records, err := client.Blocks(cmd.Context(), codes)
		if err != nil {
			return err
		}
		return writeRecords(cfg, records)
	},
}
