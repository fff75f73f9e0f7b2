package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// All scrapes the full hierarchy: chapters, then the blocks of every
// chapter, then the categories of every block. Failed records from one
// level are carried into the output but excluded from the next level's key
// list.
func (c *Client) All(ctx context.Context) ([]icd.Record, error) {
	chapters, err := c.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("chapters: %w", err)
	}
	slog.InfoContext(ctx, "scraped chapters", "count", len(chapters))

	blocks, err := c.Blocks(ctx, Codes(chapters))
	if err != nil {
		return nil, fmt.Errorf("blocks: %w", err)
	}
	slog.InfoContext(ctx, "scraped blocks", "count", len(blocks))

	// In best-effort mode every block fetch may have failed, leaving no
	// keys for the category level.
	var categories []icd.Record
	if codes := Codes(blocks); len(codes) > 0 {
		categories, err = c.Categories(ctx, codes)
		if err != nil {
			return nil, fmt.Errorf("categories: %w", err)
		}
	}
	slog.InfoContext(ctx, "scraped categories", "count", len(categories))

	records := make([]icd.Record, 0, len(chapters)+len(blocks)+len(categories))
	records = append(records, chapters...)
	records = append(records, blocks...)
	records = append(records, categories...)
	return records, nil
}
