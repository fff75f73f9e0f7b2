package scraper

import (
	"bytes"
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/matteobe/icd10-scraper/internal/runner"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Blocks fetches the blocks of the given chapter codes, fanning the
// chapters out over the worker pool.
func (c *Client) Blocks(ctx context.Context, chapters []string) ([]icd.Record, error) {
	return runner.Run(ctx, c.fetchBlocks, chapters, c.runOptions(icd.LevelBlock))
}

func (c *Client) fetchBlocks(ctx context.Context, chapter string) ([]icd.Record, error) {
	res, err := c.get(ctx, c.conceptURL(chapter))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return []icd.Record{failedRecord(icd.LevelBlock, chapter, res)}, nil
	}
	return ParseBlocks(chapter, bytes.NewReader(res.Body()))
}

// ParseBlocks extracts block records from a GetConcept response body.
func ParseBlocks(chapter string, r io.Reader) ([]icd.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []icd.Record
	doc.Find("li.Blocklist1").Each(func(_ int, li *goquery.Selection) {
		code := li.Find("a.code").First().Text()
		if code == "" {
			return
		}
		records = append(records, icd.Record{
			Level:       icd.LevelBlock,
			ParentCode:  chapter,
			Code:        code,
			Description: cleanLabel(li.Find("span.label").First().Text(), ""),
		})
	})
	return records, nil
}
