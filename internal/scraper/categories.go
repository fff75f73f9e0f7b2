package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/matteobe/icd10-scraper/internal/runner"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// childConcept mirrors one element of the JsonGetChildrenConcepts payload:
// the concept id plus the HTML fragment the tree widget would insert.
type childConcept struct {
	ID   string `json:"ID"`
	HTML string `json:"html"`
}

// Categories fetches the categories of the given block codes, fanning the
// blocks out over the worker pool.
func (c *Client) Categories(ctx context.Context, blocks []string) ([]icd.Record, error) {
	return runner.Run(ctx, c.fetchCategories, blocks, c.runOptions(icd.LevelCategory))
}

func (c *Client) fetchCategories(ctx context.Context, block string) ([]icd.Record, error) {
	res, err := c.get(ctx, c.childrenURL(block))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return []icd.Record{failedRecord(icd.LevelCategory, block, res)}, nil
	}

	var children []childConcept
	if err := json.Unmarshal(res.Body(), &children); err != nil {
		return nil, fmt.Errorf("decode children of %s: %w", block, err)
	}

	records := make([]icd.Record, 0, len(children))
	for _, child := range children {
		description, err := parseCategoryLabel(child.HTML, child.ID)
		if err != nil {
			return nil, fmt.Errorf("parse category %s: %w", child.ID, err)
		}
		records = append(records, icd.Record{
			Level:       icd.LevelCategory,
			ParentCode:  block,
			Code:        child.ID,
			Description: description,
		})
	}
	return records, nil
}

func parseCategoryLabel(fragment, code string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return cleanLabel(doc.Find("a.ygtvlabel").First().Text(), code), nil
}
