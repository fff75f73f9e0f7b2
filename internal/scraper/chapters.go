package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Chapters scrapes the chapter list from the version root. The chapter tree
// is rendered client side, so this is the one level that needs a browser.
func (c *Client) Chapters(ctx context.Context) ([]icd.Record, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.cfg.Browser.Headless),
	)
	if c.cfg.Browser.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(c.cfg.Browser.ChromePath))
	}
	if c.cfg.Browser.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.cfg.Browser.UserAgent))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	slog.DebugContext(ctx, "rendering chapter tree", "url", c.cfg.RootURL())

	var tree string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(c.cfg.RootURL()),
		chromedp.WaitVisible("#ygtvc1", chromedp.ByQuery),
		chromedp.Sleep(c.cfg.Browser.WaitTime),
		chromedp.OuterHTML("#ygtvc1", &tree, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("render chapter tree: %w", err)
	}

	return ParseChapters(strings.NewReader(tree))
}

// ParseChapters extracts chapter records from the rendered hierarchy markup.
func ParseChapters(r io.Reader) ([]icd.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []icd.Record
	doc.Find(".ygtvitem").Each(func(_ int, item *goquery.Selection) {
		label := item.Find(".ygtvlabel").First()
		if label.Length() == 0 {
			return
		}
		code := strings.TrimSpace(label.Find(".icode").First().Text())
		if code == "" {
			return
		}
		records = append(records, icd.Record{
			Level:       icd.LevelChapter,
			Code:        code,
			Description: cleanLabel(label.Text(), code),
		})
	})

	if len(records) == 0 {
		return nil, errors.New("no chapters found in hierarchy markup")
	}
	return records, nil
}
