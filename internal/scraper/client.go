// Package scraper fetches the ICD-10 hierarchy from the WHO browser: the
// JavaScript-rendered chapter tree through a headless browser, blocks and
// categories through the plain HTTP concept endpoints.
package scraper

import (
	"context"
	"math/rand"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/matteobe/icd10-scraper/internal/config"
	"github.com/matteobe/icd10-scraper/internal/runner"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Client scrapes one ICD-10 version. It is safe for concurrent use; the
// worker pool shares the single underlying HTTP client.
type Client struct {
	cfg  *config.Config
	http *resty.Client
}

// NewClient builds a client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	httpc := resty.New().
		SetTimeout(cfg.Scraper.FetchTimeout)
	if cfg.Scraper.Proxy != "" {
		httpc.SetProxy(cfg.Scraper.Proxy)
	}
	return &Client{cfg: cfg, http: httpc}
}

func (c *Client) get(ctx context.Context, link string) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if ua := c.userAgent(); ua != "" {
		req.SetHeader("User-Agent", ua)
	}
	return req.Get(link)
}

func (c *Client) userAgent() string {
	agents := c.cfg.Scraper.UserAgents
	if len(agents) == 0 {
		return ""
	}
	return agents[rand.Intn(len(agents))]
}

func (c *Client) conceptURL(code string) string {
	return c.cfg.RootURL() + "/GetConcept?ConceptId=" + url.QueryEscape(code)
}

func (c *Client) childrenURL(code string) string {
	return c.cfg.RootURL() + "/JsonGetChildrenConcepts?ConceptId=" +
		url.QueryEscape(code) + "&useHtml=true&showAdoptedChildren=true"
}

func (c *Client) runOptions(level icd.Level) runner.Options {
	return runner.Options{
		Workers:      c.cfg.Scraper.Workers,
		FetchTimeout: c.cfg.Scraper.FetchTimeout,
		BestEffort:   c.cfg.Scraper.BestEffort,
		Level:        level,
	}
}

func failedRecord(level icd.Level, key string, res *resty.Response) icd.Record {
	return icd.Record{
		Level:      level,
		ParentCode: key,
		Failure: &icd.Failure{
			Status: res.StatusCode(),
			Reason: res.Status(),
		},
	}
}

// Codes returns the codes of the successful records, skipping failed ones.
func Codes(records []icd.Record) []string {
	codes := make([]string, 0, len(records))
	for _, r := range records {
		if r.Failed() {
			continue
		}
		codes = append(codes, r.Code)
	}
	return codes
}

var crlfCleaner = strings.NewReplacer("\r", "", "\n", " ")

// cleanLabel collapses a label's line breaks and strips the leading code
// prefix the site renders inside the label text.
func cleanLabel(label, code string) string {
	label = strings.TrimSpace(crlfCleaner.Replace(label))
	label = strings.TrimPrefix(label, code)
	return strings.TrimSpace(strings.ReplaceAll(label, "\u00a0", " "))
}
