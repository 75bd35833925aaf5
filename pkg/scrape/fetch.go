package scrape

import (
	"context"
	"errors"
	"fmt"
	"github.com/gocolly/colly/v2"
	"os"
	"time"
)

// Fetcher retrieves the raw HTML of a catalog page.
type Fetcher interface {
	Fetch(ctx context.Context, page int) (string, error)
}

// CollyFetcher fetches catalog pages with a colly collector. Each call works
// on a clone so callbacks never leak between pages.
type CollyFetcher struct {
	c        *colly.Collector
	template string
}

// NewCollyFetcher wraps c for the given URL template. The collector must allow
// revisits since page 1 is fetched twice (discovery and scraping).
func NewCollyFetcher(c *colly.Collector, template string, timeout time.Duration) (*CollyFetcher, error) {
	if err := ValidateTemplate(template); err != nil {
		return nil, err
	}
	c.AllowURLRevisit = true
	// Non-2xx responses reach OnResponse so Fetch can report their status
	c.ParseHTTPErrorResponse = true
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}
	return &CollyFetcher{c: c, template: template}, nil
}

func (f *CollyFetcher) Fetch(ctx context.Context, page int) (string, error) {
	url := PageUrl(f.template, page)
	c := f.c.Clone() // same collector but without old callbacks
	c.Context = ctx

	var body []byte
	var status int
	c.OnResponse(func(res *colly.Response) {
		status = res.StatusCode
		body = res.Body
	})
	c.OnError(func(res *colly.Response, err error) {
		if res != nil {
			status = res.StatusCode
		}
	})

	if err := c.Visit(url); err != nil {
		return "", &FetchError{Page: page, Url: url, StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		return "", &FetchError{Page: page, Url: url, StatusCode: status, Err: errors.New("unexpected status")}
	}
	if body == nil {
		return "", &FetchError{Page: page, Url: url, Err: fmt.Errorf("empty response")}
	}
	return string(body), nil
}

// RunCache points c at a fresh cache directory that only lives for one run,
// so page 1 is downloaded once but nothing carries over to the next run. The
// returned func removes the directory.
func RunCache(c *colly.Collector) (func(), error) {
	dir, err := os.MkdirTemp("", "catalog-cache-")
	if err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	c.CacheDir = dir
	return func() { _ = os.RemoveAll(dir) }, nil
}
