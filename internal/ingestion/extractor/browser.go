package extractor

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessFetcher renders a page in a real browser. Used only when the
// plain HTTP fetch of a crawl seed yields no text.
type HeadlessFetcher interface {
	FetchHTML(ctx context.Context, pageURL string) (string, error)
}

type chromedpFetcher struct {
	timeout time.Duration
}

func NewChromedpFetcher() HeadlessFetcher {
	return &chromedpFetcher{timeout: 60 * time.Second}
}

func (f *chromedpFetcher) FetchHTML(ctx context.Context, pageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var rendered string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.OuterHTML("html", &rendered),
	)
	if err != nil {
		return "", err
	}
	return rendered, nil
}
