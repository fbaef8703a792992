package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

const minParagraphLen = 10

type CrawlConfig struct {
	MaxDepth int
	MaxPages int
	Client   *http.Client
	Headless HeadlessFetcher
}

func CrawlConfigFromEnv() CrawlConfig {
	return CrawlConfig{
		MaxDepth: envutil.Int("CRAWL_MAX_DEPTH", 10),
		MaxPages: envutil.Int("CRAWL_MAX_PAGES", 500),
	}
}

func (c CrawlConfig) normalized() CrawlConfig {
	if c.MaxDepth <= 0 {
		c.MaxDepth = 10
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 500
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if c.Headless == nil {
		c.Headless = NewChromedpFetcher()
	}
	return c
}

// urlExtractor crawls the seed page breadth first, staying on the seed's
// host. Each page with usable text becomes one Item.
type urlExtractor struct {
	log *logger.Logger
	cfg CrawlConfig
}

func NewURLExtractor(log *logger.Logger, cfg CrawlConfig) Extractor {
	return &urlExtractor{
		log: log.With("extractor", "url"),
		cfg: cfg.normalized(),
	}
}

type crawlTarget struct {
	url   string
	depth int
}

func (e *urlExtractor) Extract(ctx context.Context, job *pb.ChunkingData) ([]Item, error) {
	seed, err := url.Parse(strings.TrimSpace(job.GetUrl()))
	if err != nil || seed.Host == "" || (seed.Scheme != "http" && seed.Scheme != "https") {
		return nil, fmt.Errorf("invalid seed url %q", job.GetUrl())
	}
	seed.Fragment = ""

	visited := map[string]bool{}
	queue := []crawlTarget{{url: seed.String(), depth: 0}}
	fetched := 0
	var items []Item

	for len(queue) > 0 && fetched < e.cfg.MaxPages {
		if err := ctx.Err(); err != nil {
			return items, err
		}
		target := queue[0]
		queue = queue[1:]
		if visited[target.url] {
			continue
		}
		visited[target.url] = true
		fetched++

		body, err := e.fetchHTML(ctx, target.url)
		if err != nil {
			e.log.Warn("Failed to fetch page", "url", target.url, "error", err)
			continue
		}
		text, links := parsePage(body, target.url)

		// The seed page rendering empty usually means a script-driven
		// site; retry it through the headless browser once.
		if text == "" && target.depth == 0 {
			rendered, renderErr := e.cfg.Headless.FetchHTML(ctx, target.url)
			if renderErr != nil {
				e.log.Warn("Headless fallback failed", "url", target.url, "error", renderErr)
			} else {
				text, links = parsePage(rendered, target.url)
			}
		}
		if text != "" {
			items = append(items, Item{Ref: target.url, Content: text})
		}
		if !job.GetUrlRecursive() {
			break
		}
		if target.depth >= e.cfg.MaxDepth {
			continue
		}
		for _, link := range links {
			if sameHost(link, seed) && !visited[link] {
				queue = append(queue, crawlTarget{url: link, depth: target.depth + 1})
			}
		}
	}
	e.log.Info("Crawl finished", "seed", seed.String(), "pages_fetched", fetched, "items", len(items))
	return items, nil
}

func (e *urlExtractor) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := e.cfg.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func sameHost(rawURL string, seed *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == seed.Host
}

// parsePage pulls the visible text of p, article and div elements plus all
// absolute same-scheme links. Short fragments and repeated blocks (nested
// containers render their children twice) are dropped; blocks are joined by
// blank lines.
func parsePage(rawHTML, baseURL string) (string, []string) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", nil
	}

	var paragraphs []string
	seen := map[string]bool{}
	var links []string
	linkSeen := map[string]bool{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "p", "article", "div":
				text := collapseSpace(nodeText(n))
				if len(text) >= minParagraphLen && !seen[text] {
					seen[text] = true
					paragraphs = append(paragraphs, text)
				}
			case "a":
				if link, ok := resolveLink(n, base); ok && !linkSeen[link] {
					linkSeen[link] = true
					links = append(links, link)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(paragraphs, "\n\n"), links
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func resolveLink(n *html.Node, base *url.URL) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		ref, err := url.Parse(strings.TrimSpace(attr.Val))
		if err != nil {
			return "", false
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return "", false
		}
		abs.Fragment = ""
		return abs.String(), true
	}
	return "", false
}
