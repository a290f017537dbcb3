// Package service implements paragraph extraction over a fetched page
package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"

	"harmwatch/internal/adapters/webfetch"
	"harmwatch/internal/platform/config"
	perr "harmwatch/internal/platform/errors"
)

// maxExcerptRunes caps the excerpt length handed to the classifier
const maxExcerptRunes = 1000

// Fetcher is the page retrieval seam; webfetch.Client satisfies it
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Service fetches a page and extracts its paragraph text
type Service struct {
	fetch Fetcher
}

// New constructs a Service around the given fetcher
func New(f Fetcher) *Service {
	return &Service{fetch: f}
}

// FromConfig builds a Service with a webfetch client configured from cfg
// reads TIMEOUT (seconds) with a 5s default
func FromConfig(cfg config.Conf) *Service {
	timeout := time.Duration(cfg.MayInt("TIMEOUT", 5)) * time.Second
	return New(webfetch.NewClient(webfetch.Options{Timeout: timeout}))
}

// Excerpt fetches url and returns the first 1000 runes of its paragraph text
// paragraph blocks are joined by a single space in document order
func (s *Service) Excerpt(ctx context.Context, url string) (string, error) {
	body, err := s.fetch.Get(ctx, url)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", perr.Unavailablef("failed to fetch content from the url")
	}

	var blocks []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if t := strings.TrimSpace(textOf(n)); t != "" {
				blocks = append(blocks, t)
			}
			return // nested <p> never survives html parsing anyway
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return truncateRunes(strings.Join(blocks, " "), maxExcerptRunes), nil
}

// textOf concatenates every text node under n in document order
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
