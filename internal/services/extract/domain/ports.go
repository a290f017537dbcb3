// Package domain defines the content extraction contracts
package domain

import "context"

// ExtractorPort turns a URL into a short plain-text excerpt
// implementations fetch the page and distill its paragraph text
type ExtractorPort interface {
	Excerpt(ctx context.Context, url string) (string, error)
}

// Ports groups the extract ports other modules may depend on
type Ports struct {
	Extractor ExtractorPort
}
