// Package domain defines the analytics read-model types and ports
package domain

import (
	"context"

	histdom "harmwatch/internal/services/history/domain"
)

// Summary is the aggregate view of a session's classification history
type Summary struct {
	// Table holds the identity's records, most recent first
	Table []histdom.Record `json:"table"`

	// LabelCounts maps label display names to occurrence counts
	LabelCounts map[string]int `json:"label_counts"`

	// Corpus is every classified text joined by a single space
	Corpus string `json:"corpus"`

	// WordCounts maps case-folded tokens to their frequency across the corpus
	WordCounts map[string]int `json:"word_counts"`

	// HasData reports whether any record exists for the identity
	HasData bool `json:"has_data"`
}

// ServicePort produces analytics summaries
type ServicePort interface {
	Summarize(ctx context.Context, identity, sessionID string) (Summary, error)
}

// Ports bundles the analytics ports for cross-module wiring
type Ports struct {
	Service ServicePort
}
