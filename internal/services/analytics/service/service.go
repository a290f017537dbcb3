// Package service builds analytics summaries over the session history
package service

import (
	"context"
	"strings"

	"harmwatch/internal/core/textnorm"
	"harmwatch/internal/services/analytics/domain"
	histdom "harmwatch/internal/services/history/domain"
)

// Service reads the session log and aggregates it per identity
type Service struct {
	reader histdom.ReaderPort
	norm   *textnorm.Normalizer
}

// New constructs the analytics service over the given history reader
func New(reader histdom.ReaderPort) *Service {
	return &Service{reader: reader, norm: textnorm.New()}
}

// Summarize aggregates the identity's records within the session
// empty history yields HasData=false with empty aggregates, never fabricated rows
func (s *Service) Summarize(ctx context.Context, identity, sessionID string) (domain.Summary, error) {
	recs, err := s.reader.List(ctx, sessionID)
	if err != nil {
		return domain.Summary{}, err
	}

	var mine []histdom.Record
	for _, r := range recs {
		if r.Owner == identity {
			mine = append(mine, r)
		}
	}

	sum := domain.Summary{
		Table:       make([]histdom.Record, 0, len(mine)),
		LabelCounts: map[string]int{},
		WordCounts:  map[string]int{},
	}

	// most recent first by reversing insertion order, never by re-sorting
	for i := len(mine) - 1; i >= 0; i-- {
		sum.Table = append(sum.Table, mine[i])
	}

	texts := make([]string, 0, len(mine))
	for _, r := range mine {
		sum.LabelCounts[r.Label.String()]++
		texts = append(texts, r.Text)
	}
	sum.Corpus = strings.Join(texts, " ")

	for _, tok := range textnorm.Tokens(s.norm.Normalize(sum.Corpus)) {
		sum.WordCounts[tok]++
	}

	sum.HasData = len(sum.Table) > 0
	return sum, nil
}
