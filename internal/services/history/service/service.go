// Package service implements the in-process history log
package service

import (
	"context"
	"sync"

	perr "harmwatch/internal/platform/errors"
	"harmwatch/internal/services/history/domain"
)

// Service keeps one append-only record slice per session id. Storage is
// partitioned at write time, so concurrent sessions can never observe each
// other's records; read-side identity filtering is a second fence, not the
// isolation mechanism. Nothing here survives the process
type Service struct {
	mu   sync.RWMutex
	logs map[string][]domain.Record
}

// New constructs an empty history store
func New() *Service {
	return &Service{logs: map[string][]domain.Record{}}
}

// Append adds rec to the session's log. Records are never reordered or mutated
// after insertion
func (s *Service) Append(_ context.Context, sessionID string, rec domain.Record) error {
	if sessionID == "" {
		return perr.InvalidArgf("history append requires a session id")
	}
	s.mu.Lock()
	s.logs[sessionID] = append(s.logs[sessionID], rec)
	s.mu.Unlock()
	return nil
}

// List returns a copy of the session's records in insertion order
// reverse-chronological views are derived by reversing, never by re-sorting
func (s *Service) List(_ context.Context, sessionID string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.logs[sessionID]
	out := make([]domain.Record, len(recs))
	copy(out, recs)
	return out, nil
}

// Purge discards the session's log. Called on logout; no partial teardown
func (s *Service) Purge(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.logs, sessionID)
	s.mu.Unlock()
	return nil
}
