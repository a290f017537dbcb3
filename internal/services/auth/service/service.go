// Package service implements the access gate: credential verification plus the
// in-process session registry
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	perr "harmwatch/internal/platform/errors"
	"harmwatch/internal/platform/logger"
	"harmwatch/internal/services/auth/domain"
	histdom "harmwatch/internal/services/history/domain"
)

// Service implements domain.ServicePort and domain.TokenParserPort
type Service struct {
	verifier domain.VerifierPort
	purger   histdom.PurgerPort

	mu       sync.RWMutex
	sessions map[string]domain.Session

	now      func() time.Time
	newToken func() string
}

// New constructs the auth service. purger may be nil in tests; logout then
// only drops the session itself
func New(verifier domain.VerifierPort, purger histdom.PurgerPort) *Service {
	if verifier == nil {
		panic("auth.Service requires a non nil verifier")
	}
	return &Service{
		verifier: verifier,
		purger:   purger,
		sessions: map[string]domain.Session{},
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Login checks the pair against the verifier and opens a session on success.
// Unknown identity and wrong secret produce the same generic error
func (s *Service) Login(_ context.Context, in domain.LoginInput) (domain.Session, error) {
	if !s.verifier.Verify(in.Identity, in.Secret) {
		return domain.Session{}, perr.Unauthorizedf("invalid username or password")
	}

	sess := domain.Session{
		Token:     s.newToken(),
		Identity:  in.Identity,
		CreatedAt: s.now(),
	}
	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	logger.Named("auth").Info().Str("identity", in.Identity).Msg("session opened")
	return sess, nil
}

// Logout destroys the session and purges everything derived from it. Full
// teardown, no partials
func (s *Service) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	s.mu.Unlock()
	if !ok {
		return perr.Unauthorizedf("invalid bearer token")
	}

	if s.purger != nil {
		if err := s.purger.Purge(ctx, token); err != nil {
			return err
		}
	}
	logger.Named("auth").Info().Str("identity", sess.Identity).Msg("session closed")
	return nil
}

// ParseToken resolves a bearer token for the auth middleware
func (s *Service) ParseToken(token string) (string, string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", "", perr.Unauthorizedf("invalid bearer token")
	}
	return sess.Identity, sess.Token, nil
}
