package domain

import "context"

// VerifierPort checks a submitted identity/secret pair. Swapping in hashed
// storage later only means providing another implementation
type VerifierPort interface {
	Verify(identity, secret string) bool
}

// ServicePort is consumed by the http handlers
type ServicePort interface {
	Login(ctx context.Context, in LoginInput) (Session, error)
	Logout(ctx context.Context, token string) error
}

// TokenParserPort resolves a bearer token to its session, used by middleware
type TokenParserPort interface {
	ParseToken(token string) (identity, sessionID string, err error)
}

// Ports bundles what the auth module exposes for cross-module wiring
type Ports struct {
	Service ServicePort
	Parser  TokenParserPort
}
