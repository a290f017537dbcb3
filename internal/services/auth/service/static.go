package service

import (
	"strings"

	"harmwatch/internal/platform/config"
	"harmwatch/internal/platform/logger"
)

// defaultUsers is the stock credential table, verbatim comparison only
const defaultUsers = "krupa sai:1234,judge:hackathon,admin:admin123,karthik pilli:1432"

// StaticVerifier is the fixed in-memory credential table. Not created or
// mutated at runtime
type StaticVerifier struct {
	users map[string]string
}

// NewStaticVerifier builds a verifier from an identity -> secret map
func NewStaticVerifier(users map[string]string) *StaticVerifier {
	cp := make(map[string]string, len(users))
	for k, v := range users {
		cp[k] = v
	}
	return &StaticVerifier{users: cp}
}

// VerifierFromConfig parses SERVICE_AUTH_USERS ("id:secret,id:secret"),
// falling back to the stock table. Malformed entries are skipped with a warning
func VerifierFromConfig(cfg config.Conf) *StaticVerifier {
	raw := cfg.MayString("USERS", defaultUsers)
	users := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, secret, ok := strings.Cut(pair, ":")
		if !ok || id == "" {
			logger.Named("auth").Warn().Str("entry", pair).Msg("skipping malformed credential entry")
			continue
		}
		users[id] = secret
	}
	return NewStaticVerifier(users)
}

// Verify reports whether the pair matches the table exactly
func (v *StaticVerifier) Verify(identity, secret string) bool {
	want, ok := v.users[identity]
	return ok && want == secret
}
