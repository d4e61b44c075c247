package testutil

// DefaultSessionToken is used when a scenario names no session.
const DefaultSessionToken = "test-session-default"

// FixedSessionGenerator hands out the same session token on every call.
// It satisfies session.TokenGenerator.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator returns a generator for token, or for
// DefaultSessionToken when token is empty.
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = DefaultSessionToken
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}
