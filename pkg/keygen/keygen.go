package keygen

import (
	"crypto/sha1"
	"hash"
	"log/slog"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 iteration count Rails uses for cookie keys.
const DefaultIterations = 1000

// Deriver returns a key of the given size for a salt.
type Deriver interface {
	Key(salt string, size int) []byte
}

type Option func(*Generator)

// WithIterations overrides the PBKDF2 iteration count.
func WithIterations(n int) Option {
	return func(g *Generator) {
		g.iterations = n
	}
}

// WithHash overrides the PRF hash. Rails 7 applications default to SHA-256.
// Nil is ignored.
func WithHash(h func() hash.Hash) Option {
	return func(g *Generator) {
		if h != nil {
			g.hash = h
		}
	}
}

// Generator derives keys from a root secret with PBKDF2.
type Generator struct {
	secret     []byte
	iterations int
	hash       func() hash.Hash
}

// New copies secret so later changes to the caller's slice do not affect derived keys.
func New(secret []byte, opts ...Option) (*Generator, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	g := &Generator{
		secret:     append([]byte(nil), secret...),
		iterations: DefaultIterations,
		hash:       sha1.New,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.iterations <= 0 {
		return nil, ErrInvalidIterations
	}

	return g, nil
}

// Key derives size bytes for salt. The result depends only on the secret, salt,
// iteration count, size and hash.
func (g *Generator) Key(salt string, size int) []byte {
	return pbkdf2.Key(g.secret, []byte(salt), g.iterations, size, g.hash)
}

// Iterations reports the configured iteration count.
func (g *Generator) Iterations() int {
	return g.iterations
}

// LogValue keeps the root secret out of structured logs.
func (g *Generator) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("secret", "[REDACTED]"),
		slog.Int("iterations", g.iterations),
	)
}
