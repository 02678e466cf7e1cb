// Package keygen derives purpose-specific keys from a single root secret.
//
// Keys are produced with PBKDF2 (golang.org/x/crypto/pbkdf2) using a fixed salt per
// purpose, which is how Rails' ActiveSupport::KeyGenerator turns secret_key_base into the
// keys used by encrypted and signed cookies. The defaults (HMAC-SHA1, 1000 iterations)
// match a stock Rails 5.2/6 deployment.
//
// # Usage
//
//	gen, err := keygen.New([]byte(os.Getenv("SECRET_KEY_BASE")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	key := gen.Key("authenticated encrypted cookie", 32)
//
// Derivation is deliberately slow. When the same secret is used for many derivations wrap
// the generator with NewCaching, which memoises keys per (salt, size) pair. The cache is an
// optimisation only: a Caching deriver always returns exactly what the wrapped Generator would.
//
// # Error Handling
//
// New returns ErrEmptySecret for an empty root secret and ErrInvalidIterations for a
// non-positive iteration count. Key itself never fails.
package keygen
