package railscookie

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"strings"
	"time"

	"github.com/dmitrymomot/railscookie/pkg/keygen"
)

// Digest names accepted by WithDigest.
const (
	DigestSHA1   = "SHA1"
	DigestSHA256 = "SHA256"
	DigestSHA512 = "SHA512"
)

type options struct {
	format     Format
	purpose    string
	digest     string
	iterations int
	now        func() time.Time
	expiresIn  time.Duration
	random     io.Reader
}

func defaultOptions() options {
	return options{
		format:     FormatAEADGCM,
		digest:     DigestSHA1,
		iterations: keygen.DefaultIterations,
		now:        time.Now,
		random:     rand.Reader,
	}
}

type Option func(*options)

func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithPurpose requires the envelope "pur" field to equal purpose.
// An empty purpose disables the check.
func WithPurpose(purpose string) Option {
	return func(o *options) {
		o.purpose = purpose
	}
}

// WithDigest sets the HMAC digest of the signed format (SHA1, SHA256 or SHA512).
func WithDigest(name string) Option {
	return func(o *options) {
		o.digest = name
	}
}

// WithIterations overrides the PBKDF2 iteration count used for key derivation.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithClock replaces time.Now for expiry checks and issued expiry timestamps.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithExpiresIn makes an Issuer stamp tokens with an expiry. Verifiers ignore it.
func WithExpiresIn(d time.Duration) Option {
	return func(o *options) {
		o.expiresIn = d
	}
}

// WithRandom replaces the IV source of an Issuer. Verifiers ignore it. Nil is ignored.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// CookiePurpose returns the purpose Rails stamps on the cookie with the given name.
func CookiePurpose(name string) string {
	return "cookie." + name
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func digestFunc(name string) (func() hash.Hash, error) {
	switch strings.ToUpper(strings.ReplaceAll(name, "-", "")) {
	case DigestSHA1:
		return sha1.New, nil
	case DigestSHA256:
		return sha256.New, nil
	case DigestSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, name)
	}
}
