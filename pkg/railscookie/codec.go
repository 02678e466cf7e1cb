package railscookie

import (
	"errors"
	"hash"
	"time"

	"github.com/dmitrymomot/railscookie/pkg/keygen"
)

// codec holds what verification and issuing share: the format, the key deriver and the
// envelope expectations.
type codec struct {
	format  Format
	keys    keygen.Deriver
	purpose string
	digest  func() hash.Hash
	now     func() time.Time
}

func newCodec(secret []byte, o options) (*codec, error) {
	format, err := ParseFormat(string(o.format))
	if err != nil {
		return nil, err
	}

	digest, err := digestFunc(o.digest)
	if err != nil {
		return nil, err
	}

	gen, err := keygen.New(secret, keygen.WithIterations(o.iterations))
	if err != nil {
		switch {
		case errors.Is(err, keygen.ErrEmptySecret):
			return nil, ErrEmptySecret
		case errors.Is(err, keygen.ErrInvalidIterations):
			return nil, ErrInvalidIterations
		}
		return nil, err
	}

	return &codec{
		format:  format,
		keys:    keygen.NewCaching(gen),
		purpose: o.purpose,
		digest:  digest,
		now:     o.now,
	}, nil
}
