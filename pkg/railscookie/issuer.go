package railscookie

import (
	"encoding/json"
	"errors"
	"io"
	"time"
)

// Issuer writes tokens in the formats Verifier reads. It exists for fixtures and debugging;
// production cookies are issued by the Rails application.
type Issuer struct {
	codec     *codec
	expiresIn time.Duration
	random    io.Reader
}

func NewIssuer(secret []byte, opts ...Option) (*Issuer, error) {
	o := applyOptions(opts)
	c, err := newCodec(secret, o)
	if err != nil {
		return nil, err
	}
	return &Issuer{codec: c, expiresIn: o.expiresIn, random: o.random}, nil
}

// Issue encrypts values into a percent-encoded cookie value. A nil map issues an empty session.
func (i *Issuer) Issue(values map[string]any) (string, error) {
	if values == nil {
		values = map[string]any{}
	}

	session, err := json.Marshal(values)
	if err != nil {
		return "", errors.Join(ErrEncodingFailed, err)
	}

	switch i.codec.format {
	case FormatAEADGCM:
		plaintext, err := i.codec.sealPayload(session, i.expiresIn)
		if err != nil {
			return "", err
		}
		return i.codec.sealAEAD(plaintext, i.random)
	case FormatHMACSigned:
		plaintext := session
		// The legacy format carries an envelope only when there is metadata to record.
		if i.codec.purpose != "" || i.expiresIn > 0 {
			if plaintext, err = i.codec.sealPayload(session, i.expiresIn); err != nil {
				return "", err
			}
		}
		return i.codec.sealSigned(plaintext, i.random)
	default:
		return "", ErrUnsupportedFormat
	}
}
