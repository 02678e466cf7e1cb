package railscookie

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	envelopeKey = "_rails"

	// expiryLayout is Time#iso8601(3) as written by ActiveSupport.
	expiryLayout = "2006-01-02T15:04:05.000Z07:00"
)

// metadata is the inner object of the {"_rails": {...}} envelope.
type metadata struct {
	Message *string `json:"message"`
	Exp     *string `json:"exp"`
	Pur     *string `json:"pur"`
}

// openPayload turns decrypted plaintext into a session. When required is false the plaintext
// may be the session itself; an envelope is still unwrapped if present.
func (c *codec) openPayload(plaintext []byte, required bool) (Session, error) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &outer); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if outer == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedToken)
	}

	raw, ok := outer[envelopeKey]
	if !ok {
		if required {
			return nil, fmt.Errorf("%w: missing %s envelope", ErrMalformedToken, envelopeKey)
		}
		return decodeSession(plaintext)
	}

	var meta metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if meta.Message == nil {
		return nil, fmt.Errorf("%w: envelope has no message", ErrMalformedToken)
	}

	if err := c.checkMetadata(meta); err != nil {
		return nil, err
	}

	message, err := decodeBase64(*meta.Message)
	if err != nil {
		return nil, err
	}

	return decodeSession(message)
}

func (c *codec) checkMetadata(meta metadata) error {
	if meta.Exp != nil {
		exp, err := time.Parse(time.RFC3339, *meta.Exp)
		if err != nil {
			return errors.Join(ErrMalformedToken, err)
		}
		if !c.now().Before(exp) {
			return ErrExpired
		}
	}

	if c.purpose != "" && (meta.Pur == nil || *meta.Pur != c.purpose) {
		return ErrPurposeMismatch
	}

	return nil
}

// sealPayload wraps an encoded session in the envelope.
func (c *codec) sealPayload(session []byte, expiresIn time.Duration) ([]byte, error) {
	message := encodeBase64(session)
	meta := metadata{Message: &message}

	if expiresIn > 0 {
		exp := c.now().Add(expiresIn).UTC().Format(expiryLayout)
		meta.Exp = &exp
	}
	if c.purpose != "" {
		pur := c.purpose
		meta.Pur = &pur
	}

	data, err := json.Marshal(map[string]metadata{envelopeKey: meta})
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}
	return data, nil
}
