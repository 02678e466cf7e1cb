package railscookie

// Session is the verified cookie payload. JSON numbers are kept as json.Number.
type Session map[string]any

// Verifier checks cookies of one format against one secret.
type Verifier struct {
	codec *codec
}

// New copies secret; the caller may reuse or wipe its slice afterwards.
func New(secret []byte, opts ...Option) (*Verifier, error) {
	c, err := newCodec(secret, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Verifier{codec: c}, nil
}

func (v *Verifier) Format() Format {
	return v.codec.format
}

// Verify decodes token and returns its session only if the token authenticates.
// The token is the raw, still percent-encoded cookie value.
func (v *Verifier) Verify(token string) (Session, error) {
	switch v.codec.format {
	case FormatAEADGCM:
		return v.codec.openAEAD(token)
	case FormatHMACSigned:
		return v.codec.openSigned(token)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Verify checks a single token without caching derived keys across calls.
func Verify(token string, secret []byte, format Format) (Session, error) {
	v, err := New(secret, WithFormat(format))
	if err != nil {
		return nil, err
	}
	return v.Verify(token)
}
