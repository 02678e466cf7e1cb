package railscookie

import (
	"fmt"
	"strings"
)

// Format selects the cookie wire format.
type Format string

const (
	// FormatAEADGCM is the authenticated encryption format of Rails 5.2 and later.
	FormatAEADGCM Format = "aead-gcm"
	// FormatHMACSigned is the legacy encrypt-then-sign format (AES-CBC + HMAC).
	FormatHMACSigned Format = "hmac-signed"
)

func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts the canonical names case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAEADGCM, FormatHMACSigned:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
