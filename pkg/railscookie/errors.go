package railscookie

import "errors"

var (
	ErrMalformedToken       = errors.New("railscookie.malformed_token")
	ErrAuthenticationFailed = errors.New("railscookie.authentication_failed")
	ErrUnsupportedFormat    = errors.New("railscookie.unsupported_format")
	ErrExpired              = errors.New("railscookie.expired")
	ErrPurposeMismatch      = errors.New("railscookie.purpose_mismatch")

	ErrEmptySecret       = errors.New("railscookie.empty_secret")
	ErrUnsupportedDigest = errors.New("railscookie.unsupported_digest")
	ErrInvalidIterations = errors.New("railscookie.invalid_iterations")
	ErrEncodingFailed    = errors.New("railscookie.encoding_failed")
)

// Category names the class of a verification error for operators and logs.
// It returns an empty string for a nil error.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, ErrAuthenticationFailed):
		return "authentication_failed"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrPurposeMismatch):
		return "purpose_mismatch"
	case errors.Is(err, ErrEmptySecret), errors.Is(err, ErrUnsupportedDigest), errors.Is(err, ErrInvalidIterations):
		return "configuration"
	default:
		return "internal"
	}
}
