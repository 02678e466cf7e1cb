package cli

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/railscookie/pkg/config"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

var (
	ErrMissingSecret = errors.New("cli.missing_secret")
	ErrInvalidInput  = errors.New("cli.invalid_input")
	ErrInvalidFlag   = errors.New("cli.invalid_flag")
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// category names err for the "<category>: <message>" line printed on failure.
func category(err error) string {
	switch {
	case errors.Is(err, ErrMissingSecret), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidFlag):
		return "usage"
	case errors.Is(err, config.ErrLoadingEnvFile), errors.Is(err, config.ErrParsingConfig):
		return "configuration"
	}
	return railscookie.Category(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case category(err) == "usage", category(err) == "configuration":
		return ExitUsage
	default:
		return ExitFailure
	}
}

// message is the human readable part of the failure line. Verification
// errors never carry details, so the category alone would be repetitive.
func message(err error) string {
	switch {
	case errors.Is(err, railscookie.ErrMalformedToken):
		return "token is not a well-formed session cookie"
	case errors.Is(err, railscookie.ErrAuthenticationFailed):
		return "token was not produced with this secret or has been altered"
	case errors.Is(err, railscookie.ErrUnsupportedFormat):
		return "unsupported cookie format"
	case errors.Is(err, railscookie.ErrExpired):
		return "session has expired"
	case errors.Is(err, railscookie.ErrPurposeMismatch):
		return "token was issued for a different cookie"
	default:
		return strings.ReplaceAll(err.Error(), "\n", ": ")
	}
}
