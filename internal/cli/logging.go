package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/railscookie/pkg/logger"
)

// Session keys that must not show up in logs next to the built-in redactions.
var redactedSessionKeys = []string{"_csrf_token", "csrf_token", "session_id"}

// newLogger writes to w. Without APP_ENV it logs text at warn level;
// APP_ENV selects the logger presets and LOG_LEVEL / LOG_FORMAT override both.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(slog.LevelWarn),
		logger.WithFormat(logger.FormatText),
	}
	if cfg.Env != "" {
		opts = append(opts, logger.WithEnvironment(cfg.Env, "railscookie"))
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidFlag, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format := logger.Format(strings.ToLower(cfg.LogFormat))
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("%w: log format must be json or text, got %q", ErrInvalidFlag, cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	opts = append(opts,
		logger.WithRedactedKeys(redactedSessionKeys...),
		logger.WithAttr(logger.Component("cli")),
	)
	return logger.New(opts...), nil
}
