// Package logger builds *slog.Logger instances for the cookie tooling.
//
// New applies functional options (format, level, output, static attributes, environment
// presets) and always installs a redaction hook: attributes whose key names a secret
// (secret, secret_key_base, key, token, cookie) are replaced with "[REDACTED]" before they
// reach the handler. Session cookies and the secret_key_base must never end up in logs.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "railscookie"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("session rejected",
//	    logger.Component("session"),
//	    logger.ErrorCategory(err),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take an error return
// an empty attribute for nil, so they can be passed unconditionally.
package logger
