package railscookie_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := railscookie.DefaultConfig()
	assert.Empty(t, cfg.SecretKeyBase)
	assert.Equal(t, "aead-gcm", cfg.Format)
	assert.Equal(t, "_news_session", cfg.CookieName)
	assert.True(t, cfg.VerifyPurpose)
	assert.Equal(t, "SHA1", cfg.Digest)
	assert.Equal(t, 1000, cfg.Iterations)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("SECRET_KEY_BASE", referenceSecret)
	t.Setenv("COOKIE_FORMAT", "hmac-signed")
	t.Setenv("SESSION_COOKIE_NAME", "_shop_session")
	t.Setenv("COOKIE_VERIFY_PURPOSE", "false")

	var cfg railscookie.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, referenceSecret, cfg.SecretKeyBase)
	assert.Equal(t, "hmac-signed", cfg.Format)
	assert.Equal(t, "_shop_session", cfg.CookieName)
	assert.False(t, cfg.VerifyPurpose)
	assert.Equal(t, "SHA1", cfg.Digest)
	assert.Equal(t, 1000, cfg.Iterations)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("reference deployment", func(t *testing.T) {
		t.Parallel()
		cfg := railscookie.DefaultConfig()
		cfg.SecretKeyBase = referenceSecret

		v, err := railscookie.NewFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, railscookie.FormatAEADGCM, v.Format())

		sess, err := v.Verify(loggedInCookie)
		require.NoError(t, err)
		assert.Equal(t, json.Number("1"), sess["user_id"])
	})

	t.Run("purpose follows cookie name", func(t *testing.T) {
		t.Parallel()
		cfg := railscookie.DefaultConfig()
		cfg.SecretKeyBase = referenceSecret
		cfg.CookieName = "_other_session"

		v, err := railscookie.NewFromConfig(cfg)
		require.NoError(t, err)
		_, err = v.Verify(loggedInCookie)
		require.ErrorIs(t, err, railscookie.ErrPurposeMismatch)

		cfg.VerifyPurpose = false
		v, err = railscookie.NewFromConfig(cfg)
		require.NoError(t, err)
		_, err = v.Verify(loggedInCookie)
		require.NoError(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		_, err := railscookie.NewFromConfig(railscookie.DefaultConfig())
		require.ErrorIs(t, err, railscookie.ErrEmptySecret)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()
		cfg := railscookie.DefaultConfig()
		cfg.SecretKeyBase = referenceSecret
		cfg.Format = "json"
		_, err := railscookie.NewFromConfig(cfg)
		require.ErrorIs(t, err, railscookie.ErrUnsupportedFormat)
	})

	t.Run("negative iterations", func(t *testing.T) {
		t.Parallel()
		cfg := railscookie.DefaultConfig()
		cfg.SecretKeyBase = referenceSecret
		cfg.Iterations = -1
		_, err := railscookie.NewFromConfig(cfg)
		require.ErrorIs(t, err, railscookie.ErrInvalidIterations)
		assert.Equal(t, "configuration", railscookie.Category(err))
	})

	t.Run("issuer matches verifier", func(t *testing.T) {
		t.Parallel()
		cfg := railscookie.DefaultConfig()
		cfg.SecretKeyBase = testSecret
		cfg.Format = "hmac-signed"

		iss, err := railscookie.NewIssuerFromConfig(cfg)
		require.NoError(t, err)
		token, err := iss.Issue(map[string]any{"user_id": 3})
		require.NoError(t, err)

		v, err := railscookie.NewFromConfig(cfg)
		require.NoError(t, err)
		sess, err := v.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, json.Number("3"), sess["user_id"])
	})
}

func TestConfig_LogValueRedactsSecret(t *testing.T) {
	t.Parallel()

	cfg := railscookie.DefaultConfig()
	cfg.SecretKeyBase = referenceSecret

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("config", slog.Any("cookie", cfg))

	assert.NotContains(t, buf.String(), referenceSecret)
	assert.Contains(t, buf.String(), "[REDACTED]")
	assert.Contains(t, buf.String(), "_news_session")
}
