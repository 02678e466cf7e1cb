package railscookie

import "log/slog"

// Config holds verifier configuration, usually parsed from the environment.
type Config struct {
	SecretKeyBase string `env:"SECRET_KEY_BASE"`
	Format        string `env:"COOKIE_FORMAT" envDefault:"aead-gcm"`
	CookieName    string `env:"SESSION_COOKIE_NAME" envDefault:"_news_session"`
	VerifyPurpose bool   `env:"COOKIE_VERIFY_PURPOSE" envDefault:"true"`
	Digest        string `env:"COOKIE_DIGEST" envDefault:"SHA1"`
	Iterations    int    `env:"COOKIE_KEY_ITERATIONS" envDefault:"1000"`
}

// DefaultConfig matches a stock Rails 6 application named "news".
func DefaultConfig() Config {
	return Config{
		Format:        string(FormatAEADGCM),
		CookieName:    "_news_session",
		VerifyPurpose: true,
		Digest:        DigestSHA1,
		Iterations:    1000,
	}
}

// LogValue keeps SecretKeyBase out of structured logs.
func (c Config) LogValue() slog.Value {
	secret := ""
	if c.SecretKeyBase != "" {
		secret = "[REDACTED]"
	}
	return slog.GroupValue(
		slog.String("secret_key_base", secret),
		slog.String("format", c.Format),
		slog.String("cookie_name", c.CookieName),
		slog.Bool("verify_purpose", c.VerifyPurpose),
		slog.String("digest", c.Digest),
		slog.Int("iterations", c.Iterations),
	)
}

func (c Config) options() ([]Option, error) {
	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	opts := make([]Option, 0, 4)
	opts = append(opts, WithFormat(format))

	if c.VerifyPurpose && c.CookieName != "" {
		opts = append(opts, WithPurpose(CookiePurpose(c.CookieName)))
	}
	if c.Digest != "" {
		opts = append(opts, WithDigest(c.Digest))
	}
	if c.Iterations != 0 {
		opts = append(opts, WithIterations(c.Iterations))
	}

	return opts, nil
}

// NewFromConfig builds a Verifier from cfg. Options in opts are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) (*Verifier, error) {
	configOpts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	return New([]byte(cfg.SecretKeyBase), append(configOpts, opts...)...)
}

// NewIssuerFromConfig builds an Issuer that writes what NewFromConfig(cfg) accepts.
func NewIssuerFromConfig(cfg Config, opts ...Option) (*Issuer, error) {
	configOpts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	return NewIssuer([]byte(cfg.SecretKeyBase), append(configOpts, opts...)...)
}
