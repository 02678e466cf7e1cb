package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/railscookie/pkg/config"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	envFile    string
	secret     string
	format     string
	cookieName string
	noPurpose  bool
	digest     string
	logLevel   string
	logFormat  string

	cfg Config
	log *slog.Logger
}

// NewRootCommand builds the railscookie command tree bound to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	defaults := railscookie.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "railscookie",
		Short: "Inspect Rails session cookies",
		Long: "Verify, decode and issue the encrypted session cookies of a Rails application.\n" +
			"The secret is read from --secret or SECRET_KEY_BASE.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(ErrInvalidFlag, err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment (missing files are ignored)")
	flags.StringVar(&a.secret, "secret", "", "secret_key_base of the application (default $SECRET_KEY_BASE)")
	flags.StringVar(&a.format, "format", defaults.Format, "cookie format: aead-gcm or hmac-signed ($COOKIE_FORMAT)")
	flags.StringVar(&a.cookieName, "cookie-name", defaults.CookieName, "session cookie name, used for the purpose check ($SESSION_COOKIE_NAME)")
	flags.BoolVar(&a.noPurpose, "no-purpose", false, "skip the cookie purpose check")
	flags.StringVar(&a.digest, "digest", defaults.Digest, "HMAC digest of the hmac-signed format ($COOKIE_DIGEST)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error ($LOG_LEVEL, default warn or the $APP_ENV preset)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json ($LOG_FORMAT, default text or the $APP_ENV preset)")

	cmd.AddCommand(a.decodeCommand(), a.issueCommand(), a.serveCommand())
	return cmd
}

// Execute runs the command line and returns the process exit code.
// Failures are reported on stderr as "<category>: <message>".
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", category(err), message(err))
		return exitCode(err)
	}
	return ExitOK
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg, a.envFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("secret") {
		a.cfg.Cookie.SecretKeyBase = a.secret
	}
	if flags.Changed("format") {
		a.cfg.Cookie.Format = a.format
	}
	if flags.Changed("cookie-name") {
		a.cfg.Cookie.CookieName = a.cookieName
	}
	if flags.Changed("no-purpose") {
		a.cfg.Cookie.VerifyPurpose = !a.noPurpose
	}
	if flags.Changed("digest") {
		a.cfg.Cookie.Digest = a.digest
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		a.cfg.LogFormat = a.logFormat
	}

	log, err := newLogger(a.cfg, a.stderr)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("configuration loaded", slog.Any("cookie_config", a.cfg.Cookie))

	return nil
}

func (a *app) cookieConfig() (railscookie.Config, error) {
	if a.cfg.Cookie.SecretKeyBase == "" {
		return railscookie.Config{}, fmt.Errorf("%w: pass --secret or set SECRET_KEY_BASE", ErrMissingSecret)
	}
	return a.cfg.Cookie, nil
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return errors.Join(ErrInvalidInput, err)
		}
		return nil
	}
}
