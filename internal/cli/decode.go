package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/railscookie/pkg/logger"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

func (a *app) decodeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode [token|-]",
		Short: "Verify a session cookie and print its contents",
		Long: "Verify a session cookie and print the session mapping.\n" +
			"The token is read from stdin when omitted or \"-\". A leading \"<cookie-name>=\" is stripped.",
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := parseOutput(output)
			if err != nil {
				return err
			}

			token, err := readInput(args, a.stdin)
			if err != nil {
				return err
			}
			token = strings.TrimPrefix(token, a.cfg.Cookie.CookieName+"=")
			if token == "" {
				return fmt.Errorf("%w: empty token", ErrInvalidInput)
			}

			cfg, err := a.cookieConfig()
			if err != nil {
				return err
			}
			v, err := railscookie.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			sess, err := v.Verify(token)
			if err != nil {
				a.log.Debug("cookie rejected", logger.TokenFormat(v.Format()), logger.ErrorCategory(err))
				return err
			}

			return write(a.stdout, out, sess)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(outputJSON), "output format: json or yaml")

	return cmd
}
