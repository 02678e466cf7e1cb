package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

func (a *app) issueCommand() *cobra.Command {
	var expiresIn time.Duration

	cmd := &cobra.Command{
		Use:   "issue [json|-]",
		Short: "Issue a session cookie for a JSON object (test fixtures only)",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, a.stdin)
			if err != nil {
				return err
			}
			values, err := parseObject(input)
			if err != nil {
				return err
			}

			cfg, err := a.cookieConfig()
			if err != nil {
				return err
			}
			iss, err := railscookie.NewIssuerFromConfig(cfg, railscookie.WithExpiresIn(expiresIn))
			if err != nil {
				return err
			}

			token, err := iss.Issue(values)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, token)
			return err
		},
	}
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "set the envelope expiry this far in the future (0 means never)")

	return cmd
}

// parseObject decodes a single JSON object, keeping numbers as json.Number.
func parseObject(input string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, errors.Join(ErrInvalidInput, fmt.Errorf("session must be a JSON object: %w", err))
	}
	if values == nil {
		return nil, fmt.Errorf("%w: session must be a JSON object, got null", ErrInvalidInput)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidInput)
	}

	return values, nil
}
