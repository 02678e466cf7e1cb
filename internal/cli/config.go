package cli

import (
	"github.com/dmitrymomot/railscookie/pkg/httpserver"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

// Config is everything the commands read from the environment.
// Flags that were set explicitly take precedence.
type Config struct {
	Cookie    railscookie.Config
	HTTP      httpserver.Config
	Env       string `env:"APP_ENV"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}
