// Package config loads application configuration from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment without overriding
//     variables that are already set. Missing files are skipped.
//   - Load optionally loads .env files, then parses the environment into any struct using
//     `env` and `envDefault` field tags.
//
// # Usage
//
//	var cfg railscookie.Config
//	if err := config.Load(&cfg, ".env"); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap ErrNilPointer, ErrLoadingEnvFile or ErrParsingConfig; match them with errors.Is.
package config
