// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load reads the default .env once per process, then parses the
//     environment into any struct with `env` / `envDefault` tags.
//   - LoadFiles layers explicit .env files under the process environment
//     without touching os.Environ.
//   - MustLoad panics on failure, for configuration the process cannot
//     start without.
//
// # Usage
//
//	type Config struct {
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parse failures are wrapped with ErrParsingConfig, so callers can test for
// them with errors.Is.
package config
