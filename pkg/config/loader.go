package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
	// ErrReadingEnvFile is returned when an explicit .env file cannot be read.
	ErrReadingEnvFile = errors.New("failed to read env file")
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into v using `env` struct tags.
// The .env file in the working directory is loaded into the process
// environment on first use; a missing file is not an error.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadFiles parses v from the given .env files layered under the process
// environment. The process environment wins on conflicts and is never
// modified. Later files override earlier ones.
func LoadFiles[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	vars := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", f, err))
		}
		for k, val := range m {
			vars[k] = val
		}
	}
	for k, val := range env.ToMap(os.Environ()) {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
