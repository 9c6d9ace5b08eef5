package main

import (
	"github.com/dmitrymomot/geoquery/pkg/httpserver"
	"github.com/dmitrymomot/geoquery/pkg/ratelimiter"
	"github.com/dmitrymomot/geoquery/pkg/redis"
)

type appConfig struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	AppName     string `env:"APP_NAME" envDefault:"geoquery"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	ErrorFormat string `env:"ERROR_FORMAT"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
}
