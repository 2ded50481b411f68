package main

import "time"

type Config struct {
	Host          string        `env:"HOST,default=0.0.0.0"`
	Port          int           `env:"PORT,default=3000"`
	LogLevel      string        `env:"LOG_LEVEL,default=info"`
	GinMode       string        `env:"GIN_MODE,default=release"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=24h"`
	LimitComments *int          `env:"LIMIT_COMMENTS"`
	DebugPort     *int          `env:"DEBUG_PORT"`
}
