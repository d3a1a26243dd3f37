package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"scanvator/src/types"
)

const (
	EnvLogLevel     = "SCANVATOR_LOG_LEVEL"
	EnvLogFile      = "SCANVATOR_LOG_FILE"
	EnvTickInterval = "SCANVATOR_TICK_INTERVAL"
)

// Env holds driver settings. None of them affect the core decisions.
type Env struct {
	LogLevel     string
	LogFile      string
	TickInterval time.Duration
}

// LoadEnv reads driver settings from a .env file, then lets process environment
// variables override them. A missing file is not an error.
func LoadEnv(path string) (Env, error) {
	env := Env{LogLevel: "info"}

	values := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return env, fmt.Errorf("%w: reading %s: %v", types.ErrInvalidConfig, path, err)
		default:
			values = read
		}
	}
	for _, key := range []string{EnvLogLevel, EnvLogFile, EnvTickInterval} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	if v := values[EnvLogLevel]; v != "" {
		env.LogLevel = v
	}
	env.LogFile = values[EnvLogFile]
	if v := values[EnvTickInterval]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return env, fmt.Errorf("%w: %s=%q: %v", types.ErrInvalidConfig, EnvTickInterval, v, err)
		}
		env.TickInterval = d
	}
	return env, nil
}
