package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables.
//
// A dotenv file is loaded first: the one named by -e/-envfile, or ".env" in
// the working directory when present. Variables already set in the process
// environment win over the file.
//
// Recognised variables:
//
//	HTTP_ADDRESS      bind address; PORT=n is accepted as ":n" when HTTP_ADDRESS is unset
//	DATABASE_DSN      PostgreSQL DSN
//	STORAGE           postgres | memory
//	LOG_LEVEL         debug | info | warn | error
//	LOG_BACKEND       slog | zerolog
//	REQUEST_TIMEOUT   duration ("5s") or whole seconds
//	SHUTDOWN_TIMEOUT  duration ("10s") or whole seconds
//
// A missing explicit env file or a malformed duration panics.
func parseEnv(config *Config, args []string) {
	if path := flagx.EnvFileFlag(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	setString(&config.EndpointAddrHTTP, "HTTP_ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.Storage, "STORAGE")
	setString(&config.LogLevel, "LOG_LEVEL")
	setString(&config.LogBackend, "LOG_BACKEND")
	setDuration(&config.RequestTimeout, "REQUEST_TIMEOUT")
	setDuration(&config.ShutdownTimeout, "SHUTDOWN_TIMEOUT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := parseSeconds(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}

// parseSeconds reads a duration string, falling back to whole seconds.
func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
