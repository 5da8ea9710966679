package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/projectmanager/internal/flagx"
	"github.com/dmitrijs2005/projectmanager/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDSN      string         `json:"database_dsn"`
	Storage          string         `json:"storage"`
	LogLevel         string         `json:"log_level"`
	LogBackend       string         `json:"log_backend"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag. Without the flag nothing is loaded. Keys absent from
// the file leave the current values untouched.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.Storage, c.Storage)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogBackend, c.LogBackend)
	overlay(&config.RequestTimeout, c.RequestTimeout.Duration)
	overlay(&config.ShutdownTimeout, c.ShutdownTimeout.Duration)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
