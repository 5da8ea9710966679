// Package config loads runtime configuration for the project manager CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. The API_URL and API_TIMEOUT environment variables.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8000",
//	  "request_timeout": "10s"
//	}
package config
