// Package config loads client configuration.
//
// Values come from a YAML file, a .env file and the environment, in that
// order of increasing precedence. Environment variables carry the GITHUB2_
// prefix and map onto nested keys by underscores:
//
//	GITHUB2_GITHUB_ACCESS_TOKEN=... -> github.access_token
//	GITHUB2_LOGGING_LEVEL=debug     -> logging.level
//
// # Usage
//
//	cfg, err := config.Load("github2")
package config
