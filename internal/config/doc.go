// Package config defines the application configuration structure and the
// logic for loading it from environment variables and optional .env files.
package config
