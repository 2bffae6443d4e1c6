// Package config provides configuration management for Cerberus.
//
// This package handles loading and validating server configuration from
// environment variables and an optional YAML configuration file.
//
// # Configuration Sources
//
// Values are resolved in order of precedence:
//
//   - Environment variables (highest)
//   - cerberus.yml in CERBERUS_CONFIG_PATH
//   - Built-in defaults
//
// # Key Configuration Options
//
//   - DATABASE_URL: full database connection URL
//   - CERBERUS_DB_HOST / _USER / _PASSWORD / _NAME: discrete connection fields
//   - CERBERUS_DB_POOL_SIZE: connection pool bound (default 5)
//   - CERBERUS_DB_CONNECT_RETRIES / _DELAY: startup retry policy
//   - BIND_ADDRESS, PORT: server listen address
//   - CERBERUS_LOG_LEVEL: logging verbosity
package config
