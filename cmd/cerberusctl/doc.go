// Package main provides cerberusctl, the CLI for the Cerberus authorization
// gateway.
//
// Cerberus answers permission checks for a central web application: it decides
// whether a user may perform an operation on an element, and it grants the
// default operation set on newly created elements.
//
// # Quick Start
//
// The server is run via the cerberusctl CLI:
//
//	# Run database migrations
//	cerberusctl db migrate
//
//	# Start the server (runs migrations on startup unless --no-migrate)
//	cerberusctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string (overrides the CERBERUS_DB_* variables)
//   - CERBERUS_DB_HOST, CERBERUS_DB_USER, CERBERUS_DB_PASSWORD, CERBERUS_DB_NAME, CERBERUS_DB_SSLMODE
//   - CERBERUS_DB_POOL_SIZE: Connection pool size (default: 5)
//   - CERBERUS_DB_CONNECT_RETRIES, CERBERUS_DB_CONNECT_DELAY: Startup connection retry policy
//   - CERBERUS_CONFIG_PATH: Directory containing cerberus.yml
//   - CERBERUS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - BIND_ADDRESS, PORT: Server listen address (default: 0.0.0.0:8000)
package main
