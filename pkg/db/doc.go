// Package db provides database connection utilities for Cerberus.
//
// This package handles PostgreSQL database connections using GORM. The
// connection pool underneath is database/sql's; its size is bounded by the
// configured pool size, so requests beyond the bound block on acquire rather
// than failing.
//
// # Connection
//
//	cfg, _ := config.Load()
//	database, err := db.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err) // the server is meaningless without its store
//	}
//
// Startup retries are bounded by the configured retry count and delay. At
// request time transient store errors are surfaced, never retried, to avoid
// duplicate writes in the grant workflow.
package db
