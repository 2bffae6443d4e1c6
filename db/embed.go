// Package db embeds the SQL migrations shipped inside the server binary.
package db

import "embed"

// Migrations holds the schema migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
