// Package migrations embeds the SQL schema migrations for the pgx store.
package migrations

import "embed"

// FS holds the migration files in golang-migrate naming format.
//
//go:embed *.sql
var FS embed.FS
