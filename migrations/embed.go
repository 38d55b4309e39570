// Package migrations embeds the SQL migration files for the activity log schema.
package migrations

import "embed"

// FS holds the embedded SQL migration files, consumed by the iofs migrate source.
//
//go:embed *.sql
var FS embed.FS
