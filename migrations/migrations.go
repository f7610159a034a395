// Package migrations embeds the goose SQL migrations for the points schema.
package migrations

import "embed"

// FS holds every *.sql migration, applied in version order by pkg/migrator.
//
//go:embed *.sql
var FS embed.FS
