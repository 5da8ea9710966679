// Package migrations embeds the goose SQL migrations that provision the
// users, projects and tasks tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
