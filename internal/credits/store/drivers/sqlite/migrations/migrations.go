// Package migrations embeds the SQL migration files so they compile into
// the binary and golang-migrate can apply them from an iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
