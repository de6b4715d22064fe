// Package migrations holds the goose SQL migrations for the shop database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
