// Package migrations embeds the goose SQL migrations that define the
// storage contract of the microblog core.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
