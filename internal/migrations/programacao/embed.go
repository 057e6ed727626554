// Package programacao embeds the schema migrations for the schedule store.
package programacao

import "embed"

//go:embed *.sql
var Migrations embed.FS
