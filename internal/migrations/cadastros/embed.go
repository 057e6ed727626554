// Package cadastros embeds the schema migrations for the visitor store.
// The visitor database is deliberately independent from the schedule
// database; the two never share a transaction.
package cadastros

import "embed"

//go:embed *.sql
var Migrations embed.FS
