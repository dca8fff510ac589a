// Package migrations embeds the SQL files that define the relational schema:
// tables, the composite screening key, foreign keys and their delete rules.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
