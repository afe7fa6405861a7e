// Package migrations embeds the SQL schema for each supported database.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed oracle/*.sql
var Oracle embed.FS
