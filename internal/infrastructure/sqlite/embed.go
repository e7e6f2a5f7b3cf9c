package sqlite

import "embed"

// migrationFiles holds the embedded SQL migrations applied by NewDB.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS
