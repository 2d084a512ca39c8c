// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of the migration files inside Migrations.
const MigrationsDir = "migrations"
