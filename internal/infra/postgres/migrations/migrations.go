// Package migrations holds the schema for questionnaires and leads.
package migrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()
