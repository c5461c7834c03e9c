// ABOUTME: Schema migrations for the commands table
// ABOUTME: Embeds SQL files and applies them with sql-migrate
package db

import (
	"database/sql"
	"embed"
	"fmt"

	sqlmigrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() *sqlmigrate.EmbedFileSystemMigrationSource {
	return &sqlmigrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// migrate brings the schema up to date. The first migration uses IF NOT EXISTS so
// databases created before migrations were tracked are upgraded in place.
func migrate(db *sql.DB) error {
	if _, err := sqlmigrate.Exec(db, "sqlite3", migrationSource(), sqlmigrate.Up); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
