// ABOUTME: Sentinel errors returned by the store
// ABOUTME: Maps SQLite constraint failures onto domain errors
package db

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicateCommand is returned when the command text is already stored.
	ErrDuplicateCommand = errors.New("command already exists")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("command not found")

	// ErrMissingField is returned when intent or command is blank.
	ErrMissingField = errors.New("missing required field")
)

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Extended result codes may be disabled on some connections
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "UNIQUE")
}
