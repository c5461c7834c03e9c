// ABOUTME: Command record creation, deletion and listing
// ABOUTME: Records are immutable once stored; ids come from AUTOINCREMENT
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Record is a stored intent/command/description triple.
type Record struct {
	ID          int64     `json:"id"`
	Intent      string    `json:"intent"`
	Command     string    `json:"command"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

const selectRecordFields = `id, intent, command, COALESCE(description, ''), created_at`

// Insert stores a new record and returns it with its assigned id.
func (s *Store) Insert(intent, command, description string) (Record, error) {
	rec := Record{
		Intent:      strings.TrimSpace(intent),
		Command:     strings.TrimSpace(command),
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if rec.Intent == "" {
		return Record{}, fmt.Errorf("intent: %w", ErrMissingField)
	}
	if rec.Command == "" {
		return Record{}, fmt.Errorf("command: %w", ErrMissingField)
	}

	result, err := s.db.Exec(
		"INSERT INTO commands (intent, command, description, created_at) VALUES (?, ?, ?, ?)",
		rec.Intent, rec.Command, rec.Description, rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Record{}, fmt.Errorf("%q: %w", rec.Command, ErrDuplicateCommand)
		}
		return Record{}, fmt.Errorf("insert command: %w", err)
	}

	rec.ID, err = result.LastInsertId()
	if err != nil {
		return Record{}, fmt.Errorf("insert command: %w", err)
	}
	return rec, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM commands WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete command: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete command: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

// Get returns a single record by id.
func (s *Store) Get(id int64) (Record, error) {
	row := s.db.QueryRow("SELECT "+selectRecordFields+" FROM commands WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get command: %w", err)
	}
	return rec, nil
}

// ListAll returns every stored record in insertion order.
func (s *Store) ListAll() ([]Record, error) {
	rows, err := s.db.Query("SELECT " + selectRecordFields + " FROM commands ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListSince returns records created at or after since.
func (s *Store) ListSince(since time.Time) ([]Record, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(records, func(r Record, _ int) bool {
		return !r.CreatedAt.Before(since)
	}), nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM commands").Scan(&n); err != nil {
		return 0, fmt.Errorf("count commands: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var createdAt string
	if err := row.Scan(&rec.ID, &rec.Intent, &rec.Command, &rec.Description, &createdAt); err != nil {
		return Record{}, err
	}
	if createdAt != "" {
		// Rows written by other tools may carry a different format; keep the zero time then
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
	}
	return rec, nil
}
