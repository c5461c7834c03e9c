// ABOUTME: Unit tests for the add command
// ABOUTME: Tests argument handling, descriptions and duplicates
package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/harper/duckie/internal/db"
)

func TestAddCommand(t *testing.T) {
	t.Run("stores intent and command", func(t *testing.T) {
		dbPath := setupCLI(t)

		out := mustRun(t, "--db", dbPath, "add", "list files", "ls -la")
		if !strings.Contains(out, "Command added to the duckie database! (ID: 1)") {
			t.Errorf("expected confirmation, got: %s", out)
		}
	})

	t.Run("accepts description flag", func(t *testing.T) {
		dbPath := setupCLI(t)

		mustRun(t, "--db", dbPath, "add", "disk usage", "du -sh .", "-d", "size of current dir")

		store, err := db.Open(dbPath)
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}
		defer func() { _ = store.Close() }()

		rec, err := store.Get(1)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if rec.Description != "size of current dir" {
			t.Errorf("got description %q", rec.Description)
		}
	})

	t.Run("rejects duplicate command", func(t *testing.T) {
		dbPath := setupCLI(t)

		mustRun(t, "--db", dbPath, "add", "list files", "ls -la")
		_, err := runCLI(t, "", "--db", dbPath, "add", "show files", "ls -la")
		if !errors.Is(err, db.ErrDuplicateCommand) {
			t.Errorf("expected duplicate error, got: %v", err)
		}
	})

	t.Run("rejects missing command", func(t *testing.T) {
		setupCLI(t)

		_, err := runCLI(t, "", "add", "only intent")
		if err == nil {
			t.Fatal("expected error when command missing, got nil")
		}
		if !strings.Contains(err.Error(), "2 arg(s)") {
			t.Errorf("expected error message about exact args, got: %v", err)
		}
	})

	t.Run("rejects blank intent", func(t *testing.T) {
		dbPath := setupCLI(t)

		_, err := runCLI(t, "", "--db", dbPath, "add", "  ", "pwd")
		if !errors.Is(err, db.ErrMissingField) {
			t.Errorf("expected missing field error, got: %v", err)
		}
	})
}
