// ABOUTME: Unit tests for the root command
// ABOUTME: Tests Execute, default command injection and the shell default
package cli

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	t.Run("runs without error", func(t *testing.T) {
		// Capture output
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stdout)

		// Set help flag to avoid interactive behavior
		rootCmd.SetArgs([]string{"--help"})

		err := Execute()

		if err != nil {
			t.Fatalf("expected Execute() to run without error, got: %v", err)
		}
		if !strings.Contains(stdout.String(), "fuzzy search") {
			t.Errorf("expected help text, got: %s", stdout.String())
		}
	})
}

func TestWithDefaultCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", []string{"duckie"}, []string{"duckie"}},
		{"free text", []string{"duckie", "scan", "ports"}, []string{"duckie", "search", "scan", "ports"}},
		{"known command", []string{"duckie", "add", "a", "b"}, []string{"duckie", "add", "a", "b"}},
		{"alias", []string{"duckie", "ls"}, []string{"duckie", "ls"}},
		{"flag first", []string{"duckie", "--db", "x.db"}, []string{"duckie", "--db", "x.db"}},
		{"help command", []string{"duckie", "help"}, []string{"duckie", "help"}},
		{"db flag before query", []string{"duckie", "--db", "x.db", "scan", "ports"}, []string{"duckie", "--db", "x.db", "search", "scan", "ports"}},
		{"db flag with equals", []string{"duckie", "--db=x.db", "scan"}, []string{"duckie", "--db=x.db", "search", "scan"}},
		{"db flag before command", []string{"duckie", "--db", "x.db", "list"}, []string{"duckie", "--db", "x.db", "list"}},
		{"unknown flag first", []string{"duckie", "--verbose", "scan"}, []string{"duckie", "--verbose", "scan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withDefaultCommand(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecuteSearchesAfterDBFlag(t *testing.T) {
	dbPath := setupCLI(t)
	mustRun(t, "--db", dbPath, "add", "simple ssh command", "ssh username@host")

	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
		rootCmd.SetArgs([]string{})
	})
	os.Args = []string{"duckie", "--db", dbPath, "simple", "ssh", "command"}

	resetHelp(rootCmd)
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs(nil)

	if err := Execute(); err != nil {
		t.Fatalf("expected search to run, got: %v", err)
	}
	if !strings.Contains(stdout.String(), "Scenario: simple ssh command") {
		t.Errorf("expected search result, got: %s", stdout.String())
	}
}

func TestRootCommand(t *testing.T) {
	t.Run("runs the shell when no args provided", func(t *testing.T) {
		dbPath := setupCLI(t)

		out, err := runCLI(t, "/add list files | ls -la\n/list\n/exit\n", "--db", dbPath)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !strings.Contains(out, "duckie is ready") {
			t.Errorf("expected banner, got: %s", out)
		}
		if !strings.Contains(out, "(ID: 1)") {
			t.Errorf("expected add confirmation, got: %s", out)
		}
		if !strings.Contains(out, "Quacking off") {
			t.Errorf("expected goodbye, got: %s", out)
		}
	})

	t.Run("has correct metadata", func(t *testing.T) {
		if rootCmd.Use != "duckie" {
			t.Errorf("expected Use to be 'duckie', got: %s", rootCmd.Use)
		}
		if !strings.Contains(rootCmd.Long, "fuzzy search") {
			t.Errorf("expected Long description to mention fuzzy search, got: %s", rootCmd.Long)
		}
	})

	t.Run("has subcommands registered", func(t *testing.T) {
		want := []string{"shell", "search", "add", "delete", "list", "import", "export", "repair", "mcp"}
		for _, name := range want {
			found := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected root command to have %q subcommand registered", name)
			}
		}
	})

	t.Run("seeds defaults on first use", func(t *testing.T) {
		dbPath := setupCLI(t)
		t.Setenv("DUCKIE_SEED_DEFAULTS", "true")

		out := mustRun(t, "--db", dbPath, "list")
		if !strings.Contains(out, "ssh username@host -i id_rsa") {
			t.Errorf("expected seeded defaults, got: %s", out)
		}
	})
}
