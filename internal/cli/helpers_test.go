// ABOUTME: Shared helpers for CLI tests
// ABOUTME: Isolates config and database paths and captures command output
package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	color.NoColor = true
}

// setupCLI points every config layer at a temp dir and returns a fresh db path.
func setupCLI(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("DUCKIE_SEED_DEFAULTS", "false")
	t.Setenv("DUCKIE_HISTORY", "false")

	// Flag variables outlive a single Execute.
	dbPathFlag = ""
	addDescription = ""
	searchLimit = 0
	searchJSONOutput = false
	listLimit = 0
	listSince = ""
	listJSONOutput = false

	return filepath.Join(base, "duckie.db")
}

// runCLI executes the root command with args and stdin, returning combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetHelp(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetHelp(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
	}
	for _, c := range cmd.Commands() {
		resetHelp(c)
	}
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, "", args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}
