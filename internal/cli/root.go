// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags and routes free text to search
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:   "duckie",
	Short: "Fuzzy-searchable store of shell commands",
	Long: `Duckie remembers shell commands by what they do and finds them again with fuzzy search.

Run it with no arguments for the interactive shell, or pass a query to search directly:
  duckie scan network ports`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func Execute() error {
	os.Args = withDefaultCommand(os.Args)
	return rootCmd.Execute()
}

// withDefaultCommand injects "search" when the first argument after any
// leading persistent flags is free text rather than a known subcommand.
func withDefaultCommand(args []string) []string {
	i := 1
	for i < len(args) && strings.HasPrefix(args[i], "-") {
		n := persistentFlagWidth(args[i])
		if n == 0 {
			return args
		}
		i += n
	}
	if i >= len(args) || args[i] == "" {
		return args
	}

	arg := args[i]
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultCompletionCmd()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == arg || cmd.HasAlias(arg) {
			return args
		}
	}

	out := append([]string{}, args[:i]...)
	out = append(out, "search")
	return append(out, args[i:]...)
}

// persistentFlagWidth reports how many arguments a leading persistent flag
// occupies, or 0 when arg is not one.
func persistentFlagWidth(arg string) int {
	name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	flag := rootCmd.PersistentFlags().Lookup(name)
	if flag == nil || !strings.HasPrefix(arg, "--") {
		return 0
	}
	if hasValue || flag.NoOptDefVal != "" {
		return 1
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the duckie database (overrides config)")
}
