// ABOUTME: Shell command running the interactive duckie prompt
// ABOUTME: Also the default when duckie is run without arguments
package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/harper/duckie/internal/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"sh"},
	Short:   "Start the interactive shell",
	Args:    cobra.NoArgs,
	RunE:    runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	opts := []shell.Option{shell.WithLogger(a.logger)}
	if h := a.history(); h != nil {
		opts = append(opts, shell.WithHistory(h))
	}
	sh := shell.New(a.store, a.matcher, opts...)

	out := cmd.OutOrStdout()

	// Ctrl-C prints a hint; only /exit or end of input leaves the shell.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	done := make(chan struct{})
	defer func() {
		signal.Stop(interrupts)
		close(done)
	}()
	go func() {
		for {
			select {
			case <-interrupts:
				fmt.Fprintln(out, color.YellowString(shell.InterruptHint))
			case <-done:
				return
			}
		}
	}()

	a.logger.Debug("shell started", "session", sh.Session())
	return sh.Run(cmd.InOrStdin(), out)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
