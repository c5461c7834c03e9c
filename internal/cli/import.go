// ABOUTME: Import command for loading commands from a YAML bundle
// ABOUTME: Existing commands are skipped; other failures are reported together
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import commands from a YAML file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		result, err := a.store.Import(in)
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Imported %d commands (%d already in the pond)", result.Added, result.Skipped))
		if err != nil {
			return fmt.Errorf("import incomplete: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
