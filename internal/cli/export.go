// ABOUTME: Export command for writing all commands as a YAML bundle
// ABOUTME: Writes to a file when given one, otherwise stdout
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Export commands to YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if len(args) == 0 {
			return a.store.Export(cmd.OutOrStdout())
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", args[0], err)
		}
		if err := a.store.Export(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}

		a.logger.Info("exported commands", "path", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
