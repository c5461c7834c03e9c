// ABOUTME: Delete command for removing a stored command by ID
// ABOUTME: Unknown IDs are reported as errors
package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored command",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %q", args[0])
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Delete(id); err != nil {
			return fmt.Errorf("failed to delete command %d: %w", id, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Command with ID %d deleted from the duckie database!", id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
