// ABOUTME: Add command for storing a new intent and shell command
// ABOUTME: Duplicate commands are rejected by the store
package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/duckie/internal/db"
	"github.com/spf13/cobra"
)

var addDescription string

var addCmd = &cobra.Command{
	Use:     "add <intent> <command>",
	Aliases: []string{"a"},
	Short:   "Store a command",
	Example: `  duckie add "list files with sizes" "ls -lah" -d "human readable sizes"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		rec, err := a.store.Insert(args[0], args[1], addDescription)
		if errors.Is(err, db.ErrDuplicateCommand) {
			return fmt.Errorf("command already exists in the duckie pond: %w", err)
		}
		if err != nil {
			return fmt.Errorf("failed to add command: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Command added to the duckie database! (ID: %d)", rec.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Optional notes about the command")
	rootCmd.AddCommand(addCmd)
}
