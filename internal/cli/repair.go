// ABOUTME: Repair command for local database maintenance
// ABOUTME: Checkpoints the WAL, runs an integrity check and vacuums
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Run SQLite maintenance on the duckie database:
- WAL checkpoint
- Integrity check
- VACUUM (only when the integrity check passes)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Repairing duckie database at %s...\n", a.store.Path())

		result, err := a.store.Repair()
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		// Display repair results with checkmarks
		if result.WalCheckpointed {
			fmt.Fprintln(out, color.GreenString("  ✓ WAL checkpointed"))
		} else {
			fmt.Fprintln(out, color.YellowString("  ! WAL checkpoint incomplete (database busy)"))
		}
		if result.IntegrityOK {
			fmt.Fprintln(out, color.GreenString("  ✓ Integrity check passed"))
		} else {
			fmt.Fprintln(out, color.RedString("  ✗ Integrity check failed"))
			for _, p := range result.Problems {
				fmt.Fprintf(out, "      %s\n", p)
			}
		}
		if result.Vacuumed {
			fmt.Fprintln(out, color.GreenString("  ✓ Database vacuumed"))
		}

		fmt.Fprintln(out)
		if result.IntegrityOK {
			fmt.Fprintln(out, color.GreenString("Repair complete."))
		} else {
			fmt.Fprintln(out, color.RedString("Repair failed. Export what you can with 'duckie export' and start a fresh database."))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
