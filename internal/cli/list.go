// ABOUTME: List command for displaying stored commands
// ABOUTME: Supports table and JSON output and a --since filter
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/shell"
	"github.com/spf13/cobra"
)

var (
	listLimit      int
	listSince      string
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored commands",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		var records []db.Record
		if listSince != "" {
			since, err := dateparse.ParseAny(listSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			records, err = a.store.ListSince(since)
			if err != nil {
				return fmt.Errorf("failed to list commands: %w", err)
			}
		} else {
			records, err = a.store.ListAll()
			if err != nil {
				return fmt.Errorf("failed to list commands: %w", err)
			}
		}

		// Keep the newest entries when limited.
		if listLimit > 0 && len(records) > listLimit {
			records = records[len(records)-listLimit:]
		}

		out := cmd.OutOrStdout()

		if listJSONOutput {
			if records == nil {
				records = []db.Record{}
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(records) == 0 {
			fmt.Fprintln(out, color.YellowString("The duckie pond is empty. Try 'duckie add' to contribute!"))
			return nil
		}
		fmt.Fprintln(out, shell.Table(records))

		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Number of commands to show (0 for all)")
	listCmd.Flags().StringVar(&listSince, "since", "", "Only commands added after this date (natural language or ISO)")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
