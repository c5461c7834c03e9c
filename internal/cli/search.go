// ABOUTME: Search command for finding stored commands by intent
// ABOUTME: Prints the best match in full and any runners-up briefly
package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harper/duckie/internal/logging"
	"github.com/harper/duckie/internal/match"
	"github.com/harper/duckie/internal/shell"
	"github.com/spf13/cobra"
)

var (
	searchLimit      int
	searchJSONOutput bool
)

var searchCmd = &cobra.Command{
	Use:     "search [query...]",
	Aliases: []string{"s", "find"},
	Short:   "Search stored commands",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		query := strings.Join(args, " ")

		records, err := a.store.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list commands: %w", err)
		}

		limit := searchLimit
		if limit <= 0 {
			limit = a.cfg.MaxResults
		}
		results := a.matcher.Rank(query, records, limit)
		a.logger.Debug("search", "query", query, "records", len(records), "matches", len(results))

		if h := a.history(); h != nil {
			if err := h.Write(historyEntry(query, results)); err != nil {
				a.logger.Warn("failed to write history", "err", err)
			}
		}

		out := cmd.OutOrStdout()

		// Output
		if searchJSONOutput {
			if results == nil {
				results = []match.Result{}
			}
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(results) == 0 {
			fmt.Fprintln(out, color.RedString("No matching commands found in the duckie pond. Try 'duckie add' to contribute!"))
			return nil
		}

		shell.PrintMatch(out, results[0], 0)
		if len(results) > 1 {
			fmt.Fprintln(out, color.MagentaString("\nAlso close:"))
			for _, r := range results[1:] {
				fmt.Fprintf(out, "  #%d %s (%.0f%%)\n      %s\n", r.Record.ID, r.Record.Intent, r.Confidence*100, r.Record.Command)
			}
		}

		return nil
	},
}

func historyEntry(query string, results []match.Result) logging.HistoryEntry {
	entry := logging.HistoryEntry{
		Timestamp: time.Now(),
		Query:     query,
	}
	if len(results) > 0 {
		best := results[0]
		entry.Matched = true
		entry.RecordID = best.Record.ID
		entry.Intent = best.Record.Intent
		entry.Command = best.Record.Command
		entry.Confidence = best.Confidence
	}
	return entry
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results (default from config)")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}
