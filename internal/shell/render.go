// ABOUTME: Terminal rendering for shell results and messages
// ABOUTME: Colored labels, boxed commands and wrapped descriptions
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/match"
	"github.com/muesli/reflow/wordwrap"
)

var (
	labelColor   = color.New(color.FgCyan)
	headingColor = color.New(color.FgMagenta)
	keyColor     = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgRed)
	infoColor    = color.New(color.FgYellow)
	promptColor  = color.New(color.FgCyan, color.Bold)

	commandBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 1)
)

var helpLines = []struct {
	name string
	text string
}{
	{"/exit", "Quit the duckie shell"},
	{"/add", "Add new command (format: " + addUsage + ")"},
	{"/delete", "Delete command by ID (format: " + deleteUsage + ")"},
	{"/list", "List all stored commands"},
	{"/help", "Show this help message"},
}

const detailsLabel = "Details: "

type renderer struct {
	w     io.Writer
	width int
}

func (r renderer) banner() {
	fmt.Fprintln(r.w, okColor.Sprint("🦆 duckie is ready. Type /help for commands, /exit to quit."))
}

func (r renderer) prompt() {
	fmt.Fprint(r.w, promptColor.Sprint("\n🦆> "))
}

func (r renderer) goodbye() {
	fmt.Fprintln(r.w, warnColor.Sprint("\nQuacking off... See you soon, hacker duck!"))
}

func (r renderer) help() {
	fmt.Fprintln(r.w, headingColor.Sprint("\n[+] Available Commands:"))
	for _, h := range helpLines {
		fmt.Fprintf(r.w, "  %s - %s\n", keyColor.Sprint(h.name), h.text)
	}
	fmt.Fprintln(r.w)
}

func (r renderer) success(format string, args ...any) {
	fmt.Fprintln(r.w, okColor.Sprintf("✓ "+format, args...))
}

func (r renderer) warn(format string, args ...any) {
	fmt.Fprintln(r.w, warnColor.Sprintf("⚠ "+format, args...))
}

func (r renderer) malformed(m Malformed) {
	r.warn("%s", m.Reason)
	if m.Usage != "" {
		fmt.Fprintln(r.w, infoColor.Sprint("Usage: "+m.Usage))
	}
}

func (r renderer) noMatch() {
	fmt.Fprintln(r.w, warnColor.Sprint("\nNo matching commands found in the duckie pond. Try /add to contribute!"))
}

func (r renderer) match(res match.Result) {
	rec := res.Record

	fmt.Fprintln(r.w, okColor.Sprintf("\n🦆 Best Duckie Match (%.0f%% confidence):", res.Confidence*100))
	fmt.Fprintf(r.w, "%s %d\n", labelColor.Sprint("ID:"), rec.ID)
	fmt.Fprintf(r.w, "%s %s\n", labelColor.Sprint("Scenario:"), rec.Intent)
	fmt.Fprintln(r.w, labelColor.Sprint("Command:"))
	fmt.Fprintln(r.w, indent(commandBox.Render(formatCommand(rec.Command)), "    "))

	if rec.Description != "" {
		fmt.Fprintf(r.w, "%s%s\n", labelColor.Sprint(detailsLabel), r.wrap(rec.Description, len(detailsLabel)))
	}
}

func (r renderer) list(records []db.Record) {
	if len(records) == 0 {
		fmt.Fprintln(r.w, infoColor.Sprint("The duckie pond is empty. Try /add to contribute!"))
		return
	}
	fmt.Fprintln(r.w, Table(records))
}

// wrap word-wraps text to the renderer width, indenting continuation lines by hang.
func (r renderer) wrap(text string, hang int) string {
	limit := r.width - hang
	if limit < 20 {
		limit = 20
	}
	lines := strings.Split(wordwrap.String(text, limit), "\n")
	return strings.Join(lines, "\n"+strings.Repeat(" ", hang))
}

// PrintMatch writes a search result the way the shell shows it.
func PrintMatch(w io.Writer, res match.Result, width int) {
	if width <= 0 {
		width = defaultWidth
	}
	renderer{w: w, width: width}.match(res)
}

// Table renders records as a bordered table. Multi-line commands are flattened.
func Table(records []db.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Intent", "Command", "Description")
	for _, rec := range records {
		t.Row(
			fmt.Sprintf("%d", rec.ID),
			rec.Intent,
			strings.ReplaceAll(rec.Command, "\n", " ⏎ "),
			rec.Description,
		)
	}
	return t.String()
}

// formatCommand re-indents continuation lines of a multi-line command.
func formatCommand(command string) string {
	lines := strings.Split(command, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = "    " + strings.TrimLeft(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
