// ABOUTME: Tests for the interactive shell loop
// ABOUTME: Drives sessions against a real store in a temp directory
package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/logging"
	"github.com/harper/duckie/internal/match"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type recordingHistory struct {
	entries []logging.HistoryEntry
}

func (h *recordingHistory) Write(entry logging.HistoryEntry) error {
	h.entries = append(h.entries, entry)
	return nil
}

func newTestShell(t *testing.T, opts ...Option) (*Shell, *db.Store) {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "duckie.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, match.New(), opts...), store
}

func run(t *testing.T, sh *Shell, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, sh.Run(in, &out))
	return out.String()
}

func TestRunSession(t *testing.T) {
	sh, store := newTestShell(t)

	out := run(t, sh,
		"/add list files | ls -la | show hidden files too",
		"",
		"list files",
		"/exit",
		"this line is never read",
	)

	assert.Contains(t, out, "duckie is ready")
	assert.Contains(t, out, "Command added to the duckie database! (ID: 1)")
	assert.Contains(t, out, "Best Duckie Match (100% confidence)")
	assert.Contains(t, out, "Scenario: list files")
	assert.Contains(t, out, "ls -la")
	assert.Contains(t, out, "Details: show hidden files too")
	assert.Contains(t, out, "Quacking off")

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunEndOfInput(t *testing.T) {
	sh, _ := newTestShell(t)

	var out bytes.Buffer
	require.NoError(t, sh.Run(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Quacking off")
}

func TestRunSurvivesLongLines(t *testing.T) {
	t.Run("line longer than a scanner token", func(t *testing.T) {
		sh, store := newTestShell(t)

		out := run(t, sh,
			strings.Repeat("a", 70*1024),
			"/add list files | ls",
			"/exit",
		)

		assert.Contains(t, out, "(ID: 1)")
		n, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("line over the limit is skipped", func(t *testing.T) {
		sh, store := newTestShell(t)

		out := run(t, sh,
			"/add "+strings.Repeat("x", MaxLineBytes)+" | ls",
			"/add list files | ls",
			"/exit",
		)

		assert.Contains(t, out, "Input too long")
		assert.Contains(t, out, "Quacking off")
		records, err := store.ListAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "list files", records[0].Intent)
	})
}

func TestRunFinalLineWithoutNewline(t *testing.T) {
	sh, store := newTestShell(t)

	var out bytes.Buffer
	require.NoError(t, sh.Run(strings.NewReader("/add list files | ls"), &out))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "Quacking off")
}

func TestExecuteAdd(t *testing.T) {
	sh, _ := newTestShell(t)
	var out bytes.Buffer

	assert.False(t, sh.Execute(Add{Intent: "list files", Command: "ls -la"}, &out))
	assert.Contains(t, out.String(), "(ID: 1)")

	out.Reset()
	sh.Execute(Add{Intent: "another intent", Command: "ls -la"}, &out)
	assert.Contains(t, out.String(), "Command already exists in the duckie pond!")

	out.Reset()
	sh.Execute(Add{Intent: "   ", Command: "pwd"}, &out)
	assert.Contains(t, out.String(), "Usage: "+addUsage)
}

func TestExecuteDelete(t *testing.T) {
	sh, store := newTestShell(t)
	_, err := store.Insert("list files", "ls -la", "")
	require.NoError(t, err)

	var out bytes.Buffer
	sh.Execute(Delete{ID: 1}, &out)
	assert.Contains(t, out.String(), "Command with ID 1 deleted from the duckie database!")

	out.Reset()
	sh.Execute(Delete{ID: 1}, &out)
	assert.Contains(t, out.String(), "No command found with ID 1 in the duckie pond!")
}

func TestExecuteList(t *testing.T) {
	sh, store := newTestShell(t)
	var out bytes.Buffer

	sh.Execute(List{}, &out)
	assert.Contains(t, out.String(), "The duckie pond is empty")

	_, err := store.Insert("list files", "ls -la", "show hidden files")
	require.NoError(t, err)
	_, err = store.Insert("disk usage", "du -sh .", "")
	require.NoError(t, err)

	out.Reset()
	sh.Execute(List{}, &out)
	got := out.String()
	assert.Contains(t, got, "list files")
	assert.Contains(t, got, "du -sh .")
	assert.Less(t, strings.Index(got, "ls -la"), strings.Index(got, "du -sh ."))
}

func TestExecuteSearchRecordsHistory(t *testing.T) {
	history := &recordingHistory{}
	sh, store := newTestShell(t, WithHistory(history))
	_, err := store.Insert("scan network ports", "nmap -sV -T4 192.168.1.0/24", "")
	require.NoError(t, err)

	var out bytes.Buffer
	sh.Execute(Search{Query: "scan network ports"}, &out)
	sh.Execute(Search{Query: "zzzz qqqq"}, &out)

	assert.Contains(t, out.String(), "No matching commands found in the duckie pond")

	require.Len(t, history.entries, 2)
	first := history.entries[0]
	assert.True(t, first.Matched)
	assert.Equal(t, int64(1), first.RecordID)
	assert.Equal(t, sh.Session(), first.SessionID)
	assert.InDelta(t, 1.0, first.Confidence, 1e-9)

	second := history.entries[1]
	assert.False(t, second.Matched)
	assert.Equal(t, "zzzz qqqq", second.Query)
}

func TestExecuteMalformed(t *testing.T) {
	sh, _ := newTestShell(t)
	var out bytes.Buffer

	assert.False(t, sh.Execute(Parse("/delete abc"), &out))
	assert.Contains(t, out.String(), "id must be a number")
	assert.Contains(t, out.String(), "Usage: "+deleteUsage)
}

func TestExecuteExit(t *testing.T) {
	sh, _ := newTestShell(t)
	assert.True(t, sh.Execute(Exit{}, &bytes.Buffer{}))
}

func TestHelpOutput(t *testing.T) {
	sh, _ := newTestShell(t)
	var out bytes.Buffer
	sh.Execute(Help{}, &out)

	g := goldie.New(t)
	g.Assert(t, "help", out.Bytes())
}

func TestWrap(t *testing.T) {
	r := renderer{width: 30}
	got := r.wrap("one two three four five six seven eight nine", 9)
	for i, line := range strings.Split(got, "\n") {
		if i > 0 {
			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 9)), "continuation line %q", line)
		}
	}
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "for f in *; do\n    echo $f\n    done", formatCommand("for f in *; do\n\techo $f\n  done"))
}
