// ABOUTME: Query history log writing
// ABOUTME: Formats searches as markdown or JSON and appends to daily logs
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// HistoryEntry records one search made in a shell session.
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	Query      string    `json:"query"`
	Matched    bool      `json:"matched"`
	RecordID   int64     `json:"record_id,omitempty"`
	Intent     string    `json:"intent,omitempty"`
	Command    string    `json:"command,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// HistoryLog appends entries to one file per day under Dir.
type HistoryLog struct {
	Dir    string
	Format string
}

// Write appends entry to the history log.
func (h HistoryLog) Write(entry HistoryEntry) error {
	return WriteHistory(h.Dir, h.Format, entry)
}

// WriteHistory appends entry to the daily log file in logDir
func WriteHistory(logDir, format string, entry HistoryEntry) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	// One file per day
	date := entry.Timestamp.Format("2006-01-02")
	logFile := filepath.Join(logDir, date+".log")

	var content string
	switch format {
	case "json":
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case "markdown":
		fallthrough
	default:
		content = formatMarkdown(entry)
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

func formatMarkdown(entry HistoryEntry) string {
	var sb strings.Builder

	timeStr := entry.Timestamp.Format("15:04:05")
	sb.WriteString(fmt.Sprintf("## %s - %s\n", timeStr, entry.Query))

	if entry.Matched {
		sb.WriteString(fmt.Sprintf("- **Match**: #%d %s (%.0f%%)\n", entry.RecordID, entry.Intent, entry.Confidence*100))
		sb.WriteString(fmt.Sprintf("- **Command**: `%s`\n", strings.ReplaceAll(entry.Command, "\n", " ")))
	} else {
		sb.WriteString("- **Match**: none\n")
	}

	sb.WriteString(fmt.Sprintf("- **Session**: %s\n", entry.SessionID))
	sb.WriteString("\n")

	return sb.String()
}
