// ABOUTME: Interactive read-eval-print loop over the command store
// ABOUTME: Dispatches parsed commands; errors are rendered, never fatal
package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/logging"
	"github.com/harper/duckie/internal/match"
)

// Store is the subset of the command store the shell needs.
type Store interface {
	Insert(intent, command, description string) (db.Record, error)
	Delete(id int64) error
	ListAll() ([]db.Record, error)
}

// HistoryWriter receives one entry per search.
type HistoryWriter interface {
	Write(entry logging.HistoryEntry) error
}

const defaultWidth = 80

// MaxLineBytes is the longest input line the shell acts on. Longer lines are
// reported and skipped.
const MaxLineBytes = 1 << 20

// InterruptHint is shown instead of quitting when the user presses Ctrl-C.
const InterruptHint = "\nUse /exit to quit the duckie shell."

// Shell runs the prompt loop for one session.
type Shell struct {
	store   Store
	matcher *match.Matcher
	logger  *log.Logger
	history HistoryWriter
	session string
	width   int
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the operational logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHistory records every search to h.
func WithHistory(h HistoryWriter) Option {
	return func(s *Shell) {
		s.history = h
	}
}

// WithWidth sets the wrap width for descriptions.
func WithWidth(width int) Option {
	return func(s *Shell) {
		if width > 0 {
			s.width = width
		}
	}
}

// New creates a shell over store using matcher for searches.
func New(store Store, matcher *match.Matcher, opts ...Option) *Shell {
	s := &Shell{
		store:   store,
		matcher: matcher,
		logger:  logging.Discard(),
		session: uuid.NewString(),
		width:   defaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.session[:8])
	return s
}

// Session returns the id of this shell session.
func (s *Shell) Session() string {
	return s.session
}

// Run reads lines from in until /exit or end of input, writing results to out.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	r := renderer{w: out, width: s.width}
	r.banner()

	reader := bufio.NewReader(in)
	for {
		r.prompt()
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.goodbye()
			return err
		}
		eof := err != nil

		if len(line) > MaxLineBytes {
			s.logger.Warn("input too long", "bytes", len(line))
			r.warn("Input too long (%d bytes), ignored.", len(line))
		} else if line = strings.TrimSpace(line); line != "" {
			if exit := s.Execute(Parse(line), out); exit {
				r.goodbye()
				return nil
			}
		}

		if eof {
			r.goodbye()
			return nil
		}
	}
}

// Execute runs one command, writing its result to out. It reports whether the
// session should end.
func (s *Shell) Execute(cmd Command, out io.Writer) bool {
	r := renderer{w: out, width: s.width}

	switch c := cmd.(type) {
	case Exit:
		return true
	case Help:
		r.help()
	case Malformed:
		s.logger.Debug("malformed input", "input", c.Input, "reason", c.Reason)
		r.malformed(c)
	case List:
		records, err := s.store.ListAll()
		if err != nil {
			s.logger.Error("list commands", "err", err)
			r.warn("Could not read the duckie pond: %v", err)
			return false
		}
		r.list(records)
	case Add:
		s.add(r, c)
	case Delete:
		s.delete(r, c)
	case Search:
		s.search(r, c.Query)
	default:
		s.logger.Error("unhandled command", "type", c)
	}
	return false
}

func (s *Shell) add(r renderer, c Add) {
	rec, err := s.store.Insert(c.Intent, c.Command, c.Description)
	switch {
	case errors.Is(err, db.ErrDuplicateCommand):
		r.warn("Command already exists in the duckie pond!")
	case errors.Is(err, db.ErrMissingField):
		r.malformed(Malformed{Reason: err.Error(), Usage: addUsage})
	case err != nil:
		s.logger.Error("insert command", "err", err)
		r.warn("Could not add command: %v", err)
	default:
		s.logger.Info("command added", "id", rec.ID)
		r.success("Command added to the duckie database! (ID: %d)", rec.ID)
	}
}

func (s *Shell) delete(r renderer, c Delete) {
	err := s.store.Delete(c.ID)
	switch {
	case errors.Is(err, db.ErrNotFound):
		r.warn("No command found with ID %d in the duckie pond!", c.ID)
	case err != nil:
		s.logger.Error("delete command", "id", c.ID, "err", err)
		r.warn("Could not delete command %d: %v", c.ID, err)
	default:
		s.logger.Info("command deleted", "id", c.ID)
		r.success("Command with ID %d deleted from the duckie database!", c.ID)
	}
}

func (s *Shell) search(r renderer, query string) {
	records, err := s.store.ListAll()
	if err != nil {
		s.logger.Error("list commands", "err", err)
		r.warn("Could not read the duckie pond: %v", err)
		return
	}

	entry := logging.HistoryEntry{
		Timestamp: time.Now(),
		SessionID: s.session,
		Query:     query,
	}

	res, err := s.matcher.Lookup(query, records)
	if errors.Is(err, match.ErrNoMatch) {
		s.logger.Debug("no match", "query", query, "records", len(records))
		r.noMatch()
	} else {
		s.logger.Debug("match", "query", query, "id", res.Record.ID, "confidence", res.Confidence)
		r.match(res)
		entry.Matched = true
		entry.RecordID = res.Record.ID
		entry.Intent = res.Record.Intent
		entry.Command = res.Record.Command
		entry.Confidence = res.Confidence
	}

	if s.history != nil {
		if err := s.history.Write(entry); err != nil {
			s.logger.Warn("failed to write history", "err", err)
		}
	}
}
