// ABOUTME: Parses one line of shell input into a tagged command
// ABOUTME: Slash commands become typed variants; everything else is a search
package shell

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Command is one parsed line of input. The concrete type is one of Search, Add,
// Delete, List, Help, Exit or Malformed.
type Command interface {
	command()
}

// Search asks for the best stored command for a free-text query.
type Search struct {
	Query string
}

// Add inserts a new record.
type Add struct {
	Intent      string
	Command     string
	Description string
}

// Delete removes the record with ID.
type Delete struct {
	ID int64
}

// List prints every stored record.
type List struct{}

// Help prints the command summary.
type Help struct{}

// Exit ends the session.
type Exit struct{}

// Malformed is a slash command that could not be parsed.
type Malformed struct {
	Input  string
	Reason string
	Usage  string
}

func (Search) command()    {}
func (Add) command()       {}
func (Delete) command()    {}
func (List) command()      {}
func (Help) command()      {}
func (Exit) command()      {}
func (Malformed) command() {}

const (
	addUsage    = "/add intent | command | [description]"
	deleteUsage = "/delete id"
)

// Parse turns a line into a Command. Slash command names are case-insensitive.
// A leading word that looks like a path (for example /etc/hosts) is searched for.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return Search{Query: line}
	}

	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], strings.TrimSpace(line[i:])
	}
	if strings.Contains(name[1:], "/") {
		return Search{Query: line}
	}

	switch strings.ToLower(name) {
	case "/exit", "/quit":
		return Exit{}
	case "/help":
		return Help{}
	case "/list":
		return List{}
	case "/add":
		return parseAdd(line, rest)
	case "/delete":
		return parseDelete(line, rest)
	default:
		return Malformed{Input: line, Reason: fmt.Sprintf("unknown command %s, type /help for the list", name)}
	}
}

func parseAdd(line, rest string) Command {
	malformed := func(reason string) Command {
		return Malformed{Input: line, Reason: reason, Usage: addUsage}
	}

	if rest == "" {
		return malformed("missing intent and command")
	}

	fields := splitFields(rest)
	switch {
	case len(fields) < 2:
		return malformed("missing command")
	case len(fields) > 3:
		return malformed(`too many fields, write a literal pipe as \|`)
	case fields[0] == "":
		return malformed("intent must not be empty")
	case fields[1] == "":
		return malformed("command must not be empty")
	}

	add := Add{Intent: fields[0], Command: fields[1]}
	if len(fields) == 3 {
		add.Description = fields[2]
	}
	return add
}

func parseDelete(line, rest string) Command {
	if rest == "" {
		return Malformed{Input: line, Reason: "missing id", Usage: deleteUsage}
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return Malformed{Input: line, Reason: "id must be a number", Usage: deleteUsage}
	}
	return Delete{ID: id}
}

// splitFields splits on '|' and trims each field. "\|" is a literal pipe.
func splitFields(s string) []string {
	var fields []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '|':
			b.WriteByte('|')
			i++
		case s[i] == '|':
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(fields, strings.TrimSpace(b.String()))
}
