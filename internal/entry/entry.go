package entry

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one selectable item: an identifier plus the label shown to the user.
type Entry struct {
	ID   string
	Name string
}

// separator splits the id from the display name on an input line.
const separator = " @ "

// ParseLine interprets a single protocol line. Lines look like "ID @ NAME";
// when the separator is absent the whole line serves as both id and name.
// Blank lines yield ok=false and are skipped by callers.
func ParseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Entry{}, false
	}
	// Cut before trimming: a trailing-space name like "id @ " still carries
	// the full separator on the raw line.
	id, name, found := strings.Cut(line, separator)
	id = strings.TrimSpace(id)
	if !found || id == "" {
		return Entry{ID: trimmed, Name: trimmed}, true
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = id
	}
	return Entry{ID: id, Name: name}, true
}

// ReadAll consumes the reader line by line and returns the parsed entries in
// input order.
func ReadAll(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var entries []Entry
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

// Clone produces a shallow copy of the provided entries.
func Clone(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
