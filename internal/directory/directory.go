// Package directory holds the fixed address book that recipient
// suggestions are drawn from.
package directory

import (
	"strings"
)

// Directory is an immutable, ordered list of addresses.
type Directory struct {
	entries []string
	lower   []string
}

// New builds a Directory from entries. Order is preserved, blank entries
// are dropped and the input slice is copied.
func New(entries []string) *Directory {
	d := &Directory{
		entries: make([]string, 0, len(entries)),
		lower:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		d.entries = append(d.entries, e)
		d.lower = append(d.lower, strings.ToLower(e))
	}
	return d
}

// Default returns the built-in directory.
func Default() *Directory {
	return New(builtin)
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Entries returns a copy of all entries in order.
func (d *Directory) Entries() []string {
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

// Suggest returns, in directory order, every entry that contains query as
// a case-insensitive substring. An empty query yields an empty result.
func (d *Directory) Suggest(query string) []string {
	if query == "" {
		return []string{}
	}

	q := strings.ToLower(query)
	matches := []string{}
	for i, l := range d.lower {
		if strings.Contains(l, q) {
			matches = append(matches, d.entries[i])
		}
	}
	return matches
}
