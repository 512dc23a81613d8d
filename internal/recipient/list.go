// Package recipient holds the committed recipient list and the address
// format check used to flag its entries.
package recipient

// Entry is a committed recipient together with its format verdict.
type Entry struct {
	Address string
	Valid   bool
}

// List is an ordered list of committed recipients. Duplicates are allowed.
// The zero value is an empty list ready to use.
type List struct {
	items []string
}

// Append adds address to the end of the list.
func (l *List) Append(address string) {
	l.items = append(l.items, address)
}

// Remove deletes every entry equal to address and returns how many were
// removed. Remaining entries keep their relative order.
func (l *List) Remove(address string) int {
	kept := l.items[:0]
	removed := 0
	for _, it := range l.items {
		if it == address {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	// Clear the tail so removed strings are not retained.
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = ""
	}
	l.items = kept
	return removed
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

// Addresses returns a copy of the entries in insertion order.
func (l *List) Addresses() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Entries returns the entries with their validity.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.items))
	for i, it := range l.items {
		out[i] = Entry{Address: it, Valid: IsValid(it)}
	}
	return out
}

// InvalidCount returns how many entries fail IsValid.
func (l *List) InvalidCount() int {
	n := 0
	for _, it := range l.items {
		if !IsValid(it) {
			n++
		}
	}
	return n
}
