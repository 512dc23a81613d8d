package recipient

import "regexp"

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValid reports whether s looks like a plain email address.
func IsValid(s string) bool {
	return addressPattern.MatchString(s)
}
