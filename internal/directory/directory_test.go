package directory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	d := New([]string{"alice@x.com", "bob@x.com", "Alicia@Y.org"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", []string{}},
		{"prefix", "ali", []string{"alice@x.com", "Alicia@Y.org"}},
		{"case insensitive", "ALI", []string{"alice@x.com", "Alicia@Y.org"}},
		{"any position", "@x.", []string{"alice@x.com", "bob@x.com"}},
		{"exact", "bob@x.com", []string{"bob@x.com"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Suggest(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggest(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSuggestIsSubsetOfDirectory(t *testing.T) {
	d := Default()
	all := make(map[string]bool, d.Len())
	for _, e := range d.Entries() {
		all[e] = true
	}

	for _, q := range []string{"a", "EXAMPLE", ".org", "+", "son@", "x"} {
		for _, s := range d.Suggest(q) {
			assert.True(t, all[s], "suggestion %q not in directory", s)
			assert.Contains(t, strings.ToLower(s), strings.ToLower(q))
		}
	}
}

func TestNewDropsBlankEntriesAndCopies(t *testing.T) {
	src := []string{" a@b.co ", "", "   ", "c@d.io"}
	d := New(src)
	src[0] = "mutated"

	assert.Equal(t, []string{"a@b.co", "c@d.io"}, d.Entries())

	entries := d.Entries()
	entries[0] = "changed"
	assert.Equal(t, "a@b.co", d.Entries()[0])
}

func TestDefaultIsNotEmpty(t *testing.T) {
	assert.Greater(t, Default().Len(), 0)
}
