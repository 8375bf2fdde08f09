package vdom

import (
	"sort"
	"strings"
)

// Style maps CSS property names to values for an element's inline style.
// Serialization is key-sorted so the same Style always produces the same
// attribute string, keeping render output stable across passes.
type Style map[string]string

// String serializes the style as an inline CSS declaration list.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}

// Merge returns a new Style with the entries of other laid over s.
// Neither input is modified.
func (s Style) Merge(other Style) Style {
	merged := make(Style, len(s)+len(other))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
