package glob

import (
	"sort"
	"strings"
)

// Compare orders patterns by application priority: fewer notes first, more
// wildcards first, positive before negated, then lexicographic. Shallow,
// loose, non-negated patterns apply first so later, narrower, negated ones
// deterministically override them. The reduced note list is what counts —
// "!car.*" orders as the single note "car".
func Compare(a, b *Glob) int {
	if d := len(a.Notes) - len(b.Notes); d != 0 {
		return d
	}
	if d := b.wildcards() - a.wildcards(); d != 0 {
		return d
	}
	if a.Negated != b.Negated {
		if !a.Negated {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Notes.String(), b.Notes.String())
}

// Sort sorts patterns in place by Compare.
func Sort(globs []*Glob) {
	sort.SliceStable(globs, func(i, j int) bool {
		return Compare(globs[i], globs[j]) < 0
	})
}
