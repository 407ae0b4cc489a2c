package glob

import (
	"strings"

	"github.com/notatree/notation/debug"
	"github.com/notatree/notation/note"
)

// ParseAll parses a pattern list.
func ParseAll(patterns []string) ([]*Glob, error) {
	globs := make([]*Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := Parse(p)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Strings renders a glob list back to pattern strings.
func Strings(globs []*Glob) []string {
	res := make([]string, len(globs))
	for i, g := range globs {
		res[i] = g.String()
	}
	return res
}

// Normalize reduces a pattern list to its minimal, duplicate-free,
// polarity-consistent equivalent, sorted by Compare. Normalize is
// idempotent.
func Normalize(patterns []string) ([]string, error) {
	globs, err := ParseAll(patterns)
	if err != nil {
		return nil, err
	}
	return Strings(NormalizeGlobs(globs)), nil
}

// NormalizeGlobs is Normalize over parsed patterns:
//
//  1. exact duplicates collapse to one;
//  2. a pattern with an exact negated counterpart yields to the negated one;
//  3. redundant patterns drop per the polarity matrix — a pattern covered
//     by a same-polarity pattern is redundant, a positive covered by a
//     negative is dead, a negative covered only by positives stays;
//  4. a set reducing to "negate everything" collapses to empty;
//  5. surviving negated pairs with overlapping but non-covering domains
//     contribute their intersection, keeping the exclusion scope exact;
//  6. the result sorts by Compare.
func NormalizeGlobs(globs []*Glob) []*Glob {
	// exact duplicates
	seen := map[string]bool{}
	var uniq []*Glob
	for _, g := range globs {
		if seen[g.String()] {
			continue
		}
		seen[g.String()] = true
		uniq = append(uniq, g)
	}
	// positive with an exact negated counterpart loses to it
	var pruned []*Glob
	for _, g := range uniq {
		if !g.Negated && seen["!"+g.String()] {
			if debug.Normalize() {
				debug.Logf("normalize: %s dropped for negated counterpart\n", g)
			}
			continue
		}
		pruned = append(pruned, g)
	}
	Sort(pruned)

	// polarity matrix: a coverer always sorts at or before what it covers,
	// so one pass against the kept prefix suffices
	var kept []*Glob
	for _, g := range pruned {
		redundant := false
		for _, h := range kept {
			if !h.Covers(g) {
				continue
			}
			if g.Negated && !h.Negated {
				continue // negation survives positive coverage
			}
			redundant = true
			if debug.Normalize() {
				debug.Logf("normalize: %s covered by %s\n", g, h)
			}
			break
		}
		if !redundant {
			kept = append(kept, g)
		}
	}

	// a set that reduces to "negate everything" selects nothing
	if len(kept) == 1 && kept[0].Negated && kept[0].IsEverything() {
		return nil
	}

	// intersections of overlapping negated pairs
	for i := 0; i < len(kept); i++ {
		gi := kept[i]
		if !gi.Negated {
			continue
		}
		for j := i + 1; j < len(kept); j++ {
			gj := kept[j]
			if !gj.Negated || gi.Covers(gj) || gj.Covers(gi) {
				continue
			}
			x := Intersect(gi, gj)
			if x == nil || seen[x.String()] {
				continue
			}
			// an intersection already denied by a kept pattern adds
			// nothing, and keeping it would break idempotence. Both
			// parents survive here, so this always skips; Union is where
			// intersections materialize, since there a parent may have
			// been dropped by the other side's positive coverage.
			covered := false
			for _, h := range kept {
				if h.Negated && h.Covers(x) {
					covered = true
					break
				}
			}
			if covered {
				continue
			}
			seen[x.String()] = true
			kept = append(kept, x)
			if debug.Normalize() {
				debug.Logf("normalize: added intersection %s of %s and %s\n", x, gi, gj)
			}
		}
	}

	Sort(kept)
	return kept
}

// Intersect computes the conjoined constraint of two negated patterns with
// overlapping domains: position by position, a wildcard yields to the
// other side's note, equal notes carry over, and conflicting concrete
// notes mean the domains are disjoint (nil). A shorter pattern with an
// everything-beneath suffix extends into the longer one's tail.
func Intersect(a, b *Glob) *Glob {
	n := max(len(a.Notes), len(b.Notes))
	notes := make(note.Path, 0, n)
	for i := 0; i < n; i++ {
		an, aok := noteAt(a, i)
		bn, bok := noteAt(b, i)
		if !aok || !bok {
			return nil
		}
		cn, ok := combineNotes(an, bn)
		if !ok {
			return nil
		}
		notes = append(notes, cn)
	}
	empty := EmptyNone
	switch {
	case len(a.Notes) > len(b.Notes):
		empty = a.Empty
	case len(b.Notes) > len(a.Notes):
		empty = b.Empty
	case a.Empty == b.Empty:
		empty = a.Empty
	}
	return build(true, notes, empty)
}

func noteAt(g *Glob, i int) (note.Note, bool) {
	if i < len(g.Notes) {
		return g.Notes[i], true
	}
	switch g.Empty {
	case EmptyObject:
		return note.Note{Kind: note.Wildcard}, true
	case EmptyArray:
		return note.Note{Kind: note.IndexWildcard}, true
	}
	return note.Note{}, false
}

func combineNotes(a, b note.Note) (note.Note, bool) {
	if a.IsWildcard() {
		if coversNote(a, b) {
			return b, true
		}
		return note.Note{}, false
	}
	if b.IsWildcard() {
		if coversNote(b, a) {
			return a, true
		}
		return note.Note{}, false
	}
	if a.Equal(b) {
		return a, true
	}
	return note.Note{}, false
}

func build(negated bool, notes note.Path, empty EmptyKind) *Glob {
	var buf strings.Builder
	if negated {
		buf.WriteByte('!')
	}
	buf.WriteString(notes.String())
	switch empty {
	case EmptyObject:
		buf.WriteString(".*")
	case EmptyArray:
		buf.WriteString("[*]")
	}
	return &Glob{Negated: negated, Notes: notes, Empty: empty, text: buf.String()}
}
