// Package glob implements wildcard/negation patterns over notation paths
// and the set algebra (compare, normalize, union) used to drive filtering.
//
// A glob is a notation path whose notes may be wildcards — "*" matches one
// object key, "[*]" one array index — optionally prefixed with "!" to
// negate the whole pattern. A trailing ".*" or "[*]" means "everything
// beneath" and is not an addressable note: construction strips it and
// records which empty container stands in when a negated pattern of that
// shape is applied.
package glob

import (
	"fmt"
	"strings"

	"github.com/notatree/notation/note"
)

// EmptyKind records a stripped trailing everything-beneath wildcard.
type EmptyKind int

const (
	EmptyNone EmptyKind = iota
	// EmptyObject: the glob ended in ".*"; negated application empties
	// the object instead of deleting it.
	EmptyObject
	// EmptyArray: the glob ended in "[*]".
	EmptyArray
)

// Glob is one parsed pattern. Notes holds the reduced path: a trailing
// everything-beneath wildcard is stripped into Empty. The original textual
// form (suffix included) is kept for String.
type Glob struct {
	Negated bool
	Notes   note.Path
	Empty   EmptyKind

	text string
}

// Parse parses a glob pattern, accepting an optional leading "!" and
// wildcard notes.
func Parse(s string) (*Glob, error) {
	body := s
	neg := false
	if strings.HasPrefix(body, "!") {
		neg = true
		body = body[1:]
	}
	notes, err := note.ParseGlob(body)
	if err != nil {
		return nil, err
	}
	g := &Glob{Negated: neg, Notes: notes}
	g.text = notes.String()
	if neg {
		g.text = "!" + g.text
	}
	if len(notes) >= 2 {
		switch notes.Last().Kind {
		case note.Wildcard:
			g.Notes = notes[:len(notes)-1]
			g.Empty = EmptyObject
		case note.IndexWildcard:
			g.Notes = notes[:len(notes)-1]
			g.Empty = EmptyArray
		}
	}
	return g, nil
}

// MustParse is Parse for patterns known valid at compile time.
func MustParse(s string) *Glob {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the canonical text of the pattern, negation marker and
// everything-beneath suffix included.
func (g *Glob) String() string {
	return g.text
}

// IsEverything reports whether the glob is the bare wildcard "*" or "[*]"
// (matching any member of the root container).
func (g *Glob) IsEverything() bool {
	return len(g.Notes) == 1 && g.Notes[0].IsWildcard() && g.Empty == EmptyNone
}

func (g *Glob) wildcards() int {
	c := 0
	for _, n := range g.Notes {
		if n.IsWildcard() {
			c++
		}
	}
	return c
}

// HasWildcard reports whether the reduced notes contain a wildcard. A glob
// whose only wildcard was the stripped trailing suffix addresses a single
// concrete location.
func (g *Glob) HasWildcard() bool {
	return g.Notes.HasWildcard()
}

// Covers reports whether every location matched by o is also matched by g.
// Comparison is positional over the reduced notes: a wildcard covers any
// note of its container kind, identical notes cover each other, and the
// first mismatch decides. A shallower pattern covers deeper ones — except
// that a negated pattern without an everything-beneath suffix never covers
// deeper than itself: negation denies scope, it does not extend it.
func (g *Glob) Covers(o *Glob) bool {
	return g.coversNotes(o.Notes)
}

func (g *Glob) coversNotes(p note.Path) bool {
	if len(g.Notes) > len(p) {
		return false
	}
	if len(g.Notes) < len(p) && g.Negated && g.Empty == EmptyNone {
		return false
	}
	for i, n := range g.Notes {
		if !coversNote(n, p[i]) {
			return false
		}
	}
	return true
}

func coversNote(a, b note.Note) bool {
	switch a.Kind {
	case note.Wildcard:
		return b.IsKeyed()
	case note.IndexWildcard:
		return b.IsIndexed()
	default:
		return !b.IsWildcard() && a.Equal(b)
	}
}

// Test reports whether the glob matches the concrete path s. A target that
// is itself a pattern, or is syntactically invalid, is an error.
func (g *Glob) Test(s string) (bool, error) {
	p, err := note.Parse(s)
	if err != nil {
		return false, fmt.Errorf("test %q: %w", s, err)
	}
	return g.coversNotes(p), nil
}

// MatchesPrefix reports whether the glob matches p exactly at its own
// level: p has the same note count as the reduced glob and every position
// matches. The filter walk probes each prefix of a leaf path with this.
func (g *Glob) MatchesPrefix(p note.Path) bool {
	if len(g.Notes) != len(p) {
		return false
	}
	for i, n := range g.Notes {
		if !coversNote(n, p[i]) {
			return false
		}
	}
	return true
}
