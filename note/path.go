package note

import (
	"fmt"
	"strings"
)

// Path is an ordered, root-to-leaf sequence of notes. Paths come out of
// Parse/ParseGlob only; treat them as immutable.
type Path []Note

func (p Path) String() string {
	var buf strings.Builder
	for i, n := range p {
		if i > 0 && !n.Bracketed() {
			buf.WriteByte('.')
		}
		buf.WriteString(n.String())
	}
	return buf.String()
}

// Level is the path's depth: its number of notes.
func (p Path) Level() int {
	return len(p)
}

func (p Path) First() Note {
	return p[0]
}

func (p Path) Last() Note {
	return p[len(p)-1]
}

// Parent returns the path without its last note, or nil for a single-note
// path.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// HasWildcard reports whether any note of the path is a wildcard.
func (p Path) HasWildcard() bool {
	for _, n := range p {
		if n.IsWildcard() {
			return true
		}
	}
	return false
}

// Split breaks a concrete path into its note strings, each a valid
// single-note path. Join(Split(s)) == s for every valid s.
func Split(s string) ([]string, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	segs := make([]string, len(p))
	for i, n := range p {
		segs[i] = n.String()
	}
	return segs, nil
}

// Join assembles note strings back into a path, validating the result.
func Join(segs []string) (string, error) {
	var buf strings.Builder
	for i, seg := range segs {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			buf.WriteByte('.')
		}
		buf.WriteString(seg)
	}
	s := buf.String()
	if err := Validate(s); err != nil {
		return "", fmt.Errorf("join %v: %w", segs, err)
	}
	return s, nil
}

// Parent returns the path string without its last note, "" for a
// single-note path.
func Parent(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.Parent().String(), nil
}

// First returns the first note string of s.
func First(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.First().String(), nil
}

// Last returns the last note string of s.
func Last(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.Last().String(), nil
}

// Each visits the successively longer prefixes of s, left to right: for
// "a.b.c" the visitor sees a, a.b, a.b.c at levels 1..3. A false return
// stops the iteration; no further prefixes are produced.
func Each(s string, visit func(level int, prefix Path) bool) error {
	p, err := Parse(s)
	if err != nil {
		return err
	}
	for i := 1; i <= len(p); i++ {
		if !visit(i, p[:i]) {
			return nil
		}
	}
	return nil
}
