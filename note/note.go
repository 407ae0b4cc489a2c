// Package note implements the notation path engine.
//
// A notation path addresses one location in a tree of objects (ordered
// key-value maps), arrays, and scalar leaves. It is a non-empty sequence of
// notes, each one of:
//
//   - an identifier: "a", "_x", "$ref"
//   - a bracketed index: "[0]"
//   - a bracketed quoted key: "['some key']" or `["some key"]`
//
// The first note stands bare; later identifiers attach with "." and
// bracketed notes attach directly:
//
//	car.model
//	colors[0]
//	a['key with spaces'].b
//
// Glob patterns (package glob) reuse the same grammar plus wildcard notes:
// "*" matches one object key, "[*]" matches one array index.
package note

import (
	"strconv"
	"strings"
)

type Kind int

const (
	// Identifier is a plain object key.
	Identifier Kind = iota
	// QuotedKey is a bracketed, quoted object key.
	QuotedKey
	// Index is a bracketed array index.
	Index
	// Wildcard matches one object key (glob only).
	Wildcard
	// IndexWildcard matches one array index (glob only).
	IndexWildcard
)

// Note is one addressing unit of a path.
type Note struct {
	Kind  Kind
	Key   string
	Index int
	// Quote records the quote character of a QuotedKey so its textual
	// form round-trips.
	Quote byte
}

// IsWildcard reports whether the note is one of the two wildcard kinds.
func (n Note) IsWildcard() bool {
	return n.Kind == Wildcard || n.Kind == IndexWildcard
}

// IsIndexed reports whether the note addresses an array position.
func (n Note) IsIndexed() bool {
	return n.Kind == Index || n.Kind == IndexWildcard
}

// IsKeyed reports whether the note addresses an object key.
func (n Note) IsKeyed() bool {
	return n.Kind == Identifier || n.Kind == QuotedKey || n.Kind == Wildcard
}

// Normalized returns the note's normalized form: an int for indices, a
// string for keys, "*" / "[*]" for wildcards. Two notes are equal iff
// their normalized forms are.
func (n Note) Normalized() any {
	switch n.Kind {
	case Index:
		return n.Index
	case Identifier, QuotedKey:
		return n.Key
	case Wildcard:
		return "*"
	case IndexWildcard:
		return "[*]"
	default:
		panic("kind")
	}
}

func (n Note) Equal(m Note) bool {
	return n.Normalized() == m.Normalized()
}

// String renders the note as it appears at the head of a path: bracketed
// notes include their brackets, identifiers and wildcards stand bare.
func (n Note) String() string {
	switch n.Kind {
	case Identifier:
		return n.Key
	case QuotedKey:
		q := n.Quote
		if q == 0 {
			q = '\''
		}
		esc := strings.NewReplacer(`\`, `\\`, string(q), `\`+string(q))
		return "[" + string(q) + esc.Replace(n.Key) + string(q) + "]"
	case Index:
		return "[" + strconv.Itoa(n.Index) + "]"
	case Wildcard:
		return "*"
	case IndexWildcard:
		return "[*]"
	default:
		panic("kind")
	}
}

// KeyNote returns the note addressing an object key, quoted when the key
// is not a plain identifier.
func KeyNote(key string) Note {
	if isIdent(key) {
		return Note{Kind: Identifier, Key: key}
	}
	return Note{Kind: QuotedKey, Key: key, Quote: '\''}
}

// IndexNote returns the note addressing array index i.
func IndexNote(i int) Note {
	return Note{Kind: Index, Index: i}
}

func isIdent(s string) bool {
	if s == "" || !identStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !identPart(s[i]) {
			return false
		}
	}
	return true
}

// Bracketed reports whether the note's textual form carries its own
// brackets and so attaches to the previous note without a dot.
func (n Note) Bracketed() bool {
	switch n.Kind {
	case Index, QuotedKey, IndexWildcard:
		return true
	default:
		return false
	}
}
