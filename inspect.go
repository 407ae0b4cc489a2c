package notation

import (
	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// InspectResult carries the outcome and diagnostics of a path resolution.
// Has is true whenever the location exists as an own member, even when the
// resolved value is the Undefined sentinel: absent and present-but-empty
// are different answers.
type InspectResult struct {
	// Notation is the canonical form of the inspected path.
	Notation string
	Has      bool
	// Value is the resolved node, or the detached node for removals.
	Value *ir.Node
	Type  ir.Type
	// Level is the number of notes resolved; on a miss it marks how deep
	// the walk got.
	Level    int
	LastNote note.Note
	// LastNoteNormalized is an int for index notes, a string for keys.
	LastNoteNormalized any
	// ParentIsArray reports whether the container the walk ended in is an
	// array. On a miss this is the container where the member was absent.
	ParentIsArray bool
}

// InspectGet resolves path against the tree, walking one note at a time
// and stopping at the first note absent as an own member.
func (n *Notation) InspectGet(path string) (*InspectResult, error) {
	p, err := note.Parse(path)
	if err != nil {
		return nil, err
	}
	return n.inspectGet(p), nil
}

func (n *Notation) inspectGet(p note.Path) *InspectResult {
	last := p.Last()
	res := &InspectResult{
		Notation:           p.String(),
		LastNote:           last,
		LastNoteNormalized: last.Normalized(),
	}
	cur := n.root
	for i, nt := range p {
		child := member(cur, nt)
		if child == nil {
			res.Level = i
			res.ParentIsArray = cur.Type == ir.ArrayType
			return res
		}
		if i == len(p)-1 {
			res.ParentIsArray = cur.Type == ir.ArrayType
		}
		cur = child
	}
	res.Has = true
	res.Value = cur
	res.Type = cur.Type
	res.Level = len(p)
	return res
}

// member resolves one note against a container, nil when the note is not
// an own member (including a note of the wrong kind for the container).
func member(y *ir.Node, nt note.Note) *ir.Node {
	switch {
	case nt.Kind == note.Index:
		if y.Type != ir.ArrayType {
			return nil
		}
		return y.At(nt.Index)
	case nt.IsKeyed():
		if y.Type != ir.ObjectType {
			return nil
		}
		return ir.Get(y, nt.Key)
	default:
		return nil
	}
}
