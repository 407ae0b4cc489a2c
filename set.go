package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// SetMode selects what a Set does when the terminal note already holds a
// value.
type SetMode int

const (
	// Overwrite replaces an existing value.
	Overwrite SetMode = iota
	// Insert splices the value into an array at the terminal index,
	// shifting later entries up. The terminal container must be an array.
	Insert
	// NoOverwrite leaves an existing value untouched.
	NoOverwrite
)

// Set writes value at path, creating intermediate containers on demand: an
// array when the following note is an index, an object otherwise. A key
// note addressing an existing array — or an index note addressing an
// object — fails ErrTypeMismatch.
func (n *Notation) Set(path string, value any, mode ...SetMode) error {
	m := Overwrite
	if len(mode) > 0 {
		m = mode[0]
	}
	p, err := note.Parse(path)
	if err != nil {
		return err
	}
	v, err := ir.FromAny(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return n.setPath(p, v, m)
}

func (n *Notation) setPath(p note.Path, v *ir.Node, m SetMode) error {
	cur := n.root
	for i, nt := range p {
		if nt.Kind == note.Index && cur.Type != ir.ArrayType {
			return fmt.Errorf("%w: index %s on %s at %q", ErrTypeMismatch, nt, cur.Type, p[:i+1])
		}
		if nt.IsKeyed() && cur.Type != ir.ObjectType {
			return fmt.Errorf("%w: key %s on %s at %q", ErrTypeMismatch, nt, cur.Type, p[:i+1])
		}
		if i == len(p)-1 {
			return setTerminal(cur, nt, v, m)
		}
		child := member(cur, nt)
		if child == nil || child.Type.IsLeaf() {
			child = ir.Container(containerFor(p[i+1]))
			place(cur, nt, child)
		}
		cur = child
	}
	return nil
}

func setTerminal(cur *ir.Node, nt note.Note, v *ir.Node, m SetMode) error {
	if m == Insert {
		if nt.Kind != note.Index {
			return fmt.Errorf("%w: cannot insert at %s", ErrInsertOnNonArray, nt)
		}
		cur.InsertIndex(nt.Index, v)
		return nil
	}
	if m == NoOverwrite && member(cur, nt) != nil {
		return nil
	}
	place(cur, nt, v)
	return nil
}

func place(cur *ir.Node, nt note.Note, v *ir.Node) {
	if nt.Kind == note.Index {
		cur.SetIndex(nt.Index, v)
		return
	}
	cur.SetField(nt.Key, v)
}

// containerFor picks the container kind an intermediate note calls for.
func containerFor(next note.Note) ir.Type {
	if next.Kind == note.Index {
		return ir.ArrayType
	}
	return ir.ObjectType
}
