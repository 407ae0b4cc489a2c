package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// Flatten replaces the tree with a single-level object mapping each leaf's
// full notation string to its value. Empty containers flatten as leaves so
// the structure survives an Expand round trip.
func (n *Notation) Flatten() error {
	flat := ir.Object()
	n.Each(func(p note.Path, v *ir.Node) bool {
		flat.SetField(p.String(), v.Clone())
		return true
	})
	n.flatRoot = n.root.Type
	n.root.Replace(flat)
	return nil
}

// Expand rebuilds nesting from a flat notation-to-value object — the
// inverse of Flatten. The root container kind follows the first key: an
// index note makes it an array. An empty flat map carries no keys to infer
// from, so it expands to the kind recorded by the last Flatten.
func (n *Notation) Expand() error {
	if n.root.Type != ir.ObjectType {
		return fmt.Errorf("%w: expand needs a flat object", ErrInvalidNotationsObject)
	}
	kind := ir.ObjectType
	if len(n.root.Fields) > 0 {
		p, err := note.Parse(n.root.Fields[0])
		if err != nil {
			return err
		}
		if p.First().Kind == note.Index {
			kind = ir.ArrayType
		}
	} else if n.flatRoot == ir.ArrayType {
		kind = ir.ArrayType
	}
	res := &Notation{root: ir.Container(kind), opts: n.opts}
	for i, key := range n.root.Fields {
		if err := res.Set(key, n.root.Values[i].Clone()); err != nil {
			return err
		}
	}
	n.root.Replace(res.root)
	return nil
}
