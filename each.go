package notation

import (
	"slices"

	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// Each deep-walks the tree, visiting every leaf — empty containers
// included — with its full path. Objects iterate in insertion order,
// arrays in index order. A false return halts all remaining traversal,
// unvisited siblings and subtrees included.
func (n *Notation) Each(visit func(p note.Path, value *ir.Node) bool) {
	eachLeaf(n.root, nil, false, visit)
}

// eachLeaf walks y under prefix. With reverse, arrays iterate highest
// index first: walks that remove array entries must run that way so a
// splice cannot shift an index the walk has yet to visit.
func eachLeaf(y *ir.Node, prefix note.Path, reverse bool, visit func(note.Path, *ir.Node) bool) bool {
	switch y.Type {
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			if prefix == nil {
				return true
			}
			return visit(prefix, y)
		}
		fields := slices.Clone(y.Fields)
		values := slices.Clone(y.Values)
		for i := range fields {
			p := append(prefix[:len(prefix):len(prefix)], note.KeyNote(fields[i]))
			if !eachLeaf(values[i], p, reverse, visit) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if len(y.Values) == 0 {
			if prefix == nil {
				return true
			}
			return visit(prefix, y)
		}
		values := slices.Clone(y.Values)
		idxs := make([]int, len(values))
		for i := range idxs {
			idxs[i] = i
		}
		if reverse {
			slices.Reverse(idxs)
		}
		for _, i := range idxs {
			p := append(prefix[:len(prefix):len(prefix)], note.IndexNote(i))
			if !eachLeaf(values[i], p, reverse, visit) {
				return false
			}
		}
		return true
	default:
		return visit(prefix, y)
	}
}
