package notation

import (
	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// InspectRemove resolves path's parent, captures the member's value and
// diagnostics, then deletes it. An array parent splices by default,
// shifting later indices down; with PreserveIndices the slot becomes an
// Undefined hole. An object parent deletes the key in place. An absent
// path yields Has:false and no mutation, so removal is idempotent outside
// strict mode.
func (n *Notation) InspectRemove(path string) (*InspectResult, error) {
	p, err := note.Parse(path)
	if err != nil {
		return nil, err
	}
	return n.inspectRemove(p), nil
}

func (n *Notation) inspectRemove(p note.Path) *InspectResult {
	last := p.Last()
	res := &InspectResult{
		Notation:           p.String(),
		LastNote:           last,
		LastNoteNormalized: last.Normalized(),
	}
	parent := n.root
	if pp := p.Parent(); pp != nil {
		ins := n.inspectGet(pp)
		if !ins.Has {
			res.Level = ins.Level
			res.ParentIsArray = ins.ParentIsArray
			return res
		}
		parent = ins.Value
	}
	res.ParentIsArray = parent.Type == ir.ArrayType
	value := member(parent, last)
	if value == nil {
		res.Level = len(p) - 1
		return res
	}
	res.Has = true
	res.Value = value
	res.Type = value.Type
	res.Level = len(p)
	if last.Kind == note.Index {
		parent.RemoveIndex(last.Index, !n.opts.PreserveIndices)
	} else {
		parent.DeleteField(last.Key)
	}
	return res
}

// Remove deletes path. Outside strict mode an absent path is a no-op;
// under Strict it fails like Get.
func (n *Notation) Remove(path string) error {
	ins, err := n.InspectRemove(path)
	if err != nil {
		return err
	}
	if !ins.Has && n.opts.Strict {
		return missErr(ins, path)
	}
	return nil
}
