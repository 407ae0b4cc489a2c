package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// deniedKeys are object keys Merge silently skips. They are structurally
// dangerous names in notation's original host environments; the check is a
// plain name denylist, independent of any prototype mechanics.
var deniedKeys = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

func denied(p note.Path) bool {
	for _, nt := range p {
		if nt.IsKeyed() && deniedKeys[nt.Key] {
			return true
		}
	}
	return false
}

// Merge sets every own key of src on the tree. Keys may be flat or
// notated paths; denylisted keys are skipped. Passing overwrite=false
// leaves existing values untouched.
func (n *Notation) Merge(src any, overwrite ...bool) error {
	node, err := ir.FromAny(src)
	if err != nil || node.Type != ir.ObjectType {
		return fmt.Errorf("%w: merge source must be an object", ErrInvalidNotationsObject)
	}
	mode := Overwrite
	if len(overwrite) > 0 && !overwrite[0] {
		mode = NoOverwrite
	}
	for i, key := range node.Fields {
		p, err := note.Parse(key)
		if err != nil {
			return err
		}
		if denied(p) {
			continue
		}
		if err := n.Set(key, node.Values[i].Clone(), mode); err != nil {
			return err
		}
	}
	return nil
}

// Separate removes each listed path from the tree and accumulates the
// removed values, at their original paths, in a fresh tree. Absent paths
// are skipped.
func (n *Notation) Separate(paths []string) (*Notation, error) {
	res := &Notation{root: ir.Container(n.root.Type), opts: n.opts}
	for _, path := range paths {
		ins, err := n.InspectRemove(path)
		if err != nil {
			return nil, err
		}
		if !ins.Has {
			continue
		}
		if err := res.Set(path, ins.Value); err != nil {
			return nil, err
		}
	}
	return res, nil
}
