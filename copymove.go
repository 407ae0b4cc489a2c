package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
)

// CopyTo copies the value at path into dst, at newPath when given. The
// source tree is untouched; an absent path is a no-op outside strict mode.
func (n *Notation) CopyTo(dst *Notation, path string, newPath ...string) error {
	if err := checkDest(dst); err != nil {
		return err
	}
	ins, err := n.InspectGet(path)
	if err != nil {
		return err
	}
	if !ins.Has {
		if n.opts.Strict {
			return missErr(ins, path)
		}
		return nil
	}
	return dst.Set(target(path, newPath), ins.Value.Clone())
}

// CopyFrom copies the value at path in src into this tree.
func (n *Notation) CopyFrom(src *Notation, path string, newPath ...string) error {
	if src == nil {
		return fmt.Errorf("%w: nil source accessor", ErrInvalidSource)
	}
	return src.CopyTo(n, path, newPath...)
}

// MoveTo moves the value at path into dst, removing it from this tree.
func (n *Notation) MoveTo(dst *Notation, path string, newPath ...string) error {
	if err := checkDest(dst); err != nil {
		return err
	}
	ins, err := n.InspectRemove(path)
	if err != nil {
		return err
	}
	if !ins.Has {
		if n.opts.Strict {
			return missErr(ins, path)
		}
		return nil
	}
	return dst.Set(target(path, newPath), ins.Value)
}

// MoveFrom moves the value at path in src into this tree.
func (n *Notation) MoveFrom(src *Notation, path string, newPath ...string) error {
	if src == nil {
		return fmt.Errorf("%w: nil source accessor", ErrInvalidSource)
	}
	return src.MoveTo(n, path, newPath...)
}

// Rename moves path to newPath within the same tree.
func (n *Notation) Rename(path, newPath string) error {
	return n.MoveTo(n, path, newPath)
}

// Extract copies the listed paths into a fresh tree of the source's kind,
// leaving the source intact.
func (n *Notation) Extract(paths []string) (*Notation, error) {
	res := &Notation{root: ir.Container(n.root.Type), opts: n.opts}
	for _, path := range paths {
		ins, err := n.InspectGet(path)
		if err != nil {
			return nil, err
		}
		if !ins.Has {
			continue
		}
		if err := res.Set(path, ins.Value.Clone()); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Extrude moves the listed paths into a fresh tree, removing them from the
// source. It is Separate under its traditional name.
func (n *Notation) Extrude(paths []string) (*Notation, error) {
	return n.Separate(paths)
}

func checkDest(dst *Notation) error {
	if dst == nil || dst.root == nil || !dst.root.Type.IsContainer() {
		return fmt.Errorf("%w: destination must wrap an object or array", ErrInvalidDestination)
	}
	return nil
}

func target(path string, newPath []string) string {
	if len(newPath) > 0 {
		return newPath[0]
	}
	return path
}
