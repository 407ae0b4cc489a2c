package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
)

// Get resolves path to its value. An absent path returns def when given;
// otherwise it returns Undefined, or fails under Strict — with
// ErrMissingIndex when the parent is an array, ErrMissingProperty when it
// is an object.
func (n *Notation) Get(path string, def ...*ir.Node) (*ir.Node, error) {
	ins, err := n.InspectGet(path)
	if err != nil {
		return nil, err
	}
	if ins.Has {
		return ins.Value, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	if n.opts.Strict {
		return nil, missErr(ins, path)
	}
	return ir.Undefined(), nil
}

func missErr(ins *InspectResult, path string) error {
	if ins.ParentIsArray {
		return fmt.Errorf("%w: %s", ErrMissingIndex, path)
	}
	return fmt.Errorf("%w: %s", ErrMissingProperty, path)
}

// Has reports whether path exists as an own member, Undefined values
// included.
func (n *Notation) Has(path string) (bool, error) {
	ins, err := n.InspectGet(path)
	if err != nil {
		return false, err
	}
	return ins.Has, nil
}

// HasDefined reports whether path exists and its value is not the
// Undefined sentinel.
func (n *Notation) HasDefined(path string) (bool, error) {
	ins, err := n.InspectGet(path)
	if err != nil {
		return false, err
	}
	return ins.Has && ins.Type != ir.UndefinedType, nil
}
