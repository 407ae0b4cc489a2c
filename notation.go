package notation

import (
	"fmt"

	"github.com/notatree/notation/ir"
)

// Options configure an accessor. Unset options default to false.
type Options struct {
	// Strict promotes absent-path gets and removes to hard failures.
	Strict bool
	// PreserveIndices makes array-item removal leave an Undefined hole
	// instead of shifting later indices down.
	PreserveIndices bool
}

type Option func(*Options)

func Strict(v bool) Option {
	return func(o *Options) { o.Strict = v }
}
func PreserveIndices(v bool) Option {
	return func(o *Options) { o.PreserveIndices = v }
}

// Notation binds the path engine to one source tree. The tree is held by
// reference: point operations mutate it in place. Accessors are not safe
// for concurrent mutation of a shared tree.
type Notation struct {
	root *ir.Node
	opts Options
	// flatRoot records the root kind at the last Flatten, so an empty
	// flat map can Expand back to the kind it came from.
	flatRoot ir.Type
}

// New wraps src, which must convert to an object or array node (a Go map
// or slice, a yaml.MapSlice, or an *ir.Node container).
func New(src any, opts ...Option) (*Notation, error) {
	node, err := ir.FromAny(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if !node.Type.IsContainer() {
		return nil, fmt.Errorf("%w: %s is not an object or array", ErrInvalidSource, node.Type)
	}
	n := &Notation{root: node}
	for _, opt := range opts {
		opt(&n.opts)
	}
	return n, nil
}

// MustNew is New for sources known valid at compile time.
func MustNew(src any, opts ...Option) *Notation {
	n, err := New(src, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Value returns the wrapped tree.
func (n *Notation) Value() *ir.Node {
	return n.root
}

// ToAny exports the tree to plain Go values.
func (n *Notation) ToAny() any {
	return ir.ToAny(n.root)
}

// IsArrayRoot reports whether the source tree is an array.
func (n *Notation) IsArrayRoot() bool {
	return n.root.Type == ir.ArrayType
}

// Options returns the accessor's current options.
func (n *Notation) Options() Options {
	return n.opts
}

// SetOptions merges opts into the current options.
func (n *Notation) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(&n.opts)
	}
}

// Clone deep-copies the tree into a new accessor with the same options.
func (n *Notation) Clone() *Notation {
	return &Notation{root: n.root.Clone(), opts: n.opts, flatRoot: n.flatRoot}
}

// String renders the tree as YAML.
func (n *Notation) String() string {
	d, err := ir.MarshalYAML(n.root)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(d)
}
