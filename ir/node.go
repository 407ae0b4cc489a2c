package ir

import (
	"strconv"
	"strings"
)

// Node is one value in a tree. It works as a recursive tagged union: the
// populated fields depend on Type. Object nodes keep parallel Fields/Values
// slices so key order is insertion order; Array nodes use Values only.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Undefined is the present-but-empty sentinel: a key or list slot can hold
// it and still count as defined for membership checks.
func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

// Container returns an empty container of type t, which must be ObjectType
// or ArrayType.
func Container(t Type) *Node {
	return &Node{Type: t}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = make([]string, len(y.Fields))
	copy(dst.Fields, y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	} else {
		dst.Float64 = nil
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	} else {
		dst.Int64 = nil
	}
	dst.Bool = y.Bool
	return dst
}

// FieldIndex returns the position of field in an object node, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// SetField sets field to v on an object node, replacing an existing entry
// in place or appending a new one.
func (y *Node) SetField(field string, v *Node) {
	v.Parent = y
	v.ParentField = field
	if i := y.FieldIndex(field); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Fields)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// DeleteField removes field from an object node in place, preserving the
// order of remaining fields. Reports whether the field was present.
func (y *Node) DeleteField(field string) bool {
	i := y.FieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	return true
}

// At returns the element at index i of an array node, or nil when out of
// bounds.
func (y *Node) At(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetIndex sets index i of an array node, extending the array with
// Undefined holes when i is beyond its length.
func (y *Node) SetIndex(i int, v *Node) {
	for len(y.Values) <= i {
		hole := Undefined()
		hole.Parent = y
		hole.ParentIndex = len(y.Values)
		y.Values = append(y.Values, hole)
	}
	v.Parent = y
	v.ParentIndex = i
	y.Values[i] = v
}

// InsertIndex splices v into an array node at index i, shifting later
// entries up. An index at or beyond the length appends.
func (y *Node) InsertIndex(i int, v *Node) {
	if i >= len(y.Values) {
		y.SetIndex(i, v)
		return
	}
	if i < 0 {
		i = 0
	}
	v.Parent = y
	y.Values = append(y.Values, nil)
	copy(y.Values[i+1:], y.Values[i:])
	y.Values[i] = v
	y.reindex(i)
}

// RemoveIndex removes index i from an array node. With splice, later
// entries shift down; otherwise the slot becomes an Undefined hole.
func (y *Node) RemoveIndex(i int, splice bool) bool {
	if i < 0 || i >= len(y.Values) {
		return false
	}
	if splice {
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		y.reindex(i)
		return true
	}
	hole := Undefined()
	hole.Parent = y
	hole.ParentIndex = i
	y.Values[i] = hole
	return true
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// Replace overwrites y's content with src's, keeping y's identity and
// position in its parent. Used when an operation swaps out a whole tree
// behind an existing reference.
func (y *Node) Replace(src *Node) {
	parent, pi, pf := y.Parent, y.ParentIndex, y.ParentField
	src.CloneTo(y)
	y.Parent, y.ParentIndex, y.ParentField = parent, pi, pf
}

// Visit walks y pre/post order. f is called with isPost false before
// children and true after; returning false from the pre call skips the
// node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	r := y
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Path renders the node's position as a notation string. The root renders
// as "".
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path()
		if quoteField(f) {
			f = "'" + strings.Replace(f, "'", "\\'", -1) + "'"
			if prefix == "" {
				return "[" + f + "]"
			}
			return prefix + "[" + f + "]"
		}
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func quoteField(f string) bool {
	if f == "" {
		return true
	}
	for i := 0; i < len(f); i++ {
		c := f[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_' || c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}
