// Package notation reads, writes and reshapes nested data through dotted
// path strings.
//
// A Notation wraps an object or array tree. Paths name locations in that
// tree one note at a time: ".field" or "field" for object keys, "[0]" for
// array indices, "['some key']" for keys that are not bare identifiers.
//
//	n := notation.MustNew(map[string]any{})
//	n.Set("car.brand", "Ford")
//	n.Set("car.wheels[3].pressure", 32)
//	v, _ := n.Get("car.wheels[3].pressure")
//
// Beyond get/set/remove the accessor supports merge, separate, flatten and
// expand, copy/move/rename across trees, deep iteration, and filtering by
// glob patterns ("car.*", "![2].id") with a full pattern algebra in the
// glob subpackage. Path string manipulation lives in the note subpackage.
package notation
