package ir

import (
	"testing"
)

func TestSetFieldOrder(t *testing.T) {
	obj := Object()
	obj.SetField("b", FromInt(1))
	obj.SetField("a", FromInt(2))
	obj.SetField("c", FromInt(3))
	obj.SetField("a", FromInt(4)) // replace keeps position
	want := []string{"b", "a", "c"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("fields = %v", obj.Fields)
	}
	for i, f := range want {
		if obj.Fields[i] != f {
			t.Errorf("field %d = %q, want %q", i, obj.Fields[i], f)
		}
	}
	if v := Get(obj, "a"); v == nil || *v.Int64 != 4 {
		t.Errorf("a = %v", v)
	}
}

func TestDeleteField(t *testing.T) {
	obj := Object()
	obj.SetField("a", FromInt(1))
	obj.SetField("b", FromInt(2))
	obj.SetField("c", FromInt(3))
	if !obj.DeleteField("b") {
		t.Fatal("delete b")
	}
	if obj.DeleteField("b") {
		t.Fatal("double delete b")
	}
	if len(obj.Fields) != 2 || obj.Fields[0] != "a" || obj.Fields[1] != "c" {
		t.Errorf("fields = %v", obj.Fields)
	}
	if obj.Values[1].ParentIndex != 1 {
		t.Errorf("reindex: c.ParentIndex = %d", obj.Values[1].ParentIndex)
	}
}

func TestSetIndexExtends(t *testing.T) {
	arr := Array()
	arr.SetIndex(2, FromString("x"))
	if len(arr.Values) != 3 {
		t.Fatalf("len = %d", len(arr.Values))
	}
	if arr.Values[0].Type != UndefinedType || arr.Values[1].Type != UndefinedType {
		t.Errorf("holes = %v, %v", arr.Values[0].Type, arr.Values[1].Type)
	}
	if arr.Values[2].String != "x" {
		t.Errorf("value = %+v", arr.Values[2])
	}
}

func TestInsertIndex(t *testing.T) {
	arr := Array()
	arr.SetIndex(0, FromInt(1))
	arr.SetIndex(1, FromInt(3))
	arr.InsertIndex(1, FromInt(2))
	got := make([]int64, len(arr.Values))
	for i, v := range arr.Values {
		got[i] = *v.Int64
		if v.ParentIndex != i {
			t.Errorf("ParentIndex at %d = %d", i, v.ParentIndex)
		}
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("values = %v", got)
	}
	arr.InsertIndex(5, FromInt(9))
	if len(arr.Values) != 6 || arr.Values[4].Type != UndefinedType {
		t.Errorf("append past end: %v", len(arr.Values))
	}
}

func TestRemoveIndex(t *testing.T) {
	mk := func() *Node {
		arr := Array()
		arr.SetIndex(0, FromString("a"))
		arr.SetIndex(1, FromString("b"))
		arr.SetIndex(2, FromString("c"))
		return arr
	}

	arr := mk()
	if !arr.RemoveIndex(1, true) {
		t.Fatal("splice remove")
	}
	if len(arr.Values) != 2 || arr.Values[1].String != "c" || arr.Values[1].ParentIndex != 1 {
		t.Errorf("after splice: %v", arr.Values)
	}

	arr = mk()
	if !arr.RemoveIndex(1, false) {
		t.Fatal("hole remove")
	}
	if len(arr.Values) != 3 || arr.Values[1].Type != UndefinedType || arr.Values[2].String != "c" {
		t.Errorf("after hole: %v", arr.Values)
	}

	if arr.RemoveIndex(9, true) {
		t.Error("out of range remove should report false")
	}
}

func TestCloneIndependence(t *testing.T) {
	obj := Object()
	inner := Object()
	inner.SetField("x", FromInt(1))
	obj.SetField("a", inner)
	c := obj.Clone()
	Get(Get(c, "a"), "x").Int64 = nil
	Get(c, "a").SetField("y", FromInt(2))
	if Get(Get(obj, "a"), "x").Int64 == nil {
		t.Error("clone shares scalar storage")
	}
	if Get(Get(obj, "a"), "y") != nil {
		t.Error("clone shares container storage")
	}
	if !Equal(obj.Clone(), obj) {
		t.Error("clone not equal to source")
	}
}

func TestReplaceKeepsIdentity(t *testing.T) {
	obj := Object()
	child := Object()
	child.SetField("x", FromInt(1))
	obj.SetField("a", child)
	repl := Array()
	repl.SetIndex(0, FromString("v"))
	child.Replace(repl)
	if got := Get(obj, "a"); got != child {
		t.Fatal("identity lost")
	}
	if child.Type != ArrayType || child.Parent != obj || child.ParentField != "a" {
		t.Errorf("child = %+v", child)
	}
}

func TestVisit(t *testing.T) {
	obj := Object()
	inner := Object()
	inner.SetField("x", FromInt(1))
	obj.SetField("a", inner)
	obj.SetField("b", FromString("s"))

	var pre, post int
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("pre/post = %d/%d, want 4/4", pre, post)
	}

	// a false pre return skips the node's children, not its post call
	pre, post = 0, 0
	err = obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return y != inner, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 3 || post != 3 {
		t.Errorf("pre/post with skip = %d/%d, want 3/3", pre, post)
	}
}

func TestToMap(t *testing.T) {
	obj := Object()
	obj.SetField("a", FromInt(1))
	obj.SetField("b", FromString("s"))
	m := ToMap(obj)
	if len(m) != 2 || m["a"] != Get(obj, "a") || m["b"] != Get(obj, "b") {
		t.Errorf("ToMap = %v", m)
	}
	if ToMap(Array()) != nil {
		t.Error("ToMap on a non-object should be nil")
	}
}

func TestNodePath(t *testing.T) {
	obj := Object()
	arr := Array()
	leafParent := Object()
	leafParent.SetField("deep key", FromInt(1))
	arr.SetIndex(0, leafParent)
	obj.SetField("items", arr)
	leaf := Get(leafParent, "deep key")
	if got := leaf.Path(); got != "items[0]['deep key']" {
		t.Errorf("Path() = %q", got)
	}
	if got := obj.Path(); got != "" {
		t.Errorf("root Path() = %q", got)
	}
	if leaf.Root() != obj {
		t.Error("Root() did not reach the top")
	}
}
