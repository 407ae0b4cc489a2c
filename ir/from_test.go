package ir

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestFromAnyScalars(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want Type
	}{
		{in: nil, want: NullType},
		{in: true, want: BoolType},
		{in: "s", want: StringType},
		{in: 3, want: NumberType},
		{in: int64(3), want: NumberType},
		{in: uint16(3), want: NumberType},
		{in: 3.5, want: NumberType},
		{in: float32(3.5), want: NumberType},
	} {
		y, err := FromAny(tc.in)
		if err != nil {
			t.Errorf("FromAny(%v): %v", tc.in, err)
			continue
		}
		if y.Type != tc.want {
			t.Errorf("FromAny(%v).Type = %v, want %v", tc.in, y.Type, tc.want)
		}
	}
}

func TestFromAnyMapSliceOrder(t *testing.T) {
	in := yaml.MapSlice{
		{Key: "z", Value: 1},
		{Key: "a", Value: yaml.MapSlice{{Key: "inner", Value: "v"}}},
		{Key: "m", Value: []any{1, "two"}},
	}
	y, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"z", "a", "m"}, y.Fields); d != "" {
		t.Errorf("field order: (-want +got)\n%s", d)
	}
	if Get(y, "m").Type != ArrayType || len(Get(y, "m").Values) != 2 {
		t.Errorf("m = %+v", Get(y, "m"))
	}
}

func TestFromAnyMapSorted(t *testing.T) {
	y, err := FromAny(map[string]any{"b": 1, "a": 2, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "b", "c"}, y.Fields); d != "" {
		t.Errorf("field order: (-want +got)\n%s", d)
	}
}

func TestFromAnyReflect(t *testing.T) {
	y, err := FromAny([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ArrayType || y.Values[1].String != "b" {
		t.Errorf("slice: %+v", y)
	}
	y, err = FromAny(map[string]int{"k": 7})
	if err != nil {
		t.Fatal(err)
	}
	if Get(y, "k") == nil || *Get(y, "k").Int64 != 7 {
		t.Errorf("typed map: %+v", y)
	}
	if _, err := FromAny(map[int]string{1: "x"}); err == nil {
		t.Error("int-keyed map should fail")
	}
	if _, err := FromAny(make(chan int)); err == nil {
		t.Error("chan should fail")
	}
}

func TestFromKeyVals(t *testing.T) {
	y, err := FromKeyVals("z", 1, "a", "two")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"z", "a"}, y.Fields); d != "" {
		t.Errorf("field order: (-want +got)\n%s", d)
	}
	if _, err := FromKeyVals("odd"); err == nil {
		t.Error("odd argument count should fail")
	}
	if _, err := FromKeyVals(1, "v"); err == nil {
		t.Error("non-string key should fail")
	}
}

func TestToAnyRoundTrip(t *testing.T) {
	obj := Object()
	obj.SetField("z", FromInt(1))
	obj.SetField("a", FromBool(true))
	arr := Array()
	arr.SetIndex(0, FromString("x"))
	arr.SetIndex(2, FromFloat(1.5)) // leaves an Undefined hole at 1
	obj.SetField("list", arr)

	out := ToAny(obj)
	ms, ok := out.(yaml.MapSlice)
	if !ok {
		t.Fatalf("ToAny = %T", out)
	}
	if ms[0].Key != "z" || ms[1].Key != "a" || ms[2].Key != "list" {
		t.Errorf("key order: %v", ms)
	}
	list := ms[2].Value.([]any)
	if list[1] != nil {
		t.Errorf("hole should export as nil, got %v", list[1])
	}

	back, err := FromAny(out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(obj.Fields, back.Fields); d != "" {
		t.Errorf("round trip fields: (-want +got)\n%s", d)
	}
}

func TestCompare(t *testing.T) {
	a := Object()
	a.SetField("x", FromInt(1))
	b := Object()
	b.SetField("x", FromFloat(1))
	if !Equal(a, b) {
		t.Error("int 1 and float 1 should compare equal")
	}
	b.SetField("y", Null())
	if Compare(a, b) >= 0 {
		t.Error("shorter object should sort first")
	}
	if Compare(FromString("a"), FromString("b")) >= 0 {
		t.Error("string order")
	}
	if Compare(nil, Null()) >= 0 {
		t.Error("nil sorts before any node")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	src := []byte("z: 1\na:\n  inner: [1, two]\n")
	y, err := UnmarshalYAML(src)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"z", "a"}, y.Fields); d != "" {
		t.Errorf("document order: (-want +got)\n%s", d)
	}
	out, err := MarshalYAML(y)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(y, back) {
		t.Errorf("round trip changed tree:\n%s", out)
	}
	js, err := MarshalJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	if js[0] != '{' {
		t.Errorf("MarshalJSON = %s", js)
	}
}
