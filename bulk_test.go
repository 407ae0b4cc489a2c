package notation

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestMerge(t *testing.T) {
	n := MustNew(map[string]any{"a": 1})
	err := n.Merge(yaml.MapSlice{
		{Key: "b", Value: 2},
		{Key: "car.model", Value: "Charger"},
		{Key: "a", Value: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	wantTree(t, n, yaml.MapSlice{
		{Key: "a", Value: 10},
		{Key: "b", Value: 2},
		{Key: "car", Value: yaml.MapSlice{{Key: "model", Value: "Charger"}}},
	})
}

func TestMergeNoOverwrite(t *testing.T) {
	n := MustNew(map[string]any{"a": 1})
	if err := n.Merge(map[string]any{"a": 10, "b": 2}, false); err != nil {
		t.Fatal(err)
	}
	wantTree(t, n, map[string]any{"a": 1, "b": 2})
}

func TestMergeDenylist(t *testing.T) {
	n := MustNew(map[string]any{})
	err := n.Merge(map[string]any{
		"__proto__":     "poison",
		"constructor":   "poison",
		"prototype":     "poison",
		"a.__proto__.b": "poison",
		"ok":            1,
	})
	if err != nil {
		t.Fatal(err)
	}
	wantTree(t, n, map[string]any{"ok": 1})
}

func TestMergeInvalid(t *testing.T) {
	n := MustNew(map[string]any{})
	if err := n.Merge([]any{1}); !errors.Is(err, ErrInvalidNotationsObject) {
		t.Errorf("array merge source = %v", err)
	}
	if err := n.Merge("x"); !errors.Is(err, ErrInvalidNotationsObject) {
		t.Errorf("scalar merge source = %v", err)
	}
}

func TestSeparate(t *testing.T) {
	n := MustNew(map[string]any{
		"keep":   1,
		"take":   map[string]any{"x": 2},
		"list":   []any{"a", "b"},
		"scalar": "s",
	})
	out, err := n.Separate([]string{"take.x", "list[1]", "scalar", "missing"})
	if err != nil {
		t.Fatal(err)
	}
	wantTree(t, n, map[string]any{
		"keep": 1,
		"take": map[string]any{},
		"list": []any{"a"},
	})
	if v, _ := out.Get("take.x"); *v.Int64 != 2 {
		t.Errorf("out take.x = %+v", v)
	}
	if v, _ := out.Get("list[1]"); v.String != "b" {
		t.Errorf("out list[1] = %+v", v)
	}
	// index 0 was never separated; it is a hole in the output
	if has, _ := out.Has("list[0]"); !has {
		t.Error("out list[0] should exist as a hole")
	}
	if def, _ := out.HasDefined("list[0]"); def {
		t.Error("out list[0] should be undefined")
	}
	if v, _ := out.Get("scalar"); v.String != "s" {
		t.Errorf("out scalar = %+v", v)
	}
}
