package glob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnion(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b []string
		want []string
	}{
		{
			name: "identical sides",
			a:    []string{"*", "!id"},
			b:    []string{"*", "!id"},
			want: []string{"*", "!id"},
		},
		{
			name: "one side denies, other selects all",
			a:    []string{"*", "!id"},
			b:    []string{"*"},
			want: []string{"*"},
		},
		{
			name: "disjoint denials cancel",
			a:    []string{"*", "!a"},
			b:    []string{"*", "!b"},
			want: []string{"*"},
		},
		{
			name: "overlapping denials keep their intersection",
			a:    []string{"*", "!a.*"},
			b:    []string{"*", "!*.b"},
			want: []string{"*", "!a.b"},
		},
		{
			name: "positives accumulate",
			a:    []string{"car.model"},
			b:    []string{"car.brand"},
			want: []string{"car.brand", "car.model"},
		},
		{
			name: "empty side",
			a:    nil,
			b:    []string{"name"},
			want: []string{"name"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Union(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Union(%v, %v): (-want +got)\n%s", tc.a, tc.b, d)
			}
		})
	}
}

func TestUnionCommutative(t *testing.T) {
	cases := [][2][]string{
		{{"*", "!a.*"}, {"*", "!*.b"}},
		{{"*", "!id"}, {"name", "age"}},
		{{"car.model", "!car.year"}, {"car.*"}},
		{{"!*"}, {"a"}},
	}
	for _, c := range cases {
		ab, err := Union(c[0], c[1])
		if err != nil {
			t.Fatal(err)
		}
		ba, err := Union(c[1], c[0])
		if err != nil {
			t.Fatal(err)
		}
		nab, err := Normalize(ab)
		if err != nil {
			t.Fatal(err)
		}
		nba, err := Normalize(ba)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(nab, nba); d != "" {
			t.Errorf("Union(%v, %v) not commutative: (-ab +ba)\n%s", c[0], c[1], d)
		}
	}
}

func TestUnionError(t *testing.T) {
	if _, err := Union([]string{"ok"}, []string{"["}); err == nil {
		t.Error("invalid pattern should fail")
	}
}
