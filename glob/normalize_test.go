package glob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "mixed redundancy",
			in:   []string{"*", "!id", "name", "car.model", "!car.*", "id", "name", "age"},
			want: []string{"*", "!car.*", "!id"},
		},
		{
			name: "duplicates",
			in:   []string{"a", "a", "b", "a"},
			want: []string{"a", "b"},
		},
		{
			name: "negated counterpart wins",
			in:   []string{"id", "!id"},
			want: []string{"!id"},
		},
		{
			name: "positive covered by positive",
			in:   []string{"*", "id", "name"},
			want: []string{"*"},
		},
		{
			name: "negative covered by negative",
			in:   []string{"!car.*", "!car.model"},
			want: []string{"!car.*"},
		},
		{
			name: "negate everything collapses",
			in:   []string{"!*"},
			want: nil,
		},
		{
			name: "negate everything eats covered positives",
			in:   []string{"a", "!*", "b"},
			want: nil,
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "negation survives positive coverage",
			in:   []string{"*", "!model.year"},
			want: []string{"*", "!model.year"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Normalize(%v): (-want +got)\n%s", tc.in, d)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range [][]string{
		{"*", "!id", "name", "car.model", "!car.*", "id", "name", "age"},
		{"!a.*", "!*.b"},
		{"*", "!model.year", "brand"},
		{"[*]", "![2].id", "[0].id"},
	} {
		once, err := Normalize(in)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("Normalize not idempotent on %v: (-once +twice)\n%s", in, d)
		}
	}
}

func TestNormalizeError(t *testing.T) {
	if _, err := Normalize([]string{"a", ".bad"}); err == nil {
		t.Error("invalid pattern should fail")
	}
}

func TestIntersect(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want string // "" means disjoint
	}{
		{a: "!a.*", b: "!*.b", want: "!a.b"},
		{a: "!a", b: "!b", want: ""},
		{a: "!*.x", b: "!*.y", want: ""},
		{a: "!a.*", b: "!a.b.c", want: "!a.b.c"},
		{a: "![*].id", b: "![2].*", want: "![2].id"},
	} {
		x := Intersect(MustParse(tc.a), MustParse(tc.b))
		switch {
		case tc.want == "" && x != nil:
			t.Errorf("Intersect(%q, %q) = %v, want disjoint", tc.a, tc.b, x)
		case tc.want != "" && (x == nil || x.String() != tc.want):
			t.Errorf("Intersect(%q, %q) = %v, want %q", tc.a, tc.b, x, tc.want)
		}
	}
}
