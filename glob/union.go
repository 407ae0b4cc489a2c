package glob

import (
	"github.com/notatree/notation/debug"
)

// Union combines two pattern lists so that the result selects exactly what
// either list selects on its own, for every path. Both sides are
// normalized first; positives from both carry over (redundancy falls to
// the final normalization), while a negated pattern survives only if the
// other side denies its whole domain too, or never selects it at all.
// Overlapping negated pairs across the two sides contribute their
// intersection, since the union denies exactly the common ground of the
// two denials. Union is commutative up to normalization.
func Union(a, b []string) ([]string, error) {
	ga, err := ParseAll(a)
	if err != nil {
		return nil, err
	}
	gb, err := ParseAll(b)
	if err != nil {
		return nil, err
	}
	return Strings(UnionGlobs(ga, gb)), nil
}

// UnionGlobs is Union over parsed patterns.
func UnionGlobs(a, b []*Glob) []*Glob {
	na := NormalizeGlobs(a)
	nb := NormalizeGlobs(b)
	res := unionSide(na, nb)
	res = append(res, unionSide(nb, na)...)
	for _, gi := range na {
		if !gi.Negated {
			continue
		}
		for _, gj := range nb {
			if !gj.Negated || gi.Covers(gj) || gj.Covers(gi) {
				continue
			}
			if x := Intersect(gi, gj); x != nil {
				if debug.Union() {
					debug.Logf("union: intersection %s of %s and %s\n", x, gi, gj)
				}
				res = append(res, x)
			}
		}
	}
	return NormalizeGlobs(res)
}

func unionSide(xs, ys []*Glob) []*Glob {
	var keep []*Glob
	for _, g := range xs {
		if !g.Negated {
			keep = append(keep, g)
			continue
		}
		denied := false
		for _, h := range ys {
			if h.Negated && h.Covers(g) {
				denied = true
				break
			}
		}
		if denied {
			keep = append(keep, g)
			continue
		}
		selected := false
		for _, h := range ys {
			if !h.Negated && h.Covers(g) {
				selected = true
				break
			}
		}
		if !selected {
			keep = append(keep, g)
		} else if debug.Union() {
			debug.Logf("union: %s dropped, other side selects its domain\n", g)
		}
	}
	return keep
}
