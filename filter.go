package notation

import (
	"fmt"

	"github.com/notatree/notation/debug"
	"github.com/notatree/notation/glob"
	"github.com/notatree/notation/ir"
	"github.com/notatree/notation/note"
)

// Filter projects the tree through a glob pattern list into a new
// accessor, leaving the source unmodified. The list is normalized first;
// an empty or negate-everything list yields an empty container of the
// source's kind, and a sole bare wildcard yields a full deep clone.
// Otherwise patterns apply in ascending priority order: a leading bare
// wildcard seeds the result with a clone, wildcard-free patterns apply
// directly, and wildcard-bearing ones drive a deep walk of the source.
func (n *Notation) Filter(patterns []string) (*Notation, error) {
	globs, err := glob.ParseAll(patterns)
	if err != nil {
		return nil, err
	}
	norm := glob.NormalizeGlobs(globs)
	if debug.Filter() {
		debug.Logf("filter: normalized %v -> %v\n", patterns, glob.Strings(norm))
	}
	res := &Notation{root: ir.Container(n.root.Type), opts: n.opts}
	if len(norm) == 0 {
		return res, nil
	}
	if !norm[0].Negated && norm[0].IsEverything() {
		if len(norm) == 1 {
			return n.Clone(), nil
		}
		res.root.Replace(n.root)
		norm = norm[1:]
	}
	for _, g := range norm {
		if err := res.apply(n, g); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (res *Notation) apply(src *Notation, g *glob.Glob) error {
	if !g.HasWildcard() {
		if !g.Negated {
			ins := src.inspectGet(g.Notes)
			if !ins.Has {
				return nil
			}
			return res.setPath(g.Notes, ins.Value.Clone(), Overwrite)
		}
		return res.removeNegated(g.Notes, g.Empty)
	}
	return res.applyWalk(src, g)
}

// applyWalk deep-walks the source, arrays highest index first so negated
// splices in the result cannot shift indices the walk still has to probe.
// Every leaf path is probed at the glob's own level; once a negated
// removal deletes an ancestor, the remaining prefixes under it are
// skipped.
func (res *Notation) applyWalk(src *Notation, g *glob.Glob) error {
	removed := map[string]bool{}
	var werr error
	eachLeaf(src.root, nil, true, func(leaf note.Path, _ *ir.Node) bool {
		for lvl := 1; lvl <= len(leaf); lvl++ {
			prefix := leaf[:lvl]
			if removed[prefix.String()] {
				return true
			}
			if !g.MatchesPrefix(prefix) {
				continue
			}
			if g.Negated {
				if err := res.removeNegated(prefix, g.Empty); err != nil {
					werr = err
					return false
				}
				if g.Empty == glob.EmptyNone {
					removed[prefix.String()] = true
				}
				return true
			}
			ins := src.inspectGet(prefix)
			if ins.Has {
				if err := res.setPath(prefix, ins.Value.Clone(), Overwrite); err != nil {
					werr = err
					return false
				}
			}
			return true
		}
		return true
	})
	return werr
}

// removeNegated applies a negated pattern to the result: a pattern that
// ended in an everything-beneath wildcard empties the addressed container,
// anything else deletes the member outright.
func (res *Notation) removeNegated(p note.Path, empty glob.EmptyKind) error {
	if empty == glob.EmptyNone {
		res.inspectRemove(p)
		return nil
	}
	kind := ir.ObjectType
	if empty == glob.EmptyArray {
		kind = ir.ArrayType
	}
	ins := res.inspectGet(p)
	if !ins.Has {
		return nil
	}
	if res.opts.Strict && ins.Type != kind {
		return fmt.Errorf("%w: %s is %s, emptied as %s", ErrIntegrity, p, ins.Type, kind)
	}
	return res.setPath(p, ir.Container(kind), Overwrite)
}
