package editscript_test

import (
	"github.com/bollwyvl/graphtage/editscript"
	"github.com/bollwyvl/graphtage/treenode"

	"github.com/google/go-cmp/cmp"
	. "gopkg.in/check.v1"
)

// renderNode converts a Node back into a plain host value (int, string,
// []any, map[string]any), so reconstructed trees can be compared against
// the original host object with cmp.Diff instead of a hand-rolled walker.
func renderNode(n treenode.Node) any {
	switch v := n.(type) {
	case *treenode.Leaf:
		return v.Value
	case *treenode.List:
		out := make([]any, len(v.Children))
		for i, child := range v.Children {
			out[i] = renderNode(child)
		}
		return out
	case *treenode.Map:
		out := make(map[string]any, len(v.Pairs))
		for _, p := range v.Pairs {
			out[p.Key.Render()] = renderNode(p.Value)
		}
		return out
	case *treenode.KeyValuePair:
		return map[string]any{v.Key.Render(): renderNode(v.Value)}
	default:
		panic("editscript_test: unhandled node kind in renderNode")
	}
}

func (*S) TestRenderNodeRoundTrips(c *C) {
	v := map[string]any{"a": []any{1, 2, "x"}, "b": "hello"}
	n := mustBuild(c, v)
	c.Assert(cmp.Diff(v, renderNode(n)), Equals, "")
}

// TestAtomicScriptReconstructsAllInserts applies an Insert-only script
// (spec scenario 2's shape) directly to an empty slice and checks the
// result renders identically to the to-tree — the Atomic-script
// reconstruction invariant (§8) for the tractable all-insert case.
func (*S) TestAtomicScriptReconstructsAllInserts(c *C) {
	from := mustBuild(c, []any{})
	to := mustBuild(c, []any{1, 2, 3})

	d := editscript.NewDiff(from, to)
	var rebuilt []any
	for _, e := range d.Edits {
		ins, ok := e.(*editscript.Insert)
		c.Assert(ok, Equals, true)
		rebuilt = append(rebuilt, renderNode(ins.FromNode()))
	}
	c.Assert(cmp.Diff([]any{1, 2, 3}, rebuilt), Equals, "")
}

// TestAtomicScriptReconstructsAllRemoves mirrors the above for scenario 3:
// removing every element of the from-tree leaves nothing, matching the
// empty to-tree.
func (*S) TestAtomicScriptReconstructsAllRemoves(c *C) {
	from := mustBuild(c, []any{1, 2, 3})
	to := mustBuild(c, []any{})

	d := editscript.NewDiff(from, to)
	removed := make([]any, 0, len(d.Edits))
	for _, e := range d.Edits {
		rem, ok := e.(*editscript.Remove)
		c.Assert(ok, Equals, true)
		removed = append(removed, renderNode(rem.FromNode()))
	}
	c.Assert(cmp.Diff([]any{1, 2, 3}, removed), Equals, "")
	c.Assert(renderNode(to), DeepEquals, []any{})
}

func (*S) TestAlignStreamOrderMirrorsDepthFirstLeftToRight(c *C) {
	from := mustBuild(c, []any{"a", "b"})
	to := mustBuild(c, []any{"a", "c"})

	d := editscript.NewDiff(from, to)
	c.Assert(d.Edits, HasLen, 2)
	m0, ok := d.Edits[0].(*editscript.Match)
	c.Assert(ok, Equals, true)
	c.Assert(m0.FromNode().(*treenode.Leaf).Value, Equals, "a")
}
