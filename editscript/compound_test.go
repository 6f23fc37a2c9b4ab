package editscript_test

import (
	"github.com/bollwyvl/graphtage/editscript"
	"github.com/bollwyvl/graphtage/treenode"

	. "gopkg.in/check.v1"
)

// sliceGen turns a fixed slice of edits into an editscript.Stream, for
// tests that want to drive CompoundEdit/PossibleEdits without a full
// list-alignment enumeration.
func sliceGen(edits ...editscript.Edit) editscript.Stream {
	i := 0
	return func() (editscript.Edit, bool) {
		if i >= len(edits) {
			return nil, false
		}
		e := edits[i]
		i++
		return e, true
	}
}

func (*S) TestCompoundEditFlattensNestedCompounds(c *C) {
	from := treenode.NewList(nil)
	to := treenode.NewList(nil)

	inner := editscript.NewCompoundEdit(from, to, sliceGen(
		editscript.NewMatch(treenode.NewLeaf(1), treenode.NewLeaf(1), 0),
		editscript.NewMatch(treenode.NewLeaf(2), treenode.NewLeaf(2), 0),
	))
	outer := editscript.NewCompoundEdit(from, to, sliceGen(
		inner,
		editscript.NewMatch(treenode.NewLeaf(3), treenode.NewLeaf(3), 0),
	))

	subs := outer.SubEdits()
	c.Assert(subs, HasLen, 3) // inner's two matches flattened in, plus the trailing one
}

func (*S) TestCompoundEditCostSumsOnceExhausted(c *C) {
	from := treenode.NewList(nil)
	a := editscript.NewMatch(treenode.NewLeaf("foo"), treenode.NewLeaf("bar"), 3)
	b := editscript.NewMatch(treenode.NewLeaf("1"), treenode.NewLeaf("2"), 1)
	ce := editscript.NewCompoundEdit(from, nil, sliceGen(a, b))

	for ce.TightenBounds() {
	}
	c.Assert(ce.Cost().Definitive(), Equals, true)
	c.Assert(ce.Cost().Lo, Equals, 4)
}

func (*S) TestCompoundEditCostIsAdmissibleWhileStreamLive(c *C) {
	from := treenode.NewLeaf("abc")
	to := treenode.NewLeaf("xyz")
	ce := editscript.NewCompoundEdit(from, to, sliceGen(
		editscript.NewMatch(treenode.NewLeaf("a"), treenode.NewLeaf("b"), 1),
	))

	before := ce.Cost()
	c.Assert(before.Definitive(), Equals, false)
	ce.TightenBounds()
	after := ce.Cost()
	c.Assert(after.Lo >= before.Lo, Equals, true)
	c.Assert(after.Hi <= before.Hi, Equals, true)
}
