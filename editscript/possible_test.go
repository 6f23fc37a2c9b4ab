package editscript_test

import (
	"github.com/bollwyvl/graphtage/editscript"
	"github.com/bollwyvl/graphtage/treenode"

	. "gopkg.in/check.v1"
)

func (*S) TestPossibleEditsCostWhileStreamLive(c *C) {
	from := treenode.NewLeaf("abc")
	to := treenode.NewLeaf("abcd")
	p := editscript.NewPossibleEdits(from, to, sliceGen())
	cost := p.Cost()
	c.Assert(cost.Lo, Equals, 0)
	c.Assert(cost.Hi, Equals, 5) // max(3, 4) + 1
}

func (*S) TestPossibleEditsPicksCheapestAlternative(c *C) {
	from := treenode.NewLeaf("x")
	to := treenode.NewLeaf("y")
	cheap := editscript.NewMatch(from, to, 1)
	expensive := editscript.NewMatch(from, to, 9)
	p := editscript.NewPossibleEdits(from, to, sliceGen(expensive, cheap))

	for !p.Cost().Definitive() {
		if !p.TightenBounds() {
			break
		}
	}
	best := p.BestPossibility()
	c.Assert(best, Equals, cheap)
	c.Assert(p.Cost().Lo, Equals, 1)
}

func (*S) TestPossibleEditsDominancePrunesWorseAlternative(c *C) {
	from := treenode.NewLeaf("x")
	to := treenode.NewLeaf("y")
	cheap := editscript.NewMatch(from, to, 0)
	expensive := editscript.NewMatch(from, to, 100)
	// Cheap arrives first: once seen, the heap top (cost [0,0]) is
	// strictly less than expensive's [100,100], so expensive never even
	// gets pushed.
	p := editscript.NewPossibleEdits(from, to, sliceGen(cheap, expensive))

	for p.TightenBounds() {
	}
	c.Assert(p.BestPossibility(), Equals, cheap)
	c.Assert(p.Cost().Lo, Equals, 0)
	c.Assert(p.Cost().Hi, Equals, 0)
}

func (*S) TestPossibleEditsBestPossibilityNilWhenNoAlternatives(c *C) {
	from := treenode.NewLeaf("x")
	to := treenode.NewLeaf("y")
	p := editscript.NewPossibleEdits(from, to, sliceGen())
	for p.TightenBounds() {
	}
	c.Assert(p.BestPossibility(), IsNil)
}
