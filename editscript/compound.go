//
// Copyright (c) 2025 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editscript

import (
	"fmt"

	"github.com/bollwyvl/graphtage/rangeval"
	"github.com/bollwyvl/graphtage/treenode"
)

// CompoundEdit is a lazily materialised concatenation of sub-edits pulled
// from a single-pass stream. Nested CompoundEdits are flattened into the
// parent's sub-edit list as they are pulled, so the final script stays
// flat and bound arithmetic is only ever done once per atomic step.
type CompoundEdit struct {
	from, to     treenode.Node
	structuralUB int
	initial      rangeval.Range
	stream       Stream
	subEdits     []Edit
	cached       *rangeval.Range
}

// NewCompoundEdit constructs a CompoundEdit over stream. to may be nil
// when the edit has no target side (e.g. an all-Remove alignment against
// an empty list).
func NewCompoundEdit(from, to treenode.Node, stream Stream) *CompoundEdit {
	ub := from.TotalSize() + 1
	if to != nil {
		ub += to.TotalSize()
	}
	c := &CompoundEdit{from: from, to: to, structuralUB: ub, stream: stream}
	c.initial = c.Cost()
	return c
}

func (c *CompoundEdit) FromNode() treenode.Node     { return c.from }
func (c *CompoundEdit) ToNode() treenode.Node       { return c.to }
func (c *CompoundEdit) InitialCost() rangeval.Range { return c.initial }

// SubEdits forces the stream fully open (nested CompoundEdits get
// flattened in along the way) and returns the resulting flat sub-edit
// list. It does not force any of those sub-edits to tighten further.
func (c *CompoundEdit) SubEdits() []Edit {
	for c.stream != nil && c.TightenBounds() {
	}
	return c.subEdits
}

// TightenBounds pulls one more sub-edit from the stream if it is still
// live; otherwise it tightens the first sub-edit that still can.
func (c *CompoundEdit) TightenBounds() bool {
	if c.stream != nil {
		next, ok := c.stream()
		if ok {
			if nested, isCompound := next.(*CompoundEdit); isCompound {
				c.subEdits = append(c.subEdits, nested.SubEdits()...)
			} else {
				c.subEdits = append(c.subEdits, next)
			}
			c.cached = nil
			return true
		}
		c.stream = nil
		c.cached = nil
	}
	for _, child := range c.subEdits {
		if child.TightenBounds() {
			c.cached = nil
			return true
		}
	}
	return false
}

// Cost returns sum(sub_edits) once the stream is exhausted. While the
// stream is still live it returns the structural upper bound adjusted by
// how far each already-materialised sub-edit has tightened relative to
// its own initial cost — an admissible bound that only tightens as the
// stream is consumed.
func (c *CompoundEdit) Cost() rangeval.Range {
	if c.cached != nil {
		return *c.cached
	}
	var result rangeval.Range
	if c.stream == nil {
		result = rangeval.New(0)
		for _, e := range c.subEdits {
			result = result.Add(e.Cost())
		}
	} else {
		result = rangeval.Make(0, c.structuralUB)
		for _, e := range c.subEdits {
			result = result.Add(e.Cost()).Sub(e.InitialCost())
		}
	}
	c.cached = &result
	return result
}

func (c *CompoundEdit) String() string {
	return fmt.Sprintf("CompoundEdit%v", c.subEdits)
}
