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

	"github.com/bollwyvl/graphtage/treenode"
)

// Diff holds the two diffed tree roots and the flattened atomic edit
// script between them.
type Diff struct {
	FromRoot, ToRoot treenode.Node
	Edits            []AtomicEdit
}

// Cost is the sum of the atomic edits' upper bounds. Once the root edit
// has been fully exploded (as NewDiff always does), every atomic edit is
// definitive, so this equals the optimal transformation cost.
func (d *Diff) Cost() int {
	total := 0
	for _, e := range d.Edits {
		total += e.Cost().Hi
	}
	return total
}

func (d *Diff) String() string {
	return fmt.Sprintf("Diff(from=%v, to=%v, edits=%v)", d.FromRoot, d.ToRoot, d.Edits)
}

// NewDiff computes the diff between from and to: builds the root edit via
// Edits, forces it fully tight, and flattens the result into an atomic
// edit script.
func NewDiff(from, to treenode.Node) *Diff {
	root := Edits(from, to)
	return &Diff{
		FromRoot: from,
		ToRoot:   to,
		Edits:    ExplodeEdits(root),
	}
}

// ExplodeEdits flattens e into the ordered sequence of atomic edits
// (Match, Replace, Insert, Remove) it ultimately resolves to. A
// CompoundEdit explodes each of its sub-edits in order; a PossibleEdits is
// tightened until its cost is definitive (or it can no longer tighten),
// then its best possibility is exploded in turn.
func ExplodeEdits(e Edit) []AtomicEdit {
	switch edit := e.(type) {
	case *CompoundEdit:
		var out []AtomicEdit
		for _, sub := range edit.SubEdits() {
			out = append(out, ExplodeEdits(sub)...)
		}
		return out
	case *PossibleEdits:
		for !edit.Cost().Definitive() {
			if !edit.TightenBounds() {
				break
			}
		}
		best := edit.BestPossibility()
		if best == nil {
			return []AtomicEdit{edit}
		}
		return ExplodeEdits(best)
	default:
		return []AtomicEdit{e}
	}
}

// Comparison is the result of Compare.
type Comparison int

const (
	// Incomparable means neither edit's cost is provably less than the
	// other's, the two are not both definitive, and neither edit can be
	// tightened any further (e.g. a PossibleEdits that never produced an
	// alternative and so reports an empty range).
	Incomparable Comparison = iota
	Less
	Greater
	Equal
)

func (c Comparison) String() string {
	switch c {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	case Equal:
		return "Equal"
	default:
		return "Incomparable"
	}
}

// Compare orders a and b by cost, tightening both as needed until the
// question resolves. This is the engine's fundamental refinement driver —
// asking whether two edits compare forces the search to do useful work —
// made an explicit call instead of an overloaded operator so that the
// side effect is visible at every call site.
func Compare(a, b Edit) Comparison {
	for {
		ca, cb := a.Cost(), b.Cost()
		if ca.Less(cb) {
			return Less
		}
		if cb.Less(ca) {
			return Greater
		}
		if ca.Definitive() && cb.Definitive() {
			if ca.Lo == cb.Lo {
				return Equal
			}
			return Incomparable
		}
		tightenedA := a.TightenBounds()
		tightenedB := b.TightenBounds()
		if !tightenedA && !tightenedB {
			return Incomparable
		}
	}
}
