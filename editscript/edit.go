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

// Package editscript is the lazy branch-and-bound edit search engine: it
// turns a pair of treenode.Node roots into a minimum-cost, flat sequence
// of atomic edits (Match, Replace, Insert, Remove).
package editscript

import (
	"fmt"

	"github.com/bollwyvl/graphtage/rangeval"
	"github.com/bollwyvl/graphtage/treenode"
)

// Edit is the closed set of edit shapes: the atomic edits (Match, Replace,
// Insert, Remove) and the two composite edits (CompoundEdit, PossibleEdits).
// Nodes outlive their edits; edits never mutate the nodes they reference.
type Edit interface {
	FromNode() treenode.Node
	ToNode() treenode.Node // nil for an edit with no target side (e.g. Remove with no parent context)

	// Cost returns the edit's current bounds. It may be called any number
	// of times and must be stable once Cost().Definitive().
	Cost() rangeval.Range

	// InitialCost is captured once at construction and used by CompoundEdit
	// to maintain an admissible running bound without re-deriving it.
	InitialCost() rangeval.Range

	// TightenBounds performs one unit of work that can only narrow Cost(),
	// never widen it. It returns false once the edit is fully definitive.
	TightenBounds() bool
}

// AtomicEdit documents the subset of Edit that ExplodeEdits ultimately
// produces: Match, Replace, Insert, or Remove. It carries no additional
// methods; it exists purely as a naming aid at call sites.
type AtomicEdit = Edit

type baseEdit struct {
	from, to      treenode.Node
	cost, initial rangeval.Range
}

func (b *baseEdit) FromNode() treenode.Node     { return b.from }
func (b *baseEdit) ToNode() treenode.Node       { return b.to }
func (b *baseEdit) Cost() rangeval.Range        { return b.cost }
func (b *baseEdit) InitialCost() rangeval.Range { return b.initial }
func (b *baseEdit) TightenBounds() bool         { return false }

// Match relabels from into to at a fixed cost (typically the Levenshtein
// distance between rendered leaves, or 0 for a structural match).
type Match struct{ baseEdit }

// NewMatch constructs a Match with the given fixed cost.
func NewMatch(from, to treenode.Node, cost int) *Match {
	r := rangeval.New(cost)
	return &Match{baseEdit{from: from, to: to, cost: r, initial: r}}
}

func (m *Match) String() string {
	return fmt.Sprintf("Match(%v, %v, cost=%d)", m.from, m.to, m.cost.Lo)
}

// Replace substitutes from with to at cost max(sizes)+1.
type Replace struct{ baseEdit }

// NewReplace constructs a Replace edit.
func NewReplace(from, to treenode.Node) *Replace {
	cost := from.TotalSize()
	if ts := to.TotalSize(); ts > cost {
		cost = ts
	}
	cost++
	r := rangeval.New(cost)
	return &Replace{baseEdit{from: from, to: to, cost: r, initial: r}}
}

func (r *Replace) String() string {
	return fmt.Sprintf("Replace(%v, %v)", r.from, r.to)
}

// Remove drops toRemove from removeFrom at cost toRemove.TotalSize()+1.
type Remove struct{ baseEdit }

// NewRemove constructs a Remove edit. removeFrom is the parent list/map
// node the removal happens within; it may be nil.
func NewRemove(toRemove, removeFrom treenode.Node) *Remove {
	cost := toRemove.TotalSize() + 1
	r := rangeval.New(cost)
	return &Remove{baseEdit{from: toRemove, to: removeFrom, cost: r, initial: r}}
}

func (r *Remove) String() string {
	return fmt.Sprintf("Remove(%v, from=%v)", r.from, r.to)
}

// Insert adds toInsert into insertInto at cost toInsert.TotalSize()+1.
type Insert struct{ baseEdit }

// NewInsert constructs an Insert edit.
func NewInsert(toInsert, insertInto treenode.Node) *Insert {
	cost := toInsert.TotalSize() + 1
	r := rangeval.New(cost)
	return &Insert{baseEdit{from: toInsert, to: insertInto, cost: r, initial: r}}
}

func (i *Insert) String() string {
	return fmt.Sprintf("Insert(%v, into=%v)", i.from, i.to)
}
