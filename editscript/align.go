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

	"github.com/bollwyvl/graphtage/levenshtein"
	"github.com/bollwyvl/graphtage/treenode"
)

// Edits dispatches on from's dynamic type to build the edit between two
// nodes. This is a free function, not a method on treenode.Node, to avoid
// a treenode<->editscript import cycle (treenode knows nothing of Edit).
func Edits(from, to treenode.Node) Edit {
	switch f := from.(type) {
	case *treenode.Leaf:
		return leafEdits(f, to)
	case *treenode.KeyValuePair:
		return keyValuePairEdits(f, to)
	case treenode.Listlike:
		return listlikeEdits(f, to)
	default:
		panic(fmt.Sprintf("editscript: unhandled node type %T", from))
	}
}

func leafEdits(from *treenode.Leaf, to treenode.Node) Edit {
	if t, ok := to.(*treenode.Leaf); ok {
		return NewMatch(from, t, levenshtein.Distance(from.Render(), t.Render()))
	}
	return NewReplace(from, to)
}

// keyValuePairEdits panics when to is not a KeyValuePair: pairing a
// KeyValuePair with anything else is an internal invariant violation that
// Edits never produces, since listlikeEdits only aligns a Map against
// another Map.
func keyValuePairEdits(from *treenode.KeyValuePair, to treenode.Node) Edit {
	t, ok := to.(*treenode.KeyValuePair)
	if !ok {
		panic(fmt.Sprintf("editscript: KeyValuePair.Edits called with non-KeyValuePair counterpart %T", to))
	}
	return NewCompoundEdit(from, to, sliceStream([]Edit{
		NewMatch(from, t, 0),
		Edits(from.Key, t.Key),
		Edits(from.Value, t.Value),
	}))
}

func listlikeEdits(from treenode.Listlike, to treenode.Node) Edit {
	t, ok := to.(treenode.Listlike)
	if !ok {
		return NewReplace(from, to)
	}
	_, fromMap := from.(*treenode.Map)
	if _, toMap := t.(*treenode.Map); fromMap != toMap {
		return NewReplace(from, to)
	}
	return NewPossibleEdits(from, t, alignStream(from, t, from.ListChildren(), t.ListChildren()))
}

// alignStream enumerates candidate alignments of l1 against l2, the
// children of the fixed pair (self, other). It reproduces the four-case
// recursion: shed the head of l1 via Remove, shed the head of l2 via
// Insert, and then either — when both are down to their last element —
// offer Replace and the deep edit of the two heads, or otherwise take every
// pairing of {Replace head, deep-edit head} against every tail alignment.
//
// All four branches feed the same outer PossibleEdits, so nothing here
// picks a winner; it only ever proposes alternatives for the caller to
// prune by cost.
func alignStream(self, other treenode.Node, l1, l2 []treenode.Node) Stream {
	switch {
	case len(l1) == 0 && len(l2) == 0:
		return emptyStream()
	case len(l2) == 0:
		edits := make([]Edit, len(l1))
		for i, n := range l1 {
			edits[i] = NewRemove(n, self)
		}
		return onceStream(NewCompoundEdit(self, nil, sliceStream(edits)))
	case len(l1) == 0:
		edits := make([]Edit, len(l2))
		for i, n := range l2 {
			edits[i] = NewInsert(n, self)
		}
		return onceStream(NewCompoundEdit(self, other, sliceStream(edits)))
	}

	removeHead := NewRemove(l1[0], self)
	stageA := wrapStream(self, other, removeHead, alignStream(self, other, l1[1:], l2))

	insertHead := NewInsert(l2[0], self)
	stageB := wrapStream(self, other, insertHead, alignStream(self, other, l1, l2[1:]))

	var stageCD Stream
	if len(l1) == 1 && len(l2) == 1 {
		stageCD = sliceStream([]Edit{NewReplace(l1[0], l2[0]), Edits(l1[0], l2[0])})
	} else {
		matches := []Edit{NewReplace(l1[0], l2[0]), Edits(l1[0], l2[0])}
		tail := alignStream(self, other, l1[1:], l2[1:])
		stageCD = productStream(self, other, matches, tail)
	}

	return concatStream(stageA, stageB, stageCD)
}

// wrapStream prefixes head onto every edit pulled from tail, wrapping the
// pair in a CompoundEdit against the shared (self, other) nodes.
func wrapStream(self, other treenode.Node, head Edit, tail Stream) Stream {
	return func() (Edit, bool) {
		p, ok := tail()
		if !ok {
			return nil, false
		}
		return NewCompoundEdit(self, other, pairStream(head, p)), true
	}
}

// productStream pairs each of matches against every alternative tail
// alignment, in matches-major order. The cartesian product forces tail to
// be drained up front so it can be replayed once per match — the one
// deliberate break in the generator's laziness the enumeration relies on
// (see §4.6's closing note: the source itself explodes this way).
func productStream(self, other treenode.Node, matches []Edit, tail Stream) Stream {
	possibilities := drain(tail)
	i, j := 0, 0
	return func() (Edit, bool) {
		if i >= len(matches) || len(possibilities) == 0 {
			return nil, false
		}
		m, p := matches[i], possibilities[j]
		j++
		if j >= len(possibilities) {
			j = 0
			i++
		}
		return NewCompoundEdit(self, other, pairStream(m, p)), true
	}
}
