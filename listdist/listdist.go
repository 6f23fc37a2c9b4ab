//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
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

// Package listdist estimates the cost of aligning two node sequences with
// a prefix-recursion DP under the same cost model as the editscript
// engine: inserting or removing a node costs its total size plus one, and
// relabelling costs the Levenshtein distance between rendered leaves. It
// is a fast ballpark rather than the exact optimum: matched container
// children are priced as whole replaces instead of being deep-edited, so
// the estimate is exact for flat lists of leaves and an upper bound hint
// otherwise. It is a standalone helper: the editscript engine does not use
// it.
package listdist

import (
	"github.com/bollwyvl/graphtage/levenshtein"
	"github.com/bollwyvl/graphtage/treenode"
)

// shiftCost is the cost of inserting or removing n.
func shiftCost(n treenode.Node) int {
	return n.TotalSize() + 1
}

// relabelCost is the cost of keeping a in b's position: the Levenshtein
// distance between rendered leaves, or a whole structural replace when
// either side is a container.
func relabelCost(a, b treenode.Node) int {
	al, aok := a.(*treenode.Leaf)
	bl, bok := b.(*treenode.Leaf)
	if aok && bok {
		return levenshtein.Distance(al.Render(), bl.Render())
	}
	cost := a.TotalSize()
	if ts := b.TotalSize(); ts > cost {
		cost = ts
	}
	return cost + 1
}

// Distance returns the DP alignment cost of a against b. A nonzero cut
// stops the recursion early once every cell of a row reaches cut,
// returning the (possibly truncated) final cell.
func Distance(a, b []treenode.Node, cut int) int {
	lst := make([]int, len(b)+1)
	for bi, br := range b {
		lst[bi+1] = lst[bi] + shiftCost(br)
	}
	for _, ar := range a {
		last := lst[0]
		lst[0] = last + shiftCost(ar)
		stop := true
		i := 0
		for _, br := range b {
			i++
			min := last + relabelCost(ar, br)
			if n := lst[i-1] + shiftCost(br); n < min {
				min = n
			}
			if n := lst[i] + shiftCost(ar); n < min {
				min = n
			}
			last, lst[i] = lst[i], min
			if min < cut {
				stop = false
			}
		}
		if cut != 0 && stop {
			break
		}
	}
	return lst[len(lst)-1]
}

// QuickListCost estimates the cost of aligning two Listlike nodes'
// children, with no early cutoff.
func QuickListCost(a, b treenode.Listlike) int {
	return Distance(a.ListChildren(), b.ListChildren(), 0)
}
