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
	"container/heap"
	"fmt"

	"github.com/bollwyvl/graphtage/rangeval"
	"github.com/bollwyvl/graphtage/treenode"
)

// PossibleEdits is a lazy disjunction ("choose cheapest") over a stream of
// alternative edits between the same pair of nodes, with incremental
// bound tightening and dominance pruning.
type PossibleEdits struct {
	from, to treenode.Node
	initial  rangeval.Range
	stream   Stream

	untightened possibleHeap
	tightened   []*possibleItem
	nextSeq     int
}

// possibleItem pairs a candidate edit with its insertion sequence number,
// so that heap order and best-possibility ties break deterministically on
// first-seen rather than on undefined map/slice iteration order.
type possibleItem struct {
	edit Edit
	seq  int
}

// possibleHeap orders candidates by current Cost() (lower bound first,
// then upper bound, then insertion order) — not by the full looping Edit
// comparison, since heap maintenance must stay cheap.
type possibleHeap []*possibleItem

func (h possibleHeap) Len() int { return len(h) }
func (h possibleHeap) Less(i, j int) bool {
	ci, cj := h[i].edit.Cost(), h[j].edit.Cost()
	if ci.Lo != cj.Lo {
		return ci.Lo < cj.Lo
	}
	if ci.Hi != cj.Hi {
		return ci.Hi < cj.Hi
	}
	return h[i].seq < h[j].seq
}
func (h possibleHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *possibleHeap) Push(x any)   { *h = append(*h, x.(*possibleItem)) }
func (h *possibleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// NewPossibleEdits constructs a PossibleEdits over stream.
func NewPossibleEdits(from, to treenode.Node, stream Stream) *PossibleEdits {
	p := &PossibleEdits{from: from, to: to, stream: stream}
	p.initial = p.Cost()
	return p
}

func (p *PossibleEdits) FromNode() treenode.Node     { return p.from }
func (p *PossibleEdits) ToNode() treenode.Node       { return p.to }
func (p *PossibleEdits) InitialCost() rangeval.Range { return p.initial }

// TightenBounds performs exactly one unit of work: pull one more
// alternative from the stream (discarding it immediately if the current
// best already-seen candidate provably beats it), or else tighten the
// cheapest untightened candidate by one step.
func (p *PossibleEdits) TightenBounds() bool {
	if p.stream != nil {
		next, ok := p.stream()
		if ok {
			if len(p.untightened) > 0 && p.untightened[0].edit.Cost().Less(next.Cost()) {
				// The current best-seen candidate already beats next
				// outright; no need to track a dominated alternative.
			} else {
				p.nextSeq++
				heap.Push(&p.untightened, &possibleItem{edit: next, seq: p.nextSeq})
			}
			return true
		}
		p.stream = nil
	}
	if len(p.untightened) > 0 {
		top := heap.Pop(&p.untightened).(*possibleItem)
		if top.edit.TightenBounds() {
			heap.Push(&p.untightened, top)
		} else {
			p.tightened = append(p.tightened, top)
		}
		return true
	}
	return false
}

// Cost returns [0, max(from.size, to.size)+1] — a safe structural bound —
// whenever the stream is still live, even after some alternatives have
// been pulled. Once the stream is closed it returns [min lo, min hi] over
// every candidate kept so far, so it becomes definitive as soon as the
// cheapest candidate is known exactly.
func (p *PossibleEdits) Cost() rangeval.Range {
	if p.stream != nil {
		ub := p.from.TotalSize()
		if tb := p.to.TotalSize(); tb > ub {
			ub = tb
		}
		return rangeval.Make(0, ub+1)
	}
	lo, hi, seen := 0, 0, false
	consider := func(c rangeval.Range) {
		if !seen || c.Lo < lo {
			lo = c.Lo
		}
		if !seen || c.Hi < hi {
			hi = c.Hi
		}
		seen = true
	}
	for _, it := range p.untightened {
		consider(it.edit.Cost())
	}
	for _, it := range p.tightened {
		consider(it.edit.Cost())
	}
	if !seen {
		return rangeval.Range{Empty: true}
	}
	return rangeval.Make(lo, hi)
}

// BestPossibility returns the candidate with the smallest upper bound
// seen so far, breaking ties by insertion order. It returns nil if no
// alternative has ever been produced.
func (p *PossibleEdits) BestPossibility() Edit {
	var best *possibleItem
	consider := func(it *possibleItem) {
		if best == nil {
			best = it
			return
		}
		hi, bestHi := it.edit.Cost().Hi, best.edit.Cost().Hi
		if hi < bestHi || (hi == bestHi && it.seq < best.seq) {
			best = it
		}
	}
	for _, it := range p.untightened {
		consider(it)
	}
	for _, it := range p.tightened {
		consider(it)
	}
	if best == nil {
		return nil
	}
	return best.edit
}

func (p *PossibleEdits) String() string {
	return fmt.Sprintf("PossibleEdits(from=%v, to=%v)", p.from, p.to)
}
