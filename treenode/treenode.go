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

// Package treenode builds immutable tree representations of host data
// (integers, strings, ordered lists, string-keyed maps) for structural
// diffing. Trees are read-only after construction: total_size is computed
// once per node and memoised.
package treenode

import (
	"fmt"
	"sort"
	"strconv"
)

// Node is the closed set of tree shapes: *Leaf, *KeyValuePair, *List, *Map.
type Node interface {
	// TotalSize is the textual length of the rendered subtree, the
	// structural upper bound used by Insert/Remove/Replace costs.
	TotalSize() int

	node() // unexported: closes the Node set to this package's types.
}

// Listlike is satisfied by both *List and *Map, mirroring the original's
// DictNode-is-a-ListNode inheritance: both diff via the same list
// alignment generator.
type Listlike interface {
	Node
	ListChildren() []Node
}

// Leaf holds an opaque scalar: an int or a string.
type Leaf struct {
	Value any // int or string

	size    int
	sizeSet bool
}

// NewLeaf wraps a scalar value in a Leaf node.
func NewLeaf(v any) *Leaf {
	return &Leaf{Value: v}
}

func (*Leaf) node() {}

// Render returns the canonical textual form of the leaf's scalar.
func (l *Leaf) Render() string {
	switch v := l.Value.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// TotalSize returns len(Render()), memoised.
func (l *Leaf) TotalSize() int {
	if !l.sizeSet {
		l.size = len(l.Render())
		l.sizeSet = true
	}
	return l.size
}

func (l *Leaf) String() string { return l.Render() }

// KeyValuePair is the exclusive owner of one leaf key and one tree value.
type KeyValuePair struct {
	Key   *Leaf
	Value Node

	size    int
	sizeSet bool
}

// NewKeyValuePair constructs a KeyValuePair node.
func NewKeyValuePair(key *Leaf, value Node) *KeyValuePair {
	return &KeyValuePair{Key: key, Value: value}
}

func (*KeyValuePair) node() {}

// TotalSize returns Key.TotalSize() + Value.TotalSize(), memoised.
func (kv *KeyValuePair) TotalSize() int {
	if !kv.sizeSet {
		kv.size = kv.Key.TotalSize() + kv.Value.TotalSize()
		kv.sizeSet = true
	}
	return kv.size
}

func (kv *KeyValuePair) String() string {
	return fmt.Sprintf("%s: %v", kv.Key, kv.Value)
}

// List owns an ordered tuple of child nodes.
type List struct {
	Children []Node

	size    int
	sizeSet bool
}

// NewList constructs a List node from an ordered slice of children.
func NewList(children []Node) *List {
	return &List{Children: children}
}

func (*List) node() {}

// ListChildren implements Listlike.
func (l *List) ListChildren() []Node { return l.Children }

func (l *List) String() string { return fmt.Sprint(l.Children) }

// TotalSize returns the sum of children's TotalSize, memoised.
func (l *List) TotalSize() int {
	if !l.sizeSet {
		total := 0
		for _, c := range l.Children {
			total += c.TotalSize()
		}
		l.size = total
		l.sizeSet = true
	}
	return l.size
}

// Map is a List whose children are KeyValuePairs, ordered by key's
// natural (lexicographic) order at construction.
type Map struct {
	Pairs []*KeyValuePair

	size    int
	sizeSet bool
}

// NewMap constructs a Map node, sorting pairs by key.
func NewMap(pairs []*KeyValuePair) *Map {
	sorted := append([]*KeyValuePair(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key.Render() < sorted[j].Key.Render()
	})
	return &Map{Pairs: sorted}
}

func (*Map) node() {}

func (m *Map) String() string { return fmt.Sprint(m.ListChildren()) }

// ListChildren implements Listlike, exposing the sorted pairs as Nodes.
func (m *Map) ListChildren() []Node {
	children := make([]Node, len(m.Pairs))
	for i, p := range m.Pairs {
		children[i] = p
	}
	return children
}

// TotalSize returns the sum of the key-value pairs' TotalSize, memoised.
func (m *Map) TotalSize() int {
	if !m.sizeSet {
		total := 0
		for _, p := range m.Pairs {
			total += p.TotalSize()
		}
		m.size = total
		m.sizeSet = true
	}
	return m.size
}

// UnsupportedTypeError is returned by BuildTree for values that are not
// an int, string, ordered sequence, or string-keyed mapping.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("treenode: unsupported type %T", e.Value)
}

// BuildTree converts a host value into a Node. It accepts ints, strings,
// []any (ordered sequences), and map[string]any (string-keyed mappings).
// Map values recurse; map keys are forced to be leaves.
func BuildTree(v any) (Node, error) {
	switch x := v.(type) {
	case int:
		return NewLeaf(x), nil
	case string:
		return NewLeaf(x), nil
	case []any:
		children := make([]Node, len(x))
		for i, item := range x {
			child, err := BuildTree(item)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return NewList(children), nil
	case map[string]any:
		pairs := make([]*KeyValuePair, 0, len(x))
		for k, item := range x {
			value, err := BuildTree(item)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, NewKeyValuePair(NewLeaf(k), value))
		}
		return NewMap(pairs), nil
	default:
		return nil, &UnsupportedTypeError{Value: v}
	}
}
