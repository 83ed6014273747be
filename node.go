// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

package phamt

import "github.com/noahbenson/phamt/internal/sparse"

// node is the fundamental trie cell (§4.2 of the design). A node at an
// interior depth (depth < twigDepth) stores child *node[V] pointers in
// kids, keyed by slot; a node at the twig depth (depth == twigDepth)
// stores values directly in vals. Exactly one of the two arrays is ever
// populated for a given node, since depth alone determines which.
//
// generation is 0 for persistent nodes (no owner). A THAMT stamps the
// nodes it allocates or mutates in place with its own non-zero generation
// token (invariant 7: a node whose generation matches the THAMT's current
// generation is uniquely owned by it).
type node[V any] struct {
	depth      int
	address    uint64
	generation uint64
	kids       sparse.Array[*node[V]]
	vals       sparse.Array[V]
}

// newNode allocates an empty node at depth d covering address, tagged
// with generation gen (0 for a persistent node).
func newNode[V any](depth int, address uint64, gen uint64) *node[V] {
	return &node[V]{depth: depth, address: address, generation: gen}
}

// isTwig reports whether n stores values directly rather than child nodes.
func (n *node[V]) isTwig() bool {
	return n.depth == twigDepth
}

// isEmpty reports whether n holds no cells at all (§4.2).
func (n *node[V]) isEmpty() bool {
	if n.isTwig() {
		return n.vals.Bitmap == 0
	}
	return n.kids.Bitmap == 0
}

// cellCount returns popcount(bitmap) for n's occupied array.
func (n *node[V]) cellCount() int {
	if n.isTwig() {
		return n.vals.Len()
	}
	return n.kids.Len()
}

// childAt returns the child at slot, if n is interior and the slot is set.
func (n *node[V]) childAt(slot uint) (*node[V], bool) {
	return n.kids.Get(slot)
}

// valueAt returns the value at slot, if n is a twig and the slot is set.
func (n *node[V]) valueAt(slot uint) (V, bool) {
	return n.vals.Get(slot)
}

// cloneShallow returns a copy of n with fresh (but shallow) backing
// arrays, tagged with gen. Used by both the persistent path-copy protocol
// and the transient path-copy-once-then-own protocol: the returned node
// owns its own kids/vals arrays, but child pointers and values themselves
// are shared with n.
func (n *node[V]) cloneShallow(gen uint64) *node[V] {
	return &node[V]{
		depth:      n.depth,
		address:    n.address,
		generation: gen,
		kids:       *n.kids.Copy(),
		vals:       *n.vals.Copy(),
	}
}

// withChildSet returns a node identical to n but with slot mapped to
// child, path-copying n first (§4.2's with_cell_set, persistent variant).
func (n *node[V]) withChildSet(slot uint, child *node[V]) *node[V] {
	cp := n.cloneShallow(0)
	cp.kids.InsertAt(slot, child)
	return cp
}

// withValueSet returns a node identical to n but with slot mapped to
// value, path-copying n first.
func (n *node[V]) withValueSet(slot uint, value V) *node[V] {
	cp := n.cloneShallow(0)
	cp.vals.InsertAt(slot, value)
	return cp
}

// withChildCleared returns a node identical to n but with slot's child
// removed, path-copying n first.
func (n *node[V]) withChildCleared(slot uint) *node[V] {
	cp := n.cloneShallow(0)
	cp.kids.DeleteAt(slot)
	return cp
}

// withValueCleared returns a node identical to n but with slot's value
// removed, path-copying n first.
func (n *node[V]) withValueCleared(slot uint) *node[V] {
	cp := n.cloneShallow(0)
	cp.vals.DeleteAt(slot)
	return cp
}

// own returns a node n can be mutated in place under generation gen: n
// itself, if n.generation == gen, or a fresh owned shallow clone
// otherwise (§4.4's path-copy-once rule, invariant 7).
func (n *node[V]) own(gen uint64) *node[V] {
	if n.generation == gen {
		return n
	}
	return n.cloneShallow(gen)
}
