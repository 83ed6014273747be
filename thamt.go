// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

package phamt

import (
	"sync/atomic"
)

// generationCounter hands out process-wide unique, monotonically
// increasing generation tokens, one per THAMT ever created. 0 is reserved
// to mean "persistent, no owner" (see node.generation), so the counter
// starts at 1.
var generationCounter atomic.Uint64

func nextGeneration() uint64 {
	return generationCounter.Add(1)
}

// THAMT is a Transient HAMT: a short-lived, single-owner mutable builder
// over the same trie shape as PHAMT. Set and Delete mutate nodes stamped
// with the THAMT's own generation token in place, and path-copy (exactly
// as Assoc/Dissoc do) any node stamped with a different generation,
// claiming it for this THAMT in the process (§4.4, invariant 7).
//
// A THAMT is not safe for concurrent use, and not safe to share across
// goroutines even sequentially without a happens-before edge: it is
// meant to be built, mutated by one goroutine, and frozen.
//
// The zero value is not a valid THAMT; use NewTransient or
// FromPersistent.
type THAMT[V any] struct {
	root       *node[V]
	count      int
	generation uint64
	done       bool
}

// NewTransient returns a new, empty THAMT[V] with a fresh generation
// token.
func NewTransient[V any]() *THAMT[V] {
	gen := nextGeneration()
	return &THAMT[V]{
		root:       newNode[V](rootDepth, 0, gen),
		generation: gen,
	}
}

// FromPersistent returns a new THAMT seeded with p's entries. p itself is
// never modified: the THAMT's first mutation to any given node path-copies
// it into the new generation exactly as Assoc would, then owns the copy.
func FromPersistent[V any](p PHAMT[V]) *THAMT[V] {
	gen := nextGeneration()
	return &THAMT[V]{
		root:       p.root,
		count:      p.count,
		generation: gen,
	}
}

// Len returns the number of (key, value) pairs currently in t.
func (t *THAMT[V]) Len() int {
	return t.count
}

// Get returns the value stored for k, and whether k was present.
func (t *THAMT[V]) Get(k int64) (V, bool) {
	var zero V
	if err := checkKeyDomain(k); err != nil {
		return zero, false
	}
	h := canonicalize(k)
	n := t.root
	for {
		d := n.depth
		if !prefixMatches(h, n.address, d) {
			return zero, false
		}
		slot := slotIndex(h, d)
		if n.isTwig() {
			return n.valueAt(slot)
		}
		child, ok := n.childAt(slot)
		if !ok {
			return zero, false
		}
		n = child
	}
}

// Contains reports whether k is present in t.
func (t *THAMT[V]) Contains(k int64) bool {
	_, ok := t.Get(k)
	return ok
}

// Set maps k to v in t, mutating nodes t already owns in place and
// path-copying (then claiming) any it doesn't. Returns an error if k is
// outside the representable domain or t has already been frozen by
// Persistent.
func (t *THAMT[V]) Set(k int64, v V) error {
	if t.done {
		return &TransientUsedError{Op: "Set"}
	}
	if err := checkKeyDomain(k); err != nil {
		return err
	}
	h := canonicalize(k)
	newRoot, grew := assocRootTransient(t.root, h, v, t.generation)
	t.root = newRoot
	if grew {
		t.count++
	}
	return nil
}

// assocRootTransient is assocTransient's entry point from the top of the
// trie, mirroring assocRoot's persistent counterpart: t.root is not
// guaranteed to be the depth-0, address-0 node assocTransient assumes of
// whatever it's handed, since collapseIfPossible can promote a node of
// any depth to stand as the root. A key diverging from a promoted root's
// address needs a branch introduced above it, tagged as owned by gen
// since it's a brand-new allocation.
func assocRootTransient[V any](n *node[V], h uint64, v V, gen uint64) (*node[V], bool) {
	if prefixMatches(h, n.address, n.depth) {
		return assocTransient(n, h, v, gen)
	}
	branch := splitBranch(n, h, v, rootDepth-1)
	branch.generation = gen
	return branch, true
}

// Delete removes k from t, if present, mutating or path-copying as Set
// does. Returns an error if k is outside the representable domain or t
// has already been frozen by Persistent.
func (t *THAMT[V]) Delete(k int64) error {
	if t.done {
		return &TransientUsedError{Op: "Delete"}
	}
	if err := checkKeyDomain(k); err != nil {
		return err
	}
	h := canonicalize(k)
	newRoot, removed := dissocTransient(t.root, h, t.generation)
	// As in PHAMT.Dissoc, the root has no parent to clear its slot when
	// it empties out, so convergence to the shared singleton has to
	// happen here explicitly.
	if newRoot.isEmpty() {
		newRoot = emptyRoot[V]()
	}
	t.root = newRoot
	if removed {
		t.count--
	}
	return nil
}

// Persistent freezes t into an ordinary PHAMT and consumes t: any further
// call to Set or Delete on t returns a *TransientUsedError (§4.4's
// single-shot rule — a THAMT may be frozen at most once, since handing
// out its nodes as a PHAMT's means they must never be mutated in place
// again).
func (t *THAMT[V]) Persistent() (PHAMT[V], error) {
	if t.done {
		return PHAMT[V]{}, &TransientUsedError{Op: "Persistent"}
	}
	t.done = true
	return PHAMT[V]{root: t.root, count: t.count}, nil
}

// assocTransient is assocNode's transient counterpart: nodes already
// owned by generation gen are mutated in place; any other node is
// path-copied into gen first via node.own, exactly once, after which
// further mutations on that path reuse the owned copy.
func assocTransient[V any](n *node[V], h uint64, v V, gen uint64) (*node[V], bool) {
	n = n.own(gen)
	d := n.depth
	slot := slotIndex(h, d)

	if n.isTwig() {
		_, existed := n.valueAt(slot)
		n.vals.InsertAt(slot, v)
		return n, !existed
	}

	child, ok := n.childAt(slot)
	if !ok {
		n.kids.InsertAt(slot, newLeaf(h, v))
		return n, true
	}

	if prefixMatches(h, child.address, child.depth) {
		newChild, grew := assocTransient(child, h, v, gen)
		n.kids.InsertAt(slot, newChild)
		return n, grew
	}

	branch := splitBranch(child, h, v, d)
	branch.generation = gen
	n.kids.InsertAt(slot, branch)
	return n, true
}

// dissocTransient is dissocNode's transient counterpart.
func dissocTransient[V any](n *node[V], h uint64, gen uint64) (*node[V], bool) {
	d := n.depth
	if !prefixMatches(h, n.address, d) {
		return n, false
	}
	slot := slotIndex(h, d)

	if n.isTwig() {
		if _, ok := n.valueAt(slot); !ok {
			return n, false
		}
		n = n.own(gen)
		n.vals.DeleteAt(slot)
		return n, true
	}

	child, ok := n.childAt(slot)
	if !ok {
		return n, false
	}

	newChild, removed := dissocTransient(child, h, gen)
	if !removed {
		return n, false
	}

	n = n.own(gen)
	if newChild.isEmpty() {
		n.kids.DeleteAt(slot)
		return collapseIfPossible(n), true
	}

	n.kids.InsertAt(slot, newChild)
	return collapseIfPossible(n), true
}
