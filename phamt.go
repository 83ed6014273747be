// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

package phamt

import (
	"reflect"
	"sync"
)

// PHAMT is a Persistent Hash Array Mapped Trie: an immutable map from
// int64 keys to values of type V. Every mutating operation (Assoc,
// Dissoc) returns a new PHAMT that shares unchanged structure with the
// receiver; the receiver itself is never modified (§4.3).
//
// The zero value is not a valid PHAMT; use Empty[V]() to obtain one.
type PHAMT[V any] struct {
	root  *node[V]
	count int
}

// Empty returns the canonical empty PHAMT for value type V. Every empty
// PHAMT[V] shares the same root, so Empty[V]() is cheap and comparisons
// against "did this converge back to empty" can use it directly.
func Empty[V any]() PHAMT[V] {
	return PHAMT[V]{root: emptyRoot[V](), count: 0}
}

// emptyRoots is a process-wide, per-instantiation singleton empty root,
// matching §9's design note ("a process-wide shared constant is
// acceptable and desirable; all dissoc operations that empty the map
// should converge to it"). Generics mean a single untyped package-level
// var can't hold a *node[V] for every V, so the cache is keyed by
// reflect.Type instead; sync.Map makes concurrent Empty[V]() calls from
// multiple goroutines safe, matching §5's thread-safety guarantees.
var emptyRoots sync.Map // reflect.Type -> any (*node[V])

func emptyRoot[V any]() *node[V] {
	var zero V
	t := reflect.TypeOf(&zero).Elem()
	if r, ok := emptyRoots.Load(t); ok {
		return r.(*node[V])
	}
	r := newNode[V](rootDepth, 0, 0)
	actual, _ := emptyRoots.LoadOrStore(t, r)
	return actual.(*node[V])
}

// Len returns the number of (key, value) pairs in p.
func (p PHAMT[V]) Len() int {
	return p.count
}

// Contains reports whether k is present in p.
func (p PHAMT[V]) Contains(k int64) bool {
	_, ok := p.Get(k)
	return ok
}

// Get returns the value stored for k, and whether k was present.
func (p PHAMT[V]) Get(k int64) (V, bool) {
	var zero V
	if err := checkKeyDomain(k); err != nil {
		return zero, false
	}
	h := canonicalize(k)
	n := p.root
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

// GetOr returns the value stored for k, or def if k is absent.
func (p PHAMT[V]) GetOr(k int64, def V) V {
	if v, ok := p.Get(k); ok {
		return v
	}
	return def
}

// MustGet returns the value stored for k, or panics with a *KeyNotFoundError
// (or *KeyDomainError) if it cannot.
func (p PHAMT[V]) MustGet(k int64) V {
	if err := checkKeyDomain(k); err != nil {
		panic(err)
	}
	v, ok := p.Get(k)
	if !ok {
		panic(&KeyNotFoundError{Key: k})
	}
	return v
}

// Assoc returns a new PHAMT identical to p but with k mapped to v,
// path-copying nodes along the way so p itself is left unchanged
// (§4.3, invariant 6 "Persistence").
func (p PHAMT[V]) Assoc(k int64, v V) (PHAMT[V], error) {
	if err := checkKeyDomain(k); err != nil {
		return p, err
	}
	h := canonicalize(k)
	newRoot, grew := assocRoot(p.root, h, v)
	count := p.count
	if grew {
		count++
	}
	return PHAMT[V]{root: newRoot, count: count}, nil
}

// assocRoot is assocNode's entry point from the very top of the trie,
// where — unlike every recursive call below, which only ever descends
// into a child whose address its caller already checked — there is no
// parent that has verified h belongs under n. collapseIfPossible (see
// dissocNode) can promote a node of any depth to stand as the trie's
// root, so the root actually handed to Assoc is not guaranteed to be the
// depth-0, address-0 node assocNode assumes of whatever it's given; a key
// diverging from that promoted root's address needs a branch introduced
// above it, exactly as splitBranch does for a diverging child, but
// starting the search for the divergence point at depth 0 since nothing
// sits above the root to have committed to any bits already.
func assocRoot[V any](n *node[V], h uint64, v V) (*node[V], bool) {
	if prefixMatches(h, n.address, n.depth) {
		return assocNode(n, h, v)
	}
	return splitBranch(n, h, v, rootDepth-1), true
}

// assocNode returns a new node reflecting n with h associated to v, and
// whether the key was newly inserted (as opposed to overwriting an
// existing entry). Every call site already knows h belongs under n
// (either n is the root, verified by assocRoot, or n is a child whose
// address the caller checked with prefixMatches before recursing).
func assocNode[V any](n *node[V], h uint64, v V) (*node[V], bool) {
	d := n.depth
	slot := slotIndex(h, d)

	if n.isTwig() {
		_, existed := n.valueAt(slot)
		return n.withValueSet(slot, v), !existed
	}

	child, ok := n.childAt(slot)
	if !ok {
		// Empty slot: rather than materializing a single-child chain of
		// nodes all the way to the twig depth, attach a leaf directly —
		// a twig-depth node that, for now, holds only v. This is the
		// path-compression trick that keeps a PHAMT of sparse or
		// consecutive keys shallow (§9): a freshly inserted key costs
		// exactly one new node, not D of them.
		return n.withChildSet(slot, newLeaf(h, v)), true
	}

	if prefixMatches(h, child.address, child.depth) {
		newChild, grew := assocNode(child, h, v)
		return n.withChildSet(slot, newChild), grew
	}

	// child's address diverges from h somewhere between here and
	// child.depth: introduce the one branching node the divergence
	// actually requires (§4.3's "split"), carrying both the untouched
	// old subtree and a fresh leaf for the new key.
	branch := splitBranch(child, h, v, d)
	return n.withChildSet(slot, branch), true
}

// newLeaf builds a standalone twig-depth node holding exactly one value,
// addressed by the key's full hash. It may be attached at any depth <
// twigDepth in its parent, representing every skipped intermediate level
// implicitly in its address field.
func newLeaf[V any](h uint64, v V) *node[V] {
	n := newNode[V](twigDepth, h, 0)
	n.vals.InsertAt(slotIndex(h, twigDepth), v)
	return n
}

// addressMask returns the mask of hash bits a node at depth d commits to:
// every bit at or above startBit(d) (invariant 1 requires everything
// below that to read as zero).
func addressMask(d int) uint64 {
	a0 := startBit(d)
	if a0 >= hashBits {
		return ^uint64(0)
	}
	return ^uint64(0) << a0
}

// splitBranch builds the single branching node needed to accommodate
// both an existing path-compressed subtree `old` (attached below a node
// at parentDepth) and a fresh leaf for (h, v), whose hash diverges from
// old.address somewhere in (parentDepth, old.depth].
//
// Because every node already carries its own absolute depth and address,
// only the one node at the actual point of divergence is ever allocated;
// nothing deeper needs to be rebuilt (old is reused as-is).
func splitBranch[V any](old *node[V], h uint64, v V, parentDepth int) *node[V] {
	dd := parentDepth + 1
	for dd < old.depth && slotIndex(h, dd) == slotIndex(old.address, dd) {
		dd++
	}

	branch := newNode[V](dd, old.address&addressMask(dd), 0)
	oldSlot := slotIndex(old.address, dd)
	newSlot := slotIndex(h, dd)

	branch.kids.InsertAt(oldSlot, old)
	branch.kids.InsertAt(newSlot, newLeaf(h, v))

	return branch
}

// Dissoc returns a new PHAMT identical to p but with k removed. If k is
// absent, p is returned unchanged (identity preserved, invariant 3).
func (p PHAMT[V]) Dissoc(k int64) (PHAMT[V], error) {
	if err := checkKeyDomain(k); err != nil {
		return p, err
	}
	h := canonicalize(k)
	newRoot, removed := dissocNode(p.root, h)
	if !removed {
		return p, nil
	}
	// A node that has lost its last entry reports isEmpty() so its
	// parent can clear its slot; at the root there is no parent to do
	// that, so the trie emptying out converges here to the shared
	// singleton instead of a freshly-cloned-but-distinct empty node
	// (§9: "all dissoc operations that empty the map should converge to
	// [the singleton]").
	if newRoot.isEmpty() {
		newRoot = emptyRoot[V]()
	}
	return PHAMT[V]{root: newRoot, count: p.count - 1}, nil
}

// dissocNode returns a node reflecting n with h removed (or n itself, and
// false, if h was never present under n).
func dissocNode[V any](n *node[V], h uint64) (*node[V], bool) {
	d := n.depth
	if !prefixMatches(h, n.address, d) {
		return n, false
	}
	slot := slotIndex(h, d)

	if n.isTwig() {
		if _, ok := n.valueAt(slot); !ok {
			return n, false
		}
		return n.withValueCleared(slot), true
	}

	child, ok := n.childAt(slot)
	if !ok {
		return n, false
	}

	newChild, removed := dissocNode(child, h)
	if !removed {
		return n, false
	}

	if newChild.isEmpty() {
		return collapseIfPossible(n.withChildCleared(slot)), true
	}

	// Single-child collapse (invariant 5): an interior node left with
	// exactly one child may be replaced by that child, promoted up to
	// stand directly in its parent's slot, since the child already
	// carries its own absolute depth and address and therefore remains
	// fully self-describing wherever it is attached. Twigs only ever
	// vanish (handled above), never promote.
	return collapseIfPossible(n.withChildSet(slot, newChild)), true
}

// collapseIfPossible replaces an interior node holding exactly one child
// with that child directly, eliding the now-redundant level. Because
// every node records its own depth and address rather than one relative
// to its parent, lifting a sole child up is always structurally valid;
// no realignment of its fields is required.
func collapseIfPossible[V any](n *node[V]) *node[V] {
	if n.isTwig() || n.cellCount() != 1 {
		return n
	}
	slot, _ := n.kids.Bitmap.Next(0)
	only, _ := n.childAt(slot)
	return only
}

// FromSequence builds a PHAMT assigning keys 0, 1, 2, ... to the given
// values, last write wins (there are none, since each key appears once).
func FromSequence[V any](values []V) PHAMT[V] {
	t := NewTransient[V]()
	for i, v := range values {
		_ = t.Set(int64(i), v)
	}
	p, _ := t.Persistent()
	return p
}

// Pair is a single (key, value) entry, used by FromPairs.
type Pair[V any] struct {
	Key   int64
	Value V
}

// FromPairs builds a PHAMT from the given entries; if a key repeats, the
// last occurrence wins.
func FromPairs[V any](pairs []Pair[V]) (PHAMT[V], error) {
	t := NewTransient[V]()
	for _, pr := range pairs {
		if err := t.Set(pr.Key, pr.Value); err != nil {
			return PHAMT[V]{}, err
		}
	}
	return t.Persistent()
}
