// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

// Package phamt provides a Persistent Hash Array Mapped Trie (PHAMT) and
// its companion Transient HAMT (THAMT).
//
// A PHAMT is an immutable, integer-keyed associative container. Updates
// (Assoc, Dissoc) return a new PHAMT that shares unchanged structure with
// the original in O(log32 N) allocations, rather than copying the whole
// map. PHAMTs are safe to share across goroutines without synchronization:
// nothing about a PHAMT ever changes after it is constructed.
//
// A THAMT is a short-lived, single-owner mutable builder over the same
// trie shape. It amortizes a batch of Set/Delete calls into roughly one
// allocation per edit instead of one allocation per edit per trie level,
// by tagging nodes it owns with a generation token and mutating those in
// place. Calling Persistent freezes a THAMT back into an ordinary PHAMT;
// the THAMT may not be mutated again afterward.
//
// Keys are signed 64-bit integers. Internally a key k is canonicalized to
// an unsigned 64-bit hash via two's-complement reinterpretation, so the
// trie only ever deals with unsigned prefixes; this is reversed when a
// key is reconstructed during iteration.
package phamt
