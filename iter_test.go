// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

package phamt

import (
	"sort"
	"testing"
)

func buildTestPHAMT(t *testing.T, keys []int64) PHAMT[int64] {
	t.Helper()
	p := Empty[int64]()
	for _, k := range keys {
		var err error
		p, err = p.Assoc(k, k*10)
		if err != nil {
			t.Fatalf("Assoc(%d): %v", k, err)
		}
	}
	return p
}

func TestAllVisitsEveryEntryExactlyOnce(t *testing.T) {
	t.Parallel()

	keys := []int64{0, 1, 2, 3, 100, -100, KeyMin, KeyMax, 1 << 40}
	p := buildTestPHAMT(t, keys)

	seen := make(map[int64]int64)
	for k, v := range p.All() {
		if _, dup := seen[k]; dup {
			t.Fatalf("key %d visited twice by All", k)
		}
		seen[k] = v
	}

	if len(seen) != len(keys) {
		t.Fatalf("All visited %d entries, want %d", len(seen), len(keys))
	}
	for _, k := range keys {
		if got, ok := seen[k]; !ok || got != k*10 {
			t.Errorf("All missed or mismatched key %d: got %d, ok %v", k, got, ok)
		}
	}
}

func TestAllEarlyExit(t *testing.T) {
	t.Parallel()

	p := buildTestPHAMT(t, []int64{1, 2, 3, 4, 5})

	count := 0
	for range p.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("range loop over All did not stop at break: count = %d", count)
	}
}

func TestKeysAndValuesMatchAll(t *testing.T) {
	t.Parallel()

	keys := []int64{5, 6, 7, 1000, -1000}
	p := buildTestPHAMT(t, keys)

	var fromAll, fromKeys []int64
	for k := range p.All() {
		fromAll = append(fromAll, k)
	}
	for k := range p.Keys() {
		fromKeys = append(fromKeys, k)
	}
	sort.Slice(fromAll, func(i, j int) bool { return fromAll[i] < fromAll[j] })
	sort.Slice(fromKeys, func(i, j int) bool { return fromKeys[i] < fromKeys[j] })

	if len(fromAll) != len(fromKeys) {
		t.Fatalf("Keys produced %d entries, All produced %d", len(fromKeys), len(fromAll))
	}
	for i := range fromAll {
		if fromAll[i] != fromKeys[i] {
			t.Fatalf("Keys and All disagree at position %d: %d vs %d", i, fromKeys[i], fromAll[i])
		}
	}
}

func TestIteratorNextExhausts(t *testing.T) {
	t.Parallel()

	keys := []int64{10, 20, 30, -5}
	p := buildTestPHAMT(t, keys)

	it := NewIterator(p)
	seen := make(map[int64]int64)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		seen[k] = v
	}

	if len(seen) != len(keys) {
		t.Fatalf("Iterator visited %d entries, want %d", len(seen), len(keys))
	}
	for _, k := range keys {
		if got, ok := seen[k]; !ok || got != k*10 {
			t.Errorf("Iterator missed or mismatched key %d: got %d, ok %v", k, got, ok)
		}
	}

	if _, _, ok := it.Next(); ok {
		t.Fatalf("exhausted Iterator produced another entry")
	}
}

func TestIteratorOnEmptyPHAMT(t *testing.T) {
	t.Parallel()

	it := NewIterator(Empty[int]())
	if _, _, ok := it.Next(); ok {
		t.Fatalf("Iterator over an empty PHAMT produced an entry")
	}
}

// TestIteratorSurvivesSourceGoingOutOfScope is §8 scenario S6: an
// Iterator built from a PHAMT must keep yielding every pair even once the
// caller's only reference to the source PHAMT is gone. newScopedIterator
// returns an Iterator built over a PHAMT that is local to it; by the time
// the caller uses the result, the PHAMT value itself is unreachable from
// anywhere but the Iterator's own frames.
func TestIteratorSurvivesSourceGoingOutOfScope(t *testing.T) {
	t.Parallel()

	keys := []int64{1, 2, 3, 4, 5, -10, KeyMax}
	it := newScopedIterator(t, keys)

	seen := make(map[int64]int64)
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		seen[k] = v
	}
	if len(seen) != len(keys) {
		t.Fatalf("Iterator visited %d entries after its source went out of scope, want %d", len(seen), len(keys))
	}
	for _, k := range keys {
		if got, ok := seen[k]; !ok || got != k*10 {
			t.Errorf("missed or mismatched key %d: got %d, ok %v", k, got, ok)
		}
	}
}

func newScopedIterator(t *testing.T, keys []int64) *Iterator[int64] {
	t.Helper()
	p := buildTestPHAMT(t, keys)
	return NewIterator(p)
}

func TestTHAMTAll(t *testing.T) {
	t.Parallel()

	tr := NewTransient[int64]()
	want := map[int64]int64{1: 10, 2: 20, 3: 30}
	for k, v := range want {
		if err := tr.Set(k, v); err != nil {
			t.Fatalf("Set(%d): %v", k, err)
		}
	}

	got := make(map[int64]int64)
	for k, v := range tr.All() {
		got[k] = v
	}
	if len(got) != len(want) {
		t.Fatalf("THAMT.All produced %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("THAMT.All[%d] = %d, want %d", k, got[k], v)
		}
	}
}
