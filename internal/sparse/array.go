// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

// package sparse implements a generic sparse array with popcount
// compression, keyed by an internal/bitmap32.Bitmap.
package sparse

import "github.com/noahbenson/phamt/internal/bitmap32"

// Array, a generic implementation of a 32-slot sparse array with popcount
// compression and payload T.
//
// example: Array.Get(5) -> Array.Items[1]
//
//	                   ⬇
//	Bitmap: [0|0|1|0|0|1|0|1|...] <- 3 bits set
//	Items:  [*|*|*]               <- len(Items) = 3
//	           ⬆
//
//	Bitmap.Test(5):  true
//	Bitmap.Rank0(5): 1
type Array[T any] struct {
	Bitmap bitmap32.Bitmap
	Items  []T
}

// Get the value at i from the sparse array.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.Bitmap.Test(i) {
		return a.Items[a.Bitmap.Rank0(i)], true
	}
	return
}

// MustGet, use it only after a successful Test, or the behavior is
// undefined.
func (a *Array[T]) MustGet(i uint) T {
	return a.Items[a.Bitmap.Rank0(i)]
}

// UpdateAt sets the value at i via callback. The new value is returned
// and true if the value was already present.
func (a *Array[T]) UpdateAt(i uint, cb func(T, bool) T) (newValue T, wasPresent bool) {
	var rank0 int
	var oldValue T

	if wasPresent = a.Bitmap.Test(i); wasPresent {
		rank0 = a.Bitmap.Rank0(i)
		oldValue = a.Items[rank0]
	}

	newValue = cb(oldValue, wasPresent)

	if wasPresent {
		a.Items[rank0] = newValue
		return newValue, wasPresent
	}

	a.Bitmap = a.Bitmap.Set(i)
	rank0 = a.Bitmap.Rank0(i)
	a.insertItem(rank0, newValue)

	return newValue, wasPresent
}

// Len returns the number of items in the sparse array.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// Copy returns a shallow copy of the Array. The elements are copied using
// assignment; this is no deep clone.
func (a *Array[T]) Copy() *Array[T] {
	if a == nil {
		return nil
	}
	return &Array[T]{
		Bitmap: a.Bitmap,
		Items:  append(a.Items[:0:0], a.Items...),
	}
}

// InsertAt a value at i into the sparse array. If the value already
// exists, overwrite it with value and report true.
func (a *Array[T]) InsertAt(i uint, value T) (existed bool) {
	if a.Len() != 0 && a.Bitmap.Test(i) {
		a.Items[a.Bitmap.Rank0(i)] = value
		return true
	}

	a.Bitmap = a.Bitmap.Set(i)
	a.insertItem(a.Bitmap.Rank0(i), value)

	return false
}

// DeleteAt removes the value at i from the sparse array, zeroing the tail.
func (a *Array[T]) DeleteAt(i uint) (value T, existed bool) {
	if a.Len() == 0 || !a.Bitmap.Test(i) {
		return
	}

	rank0 := a.Bitmap.Rank0(i)
	value = a.Items[rank0]

	a.deleteItem(rank0)
	a.Bitmap = a.Bitmap.Clear(i)

	return value, true
}

// insertItem inserts item at index i, shifting the rest one position right.
//
// It panics if i is out of range.
func (a *Array[T]) insertItem(i int, item T) {
	if len(a.Items) < cap(a.Items) {
		a.Items = a.Items[:len(a.Items)+1] // fast resize, no alloc
	} else {
		var zero T
		a.Items = append(a.Items, zero)
	}

	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

// deleteItem at index i, shifting the rest one position left and clearing
// the tail item.
//
// It panics if i is out of range.
func (a *Array[T]) deleteItem(i int) {
	var zero T

	nl := len(a.Items) - 1
	copy(a.Items[i:], a.Items[i+1:])

	a.Items[nl] = zero
	a.Items = a.Items[:nl]
}
