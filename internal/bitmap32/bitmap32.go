// Copyright (c) 2026 Noah C. Benson
// SPDX-License-Identifier: MIT

// Package bitmap32 implements a single-word popcount-compressed bitmap.
//
// This is a narrowed cousin of a general purpose multi-word bitset: every
// PHAMT/THAMT node carries at most 32 cells (five bits of hash per level,
// §4.1 of the design), so one uint32 word is always enough and no slice of
// words, growth, or bounds checking against word count is needed.
package bitmap32

import "math/bits"

// Bitmap is a 32-slot popcount-compressed presence set. The zero value is
// the empty bitmap.
type Bitmap uint32

// Test reports whether slot i is present. i must be in [0, 32).
func (b Bitmap) Test(i uint) bool {
	return b&(1<<i) != 0
}

// Set returns a copy of b with slot i present.
func (b Bitmap) Set(i uint) Bitmap {
	return b | (1 << i)
}

// Clear returns a copy of b with slot i absent.
func (b Bitmap) Clear(i uint) Bitmap {
	return b &^ (1 << i)
}

// Count returns the number of present slots (the popcount).
func (b Bitmap) Count() int {
	return bits.OnesCount32(uint32(b))
}

// Rank0 maps a slot index to its position in the backing compact array:
// the number of set bits strictly below i. Only meaningful when slot i is
// itself set; callers test first.
func (b Bitmap) Rank0(i uint) int {
	return bits.OnesCount32(uint32(b) & ((1 << i) - 1))
}

// Next returns the lowest set slot >= i, and whether one was found.
func (b Bitmap) Next(i uint) (uint, bool) {
	if i >= 32 {
		return 0, false
	}
	word := uint32(b) >> i
	if word == 0 {
		return 0, false
	}
	return i + uint(bits.TrailingZeros32(word)), true
}
