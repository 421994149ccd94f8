// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package digit implements fixed-width, constant-time multi-precision arithmetic over N 64-bit limbs, little-endian
// (limb 0 is least significant). It is the bottom layer of the field arithmetic stack: every GF(p) and GF(p^2)
// operation for the p751 = 2^372*3^239-1 prime is built from the primitives in this package.
package digit

import "math/bits"

// N is the number of 64-bit limbs in a Word, chosen so that 64*N >= 768, comfortably covering the 751-bit prime and
// leaving headroom for Montgomery reduction's double-width intermediate without a second allocation shape.
const N = 12

// Word is a fixed-width N-limb unsigned integer, little-endian: Word[0] is the least significant limb.
type Word [N]uint64

// WideWord is the double-width accumulator produced by Multiply.
type WideWord [2 * N]uint64

// Zero sets w to 0 and returns it.
func (w *Word) Zero() *Word {
	*w = Word{}
	return w
}

// Copy sets w to a copy of u and returns w.
func (w *Word) Copy(u *Word) *Word {
	*w = *u
	return w
}

// IsZero returns 1 if w == 0, and 0 otherwise. Constant-time.
func (w *Word) IsZero() uint64 {
	var acc uint64
	for _, l := range w {
		acc |= l
	}

	return IsZero(acc)
}

// Equal returns 1 if w == u, and 0 otherwise. Constant-time.
func (w *Word) Equal(u *Word) uint64 {
	var acc uint64
	for i := range w {
		acc |= w[i] ^ u[i]
	}

	return IsZero(acc)
}

// Add sets w = a + b and returns the carry out of the top limb. Constant-time.
func Add(w, a, b *Word) uint64 {
	var carry uint64

	for i := 0; i < N; i++ {
		w[i], carry = bits.Add64(a[i], b[i], carry)
	}

	return carry
}

// Sub sets w = a - b and returns the borrow out of the top limb. Constant-time.
func Sub(w, a, b *Word) uint64 {
	var borrow uint64

	for i := 0; i < N; i++ {
		w[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}

	return borrow
}

// ShiftLeftOne sets w = a << 1 across the whole array and returns the bit shifted out of the top limb. Constant-time.
func ShiftLeftOne(w, a *Word) uint64 {
	var carry uint64

	for i := 0; i < N; i++ {
		next := a[i] >> 63
		w[i] = (a[i] << 1) | carry
		carry = next
	}

	return carry
}

// ShiftRightOne sets w = a >> 1 across the whole array. Constant-time.
func ShiftRightOne(w, a *Word) {
	var carry uint64

	for i := N - 1; i >= 0; i-- {
		next := a[i] << 63
		w[i] = (a[i] >> 1) | carry
		carry = next
	}
}

// Multiply sets w = a * b, a 2N-limb product, using schoolbook multiplication with carry propagation. Constant-time:
// the loop structure does not depend on the values of a or b, only on the fixed limb count N.
func Multiply(w *WideWord, a, b *Word) {
	var tmp WideWord

	for i := 0; i < N; i++ {
		var carry uint64

		for j := 0; j < N; j++ {
			hi, lo := bits.Mul64(a[i], b[j])

			var c uint64

			lo, c = bits.Add64(lo, tmp[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)

			tmp[i+j] = lo
			carry = hi
		}

		tmp[i+N] += carry
	}

	*w = tmp
}

// CSwap conditionally swaps the contents of a and b under mask (0 or all-ones, i.e. ^uint64(0)). Constant-time:
// both branches are always computed, selection is a masked XOR-swap.
func CSwap(a, b *Word, mask uint64) {
	for i := 0; i < N; i++ {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// CMove sets w to u if mask == 0, and to v if mask == all-ones. Constant-time.
func CMove(w, u, v *Word, mask uint64) {
	for i := 0; i < N; i++ {
		w[i] = (u[i] & ^mask) | (v[i] & mask)
	}
}

// Bit returns bit i of w (0 or 1), in constant time with respect to the limb array contents (i itself is assumed
// public, e.g. a loop counter, never a secret value).
func (w *Word) Bit(i int) uint64 {
	return (w[i/64] >> uint(i%64)) & 1
}

// IsEqual returns 1 if u == v, and 0 otherwise.
func IsEqual(u, v uint64) uint64 {
	return IsZero(u ^ v)
}

// IsZero returns 1 if u == 0, and 0 otherwise.
func IsZero(u uint64) uint64 {
	return (^IsNonZero(u)) & 1
}

// IsNonZero returns 1 if u != 0, and 0 otherwise.
func IsNonZero(u uint64) uint64 {
	return ((^uint64(0) & u) | (^(0 ^ u) & -u)) >> 63
}

// Mask returns ^uint64(0) if c == 1, and 0 if c == 0. c must be 0 or 1.
func Mask(c uint64) uint64 {
	return -c
}

// SetBytesLE sets w from a little-endian byte slice, zero-padding on the high end, and returns w.
func (w *Word) SetBytesLE(b []byte) *Word {
	*w = Word{}

	for i := 0; i < len(b); i++ {
		w[i/8] |= uint64(b[i]) << uint((i%8)*8)
	}

	return w
}

// BytesLE returns the little-endian byte encoding of w, truncated/padded to size bytes.
func (w *Word) BytesLE(size int) []byte {
	out := make([]byte, size)

	for i := 0; i < size; i++ {
		out[i] = byte(w[i/8] >> uint((i%8)*8))
	}

	return out
}
