// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field implements GF(p) arithmetic for the p751 = 2^372*3^239-1 prime, in the Montgomery domain, building
// on the N-limb layer in internal/digit.
package field

import (
	"math/bits"

	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/params"
)

// An Element of GF(p), Montgomery-represented (e = a*R mod p), kept in [0, 2p).
type Element struct {
	v digit.Word
}

// New returns a new, zero-valued Element.
func New() *Element {
	return &Element{}
}

// One returns the Montgomery representation of 1.
func One() *Element {
	p := params.Current()
	return &Element{v: p.R}
}

// FromUint64 returns the Montgomery representation of a small public constant.
func FromUint64(u uint64) *Element {
	var nm digit.Word
	nm[0] = u

	return mont(&nm)
}

func mont(nm *digit.Word) *Element {
	p := params.Current()
	e := New()
	Multiply(e, &Element{v: *nm}, &Element{v: p.R2})

	return e
}

// Set sets e to u and returns e.
func (e *Element) Set(u *Element) *Element {
	e.v = u.v
	return e
}

// Zero sets e to 0 and returns e.
func (e *Element) Zero() *Element {
	e.v = digit.Word{}
	return e
}

// IsZero returns 1 if e represents 0 (in either [0,p) or [p,2p) form), and 0 otherwise. Constant-time.
func (e *Element) IsZero() uint64 {
	return e.Copy().Correct().v.IsZero()
}

// Equal returns 1 if e == u as field elements (after correction), and 0 otherwise. Constant-time.
func (e *Element) Equal(u *Element) uint64 {
	a := e.Copy().Correct()
	b := u.Copy().Correct()

	return a.v.Equal(&b.v)
}

// Copy returns a copy of e.
func (e *Element) Copy() *Element {
	return &Element{v: e.v}
}

// Correct conditionally subtracts p from e until e is in [0, p). e is assumed to be in [0, 3p), which covers every
// value this package's Add/Sub ever produce. Constant-time.
func (e *Element) Correct() *Element {
	p := params.Current()

	for i := 0; i < 2; i++ {
		var reduced digit.Word

		borrow := digit.Sub(&reduced, &e.v, &p.P)
		mask := digit.Mask(^borrow & 1) // borrow==0 means e.v >= p: subtraction was valid, select it

		digit.CMove(&e.v, &e.v, &reduced, mask)
	}

	return e
}

// Add sets e = u + v, reduced into [0, 2p). Constant-time.
func Add(e, u, v *Element) *Element {
	p := params.Current()

	var sum digit.Word

	digit.Add(&sum, &u.v, &v.v)

	var reduced digit.Word

	borrow := digit.Sub(&reduced, &sum, &p.P2)
	mask := digit.Mask(^borrow & 1) // borrow==0: sum >= 2p, the subtracted value is correct

	digit.CMove(&e.v, &sum, &reduced, mask)

	return e
}

// Sub sets e = u - v, reduced into [0, 2p). Constant-time.
func Sub(e, u, v *Element) *Element {
	p := params.Current()

	var diff digit.Word

	borrow := digit.Sub(&diff, &u.v, &v.v)

	var corrected digit.Word

	digit.Add(&corrected, &diff, &p.P2)
	mask := digit.Mask(borrow)

	digit.CMove(&e.v, &diff, &corrected, mask)

	return e
}

// Neg sets e = -u, reduced into [0, 2p). Constant-time.
func Neg(e, u *Element) *Element {
	p := params.Current()
	return Sub(e, &Element{v: p.P2}, u)
}

// Halve sets e = u/2 (mod p), in [0, 2p). Constant-time.
func Halve(e, u *Element) *Element {
	p := params.Current()

	mask := digit.Mask(u.v[0] & 1) // odd: add p before halving so the low bit cancels

	var tmp digit.Word

	digit.CMove(&tmp, &digit.Word{}, &p.P, mask)

	var sum digit.Word

	digit.Add(&sum, &u.v, &tmp)
	digit.ShiftRightOne(&e.v, &sum)

	return e
}

// Multiply sets e = u * v via Montgomery multiplication (CIOS-style: widen, then reduce). Constant-time.
func Multiply(e, u, v *Element) *Element {
	var wide digit.WideWord

	digit.Multiply(&wide, &u.v, &v.v)
	e.v = montgomeryReduce(&wide)

	return e
}

// Square sets e = u^2. Constant-time.
func Square(e, u *Element) *Element {
	return Multiply(e, u, u)
}

// montgomeryReduce reduces a 2N-limb product T into an N-limb Montgomery-domain result T*R^-1 mod p, using the
// standard separated multiply-then-reduce (schoolbook CIOS) method: for each of the low N limbs, compute a quotient
// limb that cancels it mod 2^64 using -p^-1 mod 2^64, then add back q*p shifted into position.
func montgomeryReduce(t *digit.WideWord) digit.Word {
	p := params.Current()

	var acc digit.WideWord

	acc = *t

	for i := 0; i < digit.N; i++ {
		q := acc[i] * p.Ninv0

		var qw digit.Word

		qw[0] = q

		var qp digit.WideWord

		digit.Multiply(&qp, &qw, &p.P)

		// Add qp (shifted left by i limbs) into acc, carrying up through the rest of the limbs.
		var carry uint64

		for j := 0; j < digit.N+1 && i+j < len(acc); j++ {
			s, c := addWithCarry(acc[i+j], qp[j], carry)
			acc[i+j] = s
			carry = c
		}

		for k := i + digit.N + 1; carry != 0 && k < len(acc); k++ {
			s, c := addWithCarry(acc[k], 0, carry)
			acc[k] = s
			carry = c
		}
	}

	var result digit.Word

	copy(result[:], acc[digit.N:2*digit.N])

	// result is in [0, 2p); a final conditional subtraction keeps callers within [0,2p), matching spec's "inputs and
	// outputs lie in [0,2p)" invariant without collapsing all the way to [0,p) (Correct does that on demand).
	var reduced digit.Word

	borrow := digit.Sub(&reduced, &result, &p.P2)
	mask := digit.Mask(^borrow & 1)
	digit.CMove(&result, &result, &reduced, mask)

	return result
}

// addWithCarry computes a+b+carryIn, returning the result and the total carry-out. In montgomeryReduce above carryIn
// is always the previous call's carry-out, 0 or 1, and the carry-out is again 0 or 1: when a+b overflows, its low
// word is at most 2^64-2, so adding carryIn cannot overflow a second time.
func addWithCarry(a, b, carryIn uint64) (uint64, uint64) {
	s1, c1 := bits.Add64(a, b, 0)
	s2, c2 := bits.Add64(s1, carryIn, 0)

	return s2, c1 + c2
}

// ToMont sets e = u*R mod p (u given in non-Montgomery form packed into e.v), and returns e.
func ToMont(e, u *Element) *Element {
	p := params.Current()
	return Multiply(e, u, &Element{v: p.R2})
}

// FromMont sets e = u*R^-1 mod p (i.e. converts out of the Montgomery domain), and returns e.
func FromMont(e, u *Element) *Element {
	return Multiply(e, u, &Element{v: digit.Word{1}})
}

// CMove sets e to u if mask == 0, and to v if mask == all-ones. Constant-time.
func (e *Element) CMove(u, v *Element, mask uint64) *Element {
	digit.CMove(&e.v, &u.v, &v.v, mask)
	return e
}

// CSwap conditionally swaps u and v under mask. Constant-time.
func CSwap(u, v *Element, mask uint64) {
	digit.CSwap(&u.v, &v.v, mask)
}

// Bytes returns the FieldElementBytes little-endian encoding of e's non-Montgomery, fully-reduced value.
func (e *Element) Bytes() []byte {
	n := e.Copy().Correct()
	return n.v.BytesLE(params.FieldElementBytes)
}

// SetBytes sets e from a FieldElementBytes little-endian encoding (interpreted as a non-Montgomery value, then
// converted into the Montgomery domain), and returns e.
func (e *Element) SetBytes(b []byte) *Element {
	var nm digit.Word

	nm.SetBytesLE(b)

	return ToMont(e, &Element{v: nm})
}

// Raw exposes the underlying limb array, for use by fp2 and curve packages built directly on top of field.
func (e *Element) Raw() *digit.Word {
	return &e.v
}

// FromRaw builds an Element directly from a limb array already in Montgomery form (no conversion performed). Used
// internally by packages that compose field elements from intermediate limb arithmetic.
func FromRaw(v digit.Word) Element {
	return Element{v: v}
}
