// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package params builds the immutable curve-parameter bundle for the p751 = 2^372*3^239-1 SIDH/SIKE instance: the
// prime, its Montgomery radix constants, the two smooth subgroup orders and their Montgomery-mod-order constants,
// and the starting supersingular curve. Every value here is public and process-wide; nothing in this package ever
// touches a secret. Constants are derived from their defining formulas through math/big at init() time rather than
// hand-transcribed as 768-bit literals, the same way the teacher's curve.go builds its field and group orders from
// decimal strings instead of trusting opaque limb tables.
package params

import (
	"math/big"

	"github.com/bytemare/sidh751/internal/digit"
)

const (
	// EA is the exponent of the 2-power subgroup order: oA = 2^EA.
	EA = 372

	// EB is the exponent of the 3-power subgroup order: oB = 3^EB.
	EB = 239

	// OrderWords is the limb count (64-bit words) of the fixed-width order-ring representation, sized to hold both
	// 2^EA and 3^EB (the latter needs ceil(EB*log2(3)) = 379 bits).
	OrderWords = 6

	// FieldElementBytes is the little-endian encoded size of a GF(p) element: ceil(751/8).
	FieldElementBytes = 94

	// PrivateKeyABytes is the encoded size of Alice's (2^EA-side) private scalar.
	PrivateKeyABytes = 48

	// PrivateKeyBBytes is the encoded size of Bob's (3^EB-side) private scalar.
	PrivateKeyBBytes = 48
)

// Params bundles every public, process-wide constant the core needs. It is built once at package init, returned by value from Current, and passed by value
// down call chains, per the "expose as immutable bundle values" discipline of spec ยง3/ยง9.
type Params struct {
	// P is the field prime, p = 2^EA*3^EB - 1.
	P digit.Word

	// P2 is 2p, used by field correction and addition routines that must stay inside [0, 4p) intermediate ranges.
	P2 digit.Word

	// R is the Montgomery radix R = 2^(64*N) mod p.
	R digit.Word

	// R2 is R^2 mod p, used to enter Montgomery domain.
	R2 digit.Word

	// R3 is R^3 mod p, occasionally convenient for chained conversions.
	R3 digit.Word

	// Ninv0 is -p^-1 mod 2^64, the single-limb Montgomery reduction constant.
	Ninv0 uint64

	// OrderA is 2^EA, little-endian in OrderWords limbs (only the low 6 words of a digit.Word are meaningful).
	OrderA digit.Word

	// OrderB is 3^EB, little-endian in OrderWords limbs.
	OrderB digit.Word

	// OrderBMontR is 2^(64*OrderWords) mod OrderB, the Montgomery radix for the order-B ring.
	OrderBMontR digit.Word

	// OrderBMontR2 is OrderBMontR^2 mod OrderB.
	OrderBMontR2 digit.Word

	// OrderBNinv0 is -OrderB^-1 mod 2^64.
	OrderBNinv0 uint64

	// OrderBBits is the bit length of 3^EB (379 for EB=239): the number of bits a binary Montgomery ladder must
	// walk to cover the full range of a B-side OrderScalar, as opposed to EB itself, which counts base-3 tripling
	// steps/ternary digits, not bits.
	OrderBBits int
}

var global Params

func init() {
	p := new(big.Int).Lsh(big.NewInt(1), EA)
	three := new(big.Int).Exp(big.NewInt(3), big.NewInt(EB), nil)
	p.Mul(p, three)
	p.Sub(p, big.NewInt(1))

	global.P = bigToWord(p)
	global.P2 = bigToWord(new(big.Int).Lsh(p, 1))

	radixBits := uint(digit.N * 64)
	r := new(big.Int).Lsh(big.NewInt(1), radixBits)
	r.Mod(r, p)
	global.R = bigToWord(r)

	r2 := new(big.Int).Mul(r, r)
	r2.Mod(r2, p)
	global.R2 = bigToWord(r2)

	r3 := new(big.Int).Mul(r2, r)
	r3.Mod(r3, p)
	global.R3 = bigToWord(r3)

	global.Ninv0 = negInverseMod64(p)

	global.OrderA = bigToWord(new(big.Int).Lsh(big.NewInt(1), EA))
	orderB := new(big.Int).Exp(big.NewInt(3), big.NewInt(EB), nil)
	global.OrderB = bigToWord(orderB)

	orderRadixBits := uint(OrderWords * 64)
	ordR := new(big.Int).Lsh(big.NewInt(1), orderRadixBits)
	ordR.Mod(ordR, orderB)
	global.OrderBMontR = bigToWord(ordR)

	ordR2 := new(big.Int).Mul(ordR, ordR)
	ordR2.Mod(ordR2, orderB)
	global.OrderBMontR2 = bigToWord(ordR2)

	global.OrderBNinv0 = negInverseMod64(orderB)
	global.OrderBBits = orderB.BitLen()
}

// Current returns the (only) curve-parameter bundle this module supports. Runtime-tunable security levels are an
// explicit Non-goal (spec ยง1), so there is exactly one Params value, built once at init.
func Current() Params {
	return global
}

// negInverseMod64 computes -m^-1 mod 2^64 via Newton's iteration (Hensel lifting for 2-adic inverses), a closed-form
// alternative to hard-coding the constant, and the same trick the Montgomery-multiplication literature (and, e.g.,
// Fiat-Crypto's generated code that the teacher's internal/field builds on) uses to derive it.
func negInverseMod64(m *big.Int) uint64 {
	m0 := m.Uint64()
	// y such that m0*y == 1 mod 2^64, by Newton-Raphson on the 2-adic inverse, doubling correct bits each round.
	y := uint64(1)
	for i := 0; i < 6; i++ {
		y = y * (2 - m0*y)
	}

	return -y
}

func bigToWord(b *big.Int) digit.Word {
	buf := b.Bytes()
	le := make([]byte, len(buf))

	for i, c := range buf {
		le[len(buf)-1-i] = c
	}

	var w digit.Word

	w.SetBytesLE(le)

	return w
}

// WordToBig converts a limb array back to a big.Int, for use in tests and in the deliberately non-constant-time
// helpers (Pohlig-Hellman, binary-GCD inversion) that are allowed to use big.Int internally.
func WordToBig(w *digit.Word) *big.Int {
	buf := w.BytesLE(digit.N * 8)
	le := make([]byte, len(buf))

	for i, c := range buf {
		le[len(buf)-1-i] = c
	}

	return new(big.Int).SetBytes(le)
}
