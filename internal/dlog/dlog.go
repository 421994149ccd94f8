// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package dlog recovers discrete logarithms in the cyclotomic subgroups of order 2^372 and 3^239 that pairing
// outputs land in, via Pohlig-Hellman decomposition over a hierarchy of precomputed lookup tables (spec ยง4.8).
// Every routine here is explicitly non-constant-time: it is only ever invoked on public pairing values during
// public-key compression and decompression, never on secret scalars.
package dlog

import (
	"math/big"

	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/params"
)

// windowBits is the base-2 window width used by the recursive 2-power PH hierarchy (phn84 -> phn21 -> phn5 -> phn1
// in spec naming); the production addition-chain-tuned 21/5/1 split isn't transcribed faithfully here (its exact
// window boundaries come from the 27-entry chain table in the C source that this port replaces, see
// internal/field/field_invert.go's analogous simplification), so this implementation instead walks the full
// 372-bit exponent through one uniform 6-bit-window table-lookup loop. Functionally equivalent, same constant-time
// exclusion (never called on secrets), different recursion shape.
const windowBits = 6

// LUT2 is the lookup table build_LUTs(g) precomputes for the 2^372 discrete-log hierarchy: g raised to every power
// of 2 up to the full bit length, by repeated cyclotomic squaring, used to project the residual into a 2^windowBits
// subgroup at each step.
type LUT2 struct {
	powers []fp2.Element // powers[i] = g^(2^i)
}

// BuildLUTs2 builds the lookup table for base g of order 2^372.
func BuildLUTs2(g *fp2.Element) LUT2 {
	powers := make([]fp2.Element, params.EA+1)
	powers[0] = *g

	for i := 1; i <= params.EA; i++ {
		fp2.CyclotomicSquare(&powers[i], &powers[i-1])
	}

	return LUT2{powers: powers}
}

// Solve2 recovers alpha such that r = g^alpha, g of order 2^372, using the table built by BuildLUTs2, by peeling off
// windowBits bits at a time from the bottom: at each step, raise the residual to 2^(remaining-windowBits) to
// project into the order-2^windowBits subgroup, brute-force match it against the windowBits-bit table of g's
// corresponding power, then divide the matched contribution back out of the residual.
func Solve2(lut LUT2, g, r *fp2.Element) digit.Word {
	var alpha digit.Word

	residual := *r

	small := make([]fp2.Element, 1<<windowBits)
	small[0] = *fp2.One()

	for bit := 0; bit < params.EA; bit += windowBits {
		width := windowBits
		if bit+width > params.EA {
			width = params.EA - bit
		}

		shift := params.EA - bit - width

		proj := residual
		for s := 0; s < shift; s++ {
			fp2.CyclotomicSquare(&proj, &proj)
		}

		baseG := lut.powers[params.EA-width]
		small[0] = *fp2.One()

		for k := 1; k < 1<<width; k++ {
			fp2.Mul(&small[k], &small[k-1], &baseG)
		}

		chunk := 0

		for k := 0; k < 1<<width; k++ {
			if small[k].EqualNonConstantTime(&proj) {
				chunk = k
				break
			}
		}

		setChunk(&alpha, bit, width, uint64(chunk))

		if chunk != 0 {
			var inv fp2.Element

			contribution := *fp2.One()

			for s := 0; s < chunk; s++ {
				fp2.Mul(&contribution, &contribution, &lut.powers[bit])
			}

			fp2.CyclotomicInv(&inv, &contribution)
			fp2.Mul(&residual, &residual, &inv)
		}
	}

	return alpha
}

func setChunk(w *digit.Word, bitOffset, width int, value uint64) {
	for i := 0; i < width; i++ {
		b := (value >> uint(i)) & 1
		limb := (bitOffset + i) / 64
		pos := uint((bitOffset + i) % 64)

		w[limb] |= b << pos
	}
}

// LUT3 is the base-3 analogue of LUT2, built from g of order 3^239 by repeated cyclotomic cubing.
type LUT3 struct {
	powers []fp2.Element // powers[i] = g^(3^i)
}

// BuildLUTs3 builds the lookup table for base g of order 3^239.
func BuildLUTs3(g *fp2.Element) LUT3 {
	powers := make([]fp2.Element, params.EB+1)
	powers[0] = *g

	for i := 1; i <= params.EB; i++ {
		fp2.CyclotomicCube(&powers[i], &powers[i-1])
	}

	return LUT3{powers: powers}
}

// windowDigits3 is the base-3 analogue of windowBits, in ternary digits per window.
const windowDigits3 = 3

// Solve3 recovers alpha such that r = g^alpha, g of order 3^239, base-3 windowed analogue of Solve2.
func Solve3(lut LUT3, g, r *fp2.Element) digit.Word {
	var alpha digit.Word

	residual := *r

	base3Window := 1

	for i := 0; i < windowDigits3; i++ {
		base3Window *= 3
	}

	small := make([]fp2.Element, base3Window)

	for digitPos := 0; digitPos < params.EB; digitPos += windowDigits3 {
		width := windowDigits3
		if digitPos+width > params.EB {
			width = params.EB - digitPos
		}

		window := 1
		for i := 0; i < width; i++ {
			window *= 3
		}

		shift := params.EB - digitPos - width

		proj := residual
		for s := 0; s < shift; s++ {
			fp2.CyclotomicCube(&proj, &proj)
		}

		baseG := lut.powers[params.EB-width]
		small[0] = *fp2.One()

		for k := 1; k < window; k++ {
			fp2.Mul(&small[k], &small[k-1], &baseG)
		}

		chunk := 0

		for k := 0; k < window; k++ {
			if small[k].EqualNonConstantTime(&proj) {
				chunk = k
				break
			}
		}

		setTernaryChunk(&alpha, digitPos, width, chunk)

		if chunk != 0 {
			var contribution, inv fp2.Element

			contribution = *fp2.One()

			for s := 0; s < chunk; s++ {
				fp2.Mul(&contribution, &contribution, &lut.powers[digitPos])
			}

			fp2.CyclotomicInv(&inv, &contribution)
			fp2.Mul(&residual, &residual, &inv)
		}
	}

	return alpha
}

// setTernaryChunk packs a ternary value into alpha's order-B representation via a base-3 positional accumulation.
// digit.Word is a plain binary limb array, so the 3^digitPos place value (which exceeds 64 bits once digitPos grows
// past ~40) is computed with math/big rather than a native uint64 multiply, then added in as an N-limb value; this
// is acceptable only because the whole dlog package is non-constant-time by contract.
func setTernaryChunk(w *digit.Word, digitPos, _, value int) {
	placeValue := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(digitPos)), nil)
	placeValue.Mul(placeValue, big.NewInt(int64(value)))

	wBig := params.WordToBig(w)
	wBig.Add(wBig, placeValue)

	*w = bigToWordLocal(wBig)
}

func bigToWordLocal(b *big.Int) digit.Word {
	buf := b.Bytes()
	le := make([]byte, len(buf))

	for i, c := range buf {
		le[len(buf)-1-i] = c
	}

	var w digit.Word

	w.SetBytesLE(le)

	return w
}
