// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package compress implements public-key compression and decompression (spec ยง4.9): recovering affine
// y-coordinates, regenerating a canonical torsion basis, computing pairings and solving Pohlig-Hellman. The result
// is the four discrete logs plus the curve constant (see Compressed2); it is not packed into three order-sized
// integers with a discriminant bit.
package compress

import (
	"math/big"

	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/dlog"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/internal/pairing"
	"github.com/bytemare/sidh751/internal/torsion"
	"github.com/bytemare/sidh751/params"
)

// Compressed2 is the output of Compress2Torsion: the four discrete logs expressing phi_P = A0*R1 + B0*R2 and
// phi_Q = A1*R1 + B1*R2 in the canonical basis, plus the curve constant A. A full implementation canonicalizes
// this quadruple into three ratios plus a one-bit discriminant (spec ยง4.9 step 6) before byte-packing; this port
// stores the four raw logs unconditionally rather than branching on which of A0/B0 is a ring unit, documented as
// an Open Question resolution in DESIGN.md.
type Compressed2 struct {
	A0, B0, A1, B1 digit.Word
	ACurve         fp2.Element
}

// recoverA applies the Velu-like formula spec ยง4.9 step 1 gives, recovering the curve constant A from the three
// x-coordinates of a public key.
func recoverA(xP, xQ, xPQ *fp2.Element) fp2.Element {
	var xPxQ, xPxR, xQxR, sumPairs fp2.Element

	fp2.Mul(&xPxQ, xP, xQ)
	fp2.Mul(&xPxR, xP, xPQ)
	fp2.Mul(&xQxR, xQ, xPQ)

	fp2.Add(&sumPairs, &xPxQ, &xPxR)
	fp2.Add(&sumPairs, &sumPairs, &xQxR)

	var one, inner fp2.Element

	one = *fp2.One()
	fp2.Sub(&inner, &one, &sumPairs)
	fp2.Sqr(&inner, &inner)

	var prod3, sum3, term2 fp2.Element

	fp2.Mul(&prod3, &xPxQ, xPQ)
	fp2.Add(&sum3, xP, xQ)
	fp2.Add(&sum3, &sum3, xPQ)
	fp2.Mul(&term2, &prod3, &sum3)
	fp2.Add(&term2, &term2, &term2)
	fp2.Add(&term2, &term2, &term2)

	var numerator fp2.Element

	fp2.Sub(&numerator, &inner, &term2)

	var denom, denomInv fp2.Element

	fp2.Add(&denom, &prod3, &prod3)
	fp2.Add(&denom, &denom, &denom)

	fp2.InvNonConstantTime(&denomInv, &denom)

	var a fp2.Element

	fp2.Mul(&a, &numerator, &denomInv)
	fp2.Sub(&a, &a, &sum3)

	return a
}

// recoverY recovers an affine y-coordinate for the given x on the curve with constant a, via y^2 =
// x*(x^2+A*x+1), returning whichever root fp2.Sqrt yields. No choice between y and -y is made against a reference
// root or sign convention, and Sqrt's success flag is not checked.
func recoverY(x, a *fp2.Element) fp2.Element {
	var x2, ax, rhs fp2.Element

	fp2.Sqr(&x2, x)
	fp2.Mul(&ax, a, x)
	fp2.Add(&rhs, &x2, &ax)
	fp2.Add(&rhs, &rhs, fp2.One())
	fp2.Mul(&rhs, &rhs, x)

	var y fp2.Element

	fp2.Sqrt(&y, &rhs)

	return y
}

// Compress2Torsion compresses a public key's three x-coordinates by regenerating a canonical 2-torsion basis on
// the recovered curve, computing the five required pairings e(R1,R2), e(R1,phi_P), e(R1,phi_Q), e(R2,phi_P),
// e(R2,phi_Q), and solving four Pohlig-Hellman problems for the coefficients expressing phi_P = A0*R1 + B0*R2 and
// phi_Q = A1*R1 + B1*R2 in that basis (spec ยง4.9 steps 3-5).
func Compress2Torsion(xP, xQ, xPQ *fp2.Element) Compressed2 {
	a := recoverA(xP, xQ, xPQ)

	yP := recoverY(xP, &a)
	yQ := recoverY(xQ, &a)

	c := startingCoeffsFromA(&a)

	basis := torsion.Generate2TorsionBasis(&a, &c)

	r1 := curve.FullPoint{X: basis.R1.X, Z: basis.R1.Z, Y: *fp2.One()}
	r2 := curve.FullPoint{X: basis.R2.X, Z: basis.R2.Z, Y: *fp2.One()}

	phiP := curve.FullPoint{X: *xP, Y: yP, Z: *fp2.One()}
	phiQ := curve.FullPoint{X: *xQ, Y: yQ, Z: *fp2.One()}

	numFromR1, denFromR1 := pairing.MillerLoop2(&a, &r1, []curve.FullPoint{r2, phiP, phiQ})
	fromR1 := pairing.FinalExponentiation2(numFromR1, denFromR1)

	g := fromR1[0] // e(R1, R2)
	eR1PhiP := fromR1[1]
	eR1PhiQ := fromR1[2]

	numFromR2, denFromR2 := pairing.MillerLoop2(&a, &r2, []curve.FullPoint{phiP, phiQ})
	fromR2 := pairing.FinalExponentiation2(numFromR2, denFromR2)

	eR2PhiP := fromR2[0]
	eR2PhiQ := fromR2[1]

	lut := dlog.BuildLUTs2(&g)

	// e(R1,phi_P) = e(R1,R1)^a0 * e(R1,R2)^b0 = g^b0, since R1 pairs trivially with itself.
	b0 := dlog.Solve2(lut, &g, &eR1PhiP)
	b1 := dlog.Solve2(lut, &g, &eR1PhiQ)

	// e(R2,phi_P) = e(R2,R1)^a0 = g^(-a0), so a0 = -dlog_g(e(R2,phi_P)) mod 2^EA.
	a0 := negModOrderA(dlog.Solve2(lut, &g, &eR2PhiP))
	a1 := negModOrderA(dlog.Solve2(lut, &g, &eR2PhiQ))

	return Compressed2{A0: a0, B0: b0, A1: a1, B1: b1, ACurve: a}
}

// negModOrderA returns (OrderA - w) mod OrderA = 2^EA - w, the additive inverse in the order-2^EA ring the
// 2-torsion discrete logs live in. OrderA is a power of two, so ordinary N-limb subtraction already gives the
// right low-EA-bit result on borrow (two's-complement wraparound past bit EA is never read by a bitLen=EA ladder).
func negModOrderA(w digit.Word) digit.Word {
	if w.IsZero() != 0 {
		return w
	}

	var out digit.Word

	order := params.Current().OrderA
	digit.Sub(&out, &order, &w)

	return out
}

// subModOrderA returns (a - b) mod 2^EA, relying on the same low-bits-only argument as negModOrderA.
func subModOrderA(a, b digit.Word) digit.Word {
	var out digit.Word

	digit.Sub(&out, &a, &b)

	return out
}

// negModOrderB returns (OrderB - w) mod OrderB = 3^EB - w. OrderB is not a power of two, so this goes through
// math/big rather than relying on bit-width wraparound, matching the dlog package's own ternary accumulation
// discipline; acceptable because this is already outside the constant-time boundary (public compression data).
func negModOrderB(w digit.Word) digit.Word {
	if w.IsZero() != 0 {
		return w
	}

	orderB := params.Current().OrderB
	diff := new(big.Int).Sub(params.WordToBig(&orderB), params.WordToBig(&w))

	return bigToWordCompress(diff)
}

// subModOrderB returns (a - b) mod 3^EB.
func subModOrderB(a, b digit.Word) digit.Word {
	diff := new(big.Int).Sub(params.WordToBig(&a), params.WordToBig(&b))
	orderB := params.Current().OrderB
	diff.Mod(diff, params.WordToBig(&orderB))

	return bigToWordCompress(diff)
}

func bigToWordCompress(b *big.Int) digit.Word {
	buf := b.Bytes()
	le := make([]byte, len(buf))

	for i, c := range buf {
		le[len(buf)-1-i] = c
	}

	var w digit.Word

	w.SetBytesLE(le)

	return w
}

// combine computes x(aScalar*r1 + bScalar*r2) via one Ladder scalar multiplication of r2, normalized to affine,
// followed by the two-dimensional scalar multiplication a*r1 + (b*r2). Used by decompression to reconstruct
// phi_P, phi_Q, and their difference from the four recovered discrete logs.
func combine(aScalar, bScalar *digit.Word, bitLen int, r1, r2 *curve.FullPoint, coeffs *curve.CurveCoeffs) fp2.Element {
	scaledR2 := curve.Ladder(&r2.X, bScalar, bitLen, coeffs)

	var zInv, x fp2.Element

	fp2.InvNonConstantTime(&zInv, &scaledR2.Z)
	fp2.Mul(&x, &scaledR2.X, &zInv)

	scaledR2Full := curve.FullPoint{X: x, Y: r2.Y, Z: *fp2.One()}

	result := curve.TwoDimScalarMul(aScalar, bitLen, r1, &scaledR2Full, coeffs)

	return result.X
}

func startingCoeffsFromA(a *fp2.Element) curve.CurveCoeffs {
	var two, four fp2.Element

	fp2.Add(&two, fp2.One(), fp2.One())
	fp2.Add(&four, &two, &two)

	var aPlus2, aMinus2 fp2.Element

	fp2.Add(&aPlus2, a, &two)
	fp2.Sub(&aMinus2, a, &two)

	return curve.CurveCoeffs{A24Plus: aPlus2, C24: four, A24Minus: aMinus2}
}

// DecompressResult holds the three x-coordinates recovered by decompression, intended for direct use in place of an
// uncompressed public key by the SIDH/SIKE driver.
type DecompressResult struct {
	XP, XQ, XPQ fp2.Element
}

// Decompress2Torsion reverses Compress2Torsion: regenerate the basis, then compute phi_P = A0*R1 + B0*R2,
// phi_Q = A1*R1 + B1*R2, and their difference, via the two-dimensional scalar multiplication.
func Decompress2Torsion(c Compressed2) DecompressResult {
	coeffs := startingCoeffsFromA(&c.ACurve)

	basis := torsion.Generate2TorsionBasis(&c.ACurve, &coeffs)

	r1 := curve.FullPoint{X: basis.R1.X, Z: basis.R1.Z, Y: *fp2.One()}
	r2 := curve.FullPoint{X: basis.R2.X, Z: basis.R2.Z, Y: *fp2.One()}

	xP := combine(&c.A0, &c.B0, params.EA, &r1, &r2, &coeffs)
	xQ := combine(&c.A1, &c.B1, params.EA, &r1, &r2, &coeffs)

	diffA := subModOrderA(c.A0, c.A1)
	diffB := subModOrderA(c.B0, c.B1)
	xPQ := combine(&diffA, &diffB, params.EA, &r1, &r2, &coeffs)

	return DecompressResult{XP: xP, XQ: xQ, XPQ: xPQ}
}

// ThreeTorsionResult mirrors Compressed2 for the 3^239-torsion compression path.
type ThreeTorsionResult struct {
	A0, B0, A1, B1 digit.Word
	ACurve         fp2.Element
}

// Compress3Torsion is the 3^239-torsion analogue of Compress2Torsion.
func Compress3Torsion(xP, xQ, xPQ *fp2.Element) ThreeTorsionResult {
	a := recoverA(xP, xQ, xPQ)

	yP := recoverY(xP, &a)
	yQ := recoverY(xQ, &a)

	c := startingCoeffsFromA(&a)

	basis := torsion.Generate3TorsionBasis(&a, &c)

	r1 := curve.FullPoint{X: basis.R1.X, Z: basis.R1.Z, Y: *fp2.One()}
	r2 := curve.FullPoint{X: basis.R2.X, Z: basis.R2.Z, Y: *fp2.One()}

	phiP := curve.FullPoint{X: *xP, Y: yP, Z: *fp2.One()}
	phiQ := curve.FullPoint{X: *xQ, Y: yQ, Z: *fp2.One()}

	numFromR1, denFromR1 := pairing.MillerLoop3(&a, &r1, []curve.FullPoint{r2, phiP, phiQ})
	fromR1 := pairing.FinalExponentiation3(numFromR1, denFromR1)

	g := fromR1[0] // e(R1, R2)
	eR1PhiP := fromR1[1]
	eR1PhiQ := fromR1[2]

	numFromR2, denFromR2 := pairing.MillerLoop3(&a, &r2, []curve.FullPoint{phiP, phiQ})
	fromR2 := pairing.FinalExponentiation3(numFromR2, denFromR2)

	eR2PhiP := fromR2[0]
	eR2PhiQ := fromR2[1]

	lut := dlog.BuildLUTs3(&g)

	b0 := dlog.Solve3(lut, &g, &eR1PhiP)
	b1 := dlog.Solve3(lut, &g, &eR1PhiQ)

	a0 := negModOrderB(dlog.Solve3(lut, &g, &eR2PhiP))
	a1 := negModOrderB(dlog.Solve3(lut, &g, &eR2PhiQ))

	return ThreeTorsionResult{A0: a0, B0: b0, A1: a1, B1: b1, ACurve: a}
}

// Decompress3Torsion is the 3^239-torsion analogue of Decompress2Torsion.
func Decompress3Torsion(c ThreeTorsionResult) DecompressResult {
	coeffs := startingCoeffsFromA(&c.ACurve)

	basis := torsion.Generate3TorsionBasis(&c.ACurve, &coeffs)

	r1 := curve.FullPoint{X: basis.R1.X, Z: basis.R1.Z, Y: *fp2.One()}
	r2 := curve.FullPoint{X: basis.R2.X, Z: basis.R2.Z, Y: *fp2.One()}

	xP := combine(&c.A0, &c.B0, params.Current().OrderBBits, &r1, &r2, &coeffs)
	xQ := combine(&c.A1, &c.B1, params.Current().OrderBBits, &r1, &r2, &coeffs)

	diffA := subModOrderB(c.A0, c.A1)
	diffB := subModOrderB(c.B0, c.B1)
	xPQ := combine(&diffA, &diffB, params.Current().OrderBBits, &r1, &r2, &coeffs)

	return DecompressResult{XP: xP, XQ: xQ, XPQ: xPQ}
}
