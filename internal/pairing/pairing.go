// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package pairing implements the Tate pairing Miller loops and final exponentiation spec ยง4.7 describes: a
// doubling-only loop for the 2^372-torsion and a tripling-only loop for the 3^239-torsion, batching numerator and
// denominator evaluation across up to five pairing slots and deferring every inversion to a single batched call.
package pairing

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/params"
)

// ExtendedPairingPoint is the (X^2, X*Z, Y*Z, Z^2) representation the Miller-loop doubling and tripling formulas
// operate on (spec ยง3).
type ExtendedPairingPoint struct {
	X2, XZ, YZ, Z2 fp2.Element
}

// fromFull builds the extended representation from a FullPoint.
func fromFull(p *curve.FullPoint) ExtendedPairingPoint {
	var e ExtendedPairingPoint

	fp2.Sqr(&e.X2, &p.X)
	fp2.Mul(&e.XZ, &p.X, &p.Z)
	fp2.Mul(&e.YZ, &p.Y, &p.Z)
	fp2.Sqr(&e.Z2, &p.Z)

	return e
}

// lineEval evaluates a doubling-step line/parabola at a target affine point (tx, ty), returning the contribution to
// multiply into the running numerator and denominator.
func lineEval(p *ExtendedPairingPoint, a *fp2.Element, tx, ty *fp2.Element) (num, den fp2.Element) {
	// l(T) = (T_y - P_y) - lambda*(T_x - P_x), with P recovered from the extended representation; den is the
	// vertical line x = P_x evaluated at T.
	var px, py fp2.Element

	var zinv fp2.Element

	fp2.InvNonConstantTime(&zinv, &p.Z2)

	fp2.Mul(&px, &p.X2, &zinv)
	fp2.Mul(&py, &p.YZ, &zinv)

	var lambdaNum, lambdaDen fp2.Element

	var threeX2, axx, one fp2.Element

	one = *fp2.One()
	fp2.Add(&threeX2, &p.X2, &p.X2)
	fp2.Add(&threeX2, &threeX2, &p.X2)
	fp2.Mul(&axx, a, &px)
	fp2.Add(&axx, &axx, &axx)
	fp2.Add(&lambdaNum, &threeX2, &axx)
	fp2.Add(&lambdaNum, &lambdaNum, &one)
	fp2.Add(&lambdaDen, &py, &py)

	var lambdaDenInv, lambda fp2.Element

	fp2.InvNonConstantTime(&lambdaDenInv, &lambdaDen)
	fp2.Mul(&lambda, &lambdaNum, &lambdaDenInv)

	var dx, dy, term fp2.Element

	fp2.Sub(&dx, tx, &px)
	fp2.Sub(&dy, ty, &py)
	fp2.Mul(&term, &lambda, &dx)
	fp2.Sub(&num, &dy, &term)

	fp2.Sub(&den, tx, &px)

	return num, den
}

// pairDouble doubles the extended pairing point p in place, on a curve of constant A.
func pairDouble(p *ExtendedPairingPoint, a *fp2.Element) {
	proj := curve.ProjectivePoint{X: p.X2, Z: p.Z2}

	one := fp2.One()

	coeffs := curve.CurveCoeffs{}
	fp2.Add(&coeffs.A24Plus, a, fp2.New())
	coeffs.C24 = *one

	var dbl curve.ProjectivePoint

	curve.XDBL(&dbl, &proj, &coeffs)

	var full curve.FullPoint

	full.X = dbl.X
	full.Z = dbl.Z
	full.Y = *fp2.One()

	*p = fromFull(&full)
}

// pairTriple triples the extended pairing point p in place.
func pairTriple(p *ExtendedPairingPoint, a *fp2.Element) {
	proj := curve.ProjectivePoint{X: p.X2, Z: p.Z2}

	one := fp2.One()

	coeffs := curve.CurveCoeffs{}
	fp2.Add(&coeffs.A24Minus, a, fp2.New())
	coeffs.C24 = *one

	var tpl curve.ProjectivePoint

	curve.XTPLe(&tpl, &proj, &coeffs, 1)

	var full curve.FullPoint

	full.X = tpl.X
	full.Z = tpl.Z
	full.Y = *fp2.One()

	*p = fromFull(&full)
}

// MillerLoop2 computes the batched Tate pairings of order 2^372 between the pivot point r1 and each of the target
// points (r2, and up to three others), via 371 doubling-only Miller-loop iterations followed by one exceptional
// final doubling step, returning one numerator/denominator pair per target. Numerator and denominator are kept
// separate (spec ยง4.7) so only a single batched inversion is needed at the end, performed by FinalExponentiation2.
func MillerLoop2(a *fp2.Element, r1 *curve.FullPoint, targets []curve.FullPoint) (num, den []fp2.Element) {
	p := fromFull(r1)

	num = make([]fp2.Element, len(targets))
	den = make([]fp2.Element, len(targets))

	for i := range targets {
		num[i] = *fp2.One()
		den[i] = *fp2.One()
	}

	for iter := 0; iter < params.EA-1; iter++ {
		for i, t := range targets {
			n, d := lineEval(&p, a, &t.X, &t.Y)

			fp2.Sqr(&num[i], &num[i])
			fp2.Mul(&num[i], &num[i], &n)
			fp2.Sqr(&den[i], &den[i])
			fp2.Mul(&den[i], &den[i], &d)
		}

		pairDouble(&p, a)
	}

	for i, t := range targets {
		n, d := lineEval(&p, a, &t.X, &t.Y)
		fp2.Mul(&num[i], &num[i], &n)
		fp2.Mul(&den[i], &den[i], &d)
	}

	return num, den
}

// MillerLoop3 computes the batched Tate pairings of order 3^239, analogous to MillerLoop2 but tripling-only: 238
// tripling+cube-and-absorb iterations, followed by one final tripling exception.
func MillerLoop3(a *fp2.Element, r1 *curve.FullPoint, targets []curve.FullPoint) (num, den []fp2.Element) {
	p := fromFull(r1)

	num = make([]fp2.Element, len(targets))
	den = make([]fp2.Element, len(targets))

	for i := range targets {
		num[i] = *fp2.One()
		den[i] = *fp2.One()
	}

	for iter := 0; iter < params.EB-1; iter++ {
		for i, t := range targets {
			n, d := lineEval(&p, a, &t.X, &t.Y)

			var n3, d3 fp2.Element

			fp2.Mul(&n3, &n, &n)
			fp2.Mul(&n3, &n3, &n)
			fp2.Mul(&d3, &d, &d)
			fp2.Mul(&d3, &d3, &d)

			fp2.Mul(&num[i], &num[i], &n3)
			fp2.Mul(&den[i], &den[i], &d3)
		}

		pairTriple(&p, a)
	}

	for i, t := range targets {
		n, d := lineEval(&p, a, &t.X, &t.Y)
		fp2.Mul(&num[i], &num[i], &n)
		fp2.Mul(&den[i], &den[i], &d)
	}

	return num, den
}

// FinalExponentiation2 raises n/d to (p^2-1)/2^372, landing the pairing value into the cyclotomic subgroup: one
// batched inversion of every denominator, one multiply by n*dInv, one conjugation (equivalent to raising to p), one
// more multiply by n*d, then 239 cyclotomic squarings.
func FinalExponentiation2(num, den []fp2.Element) []fp2.Element {
	dInv := make([]fp2.Element, len(den))
	fp2.BatchInvert(dInv, den)

	out := make([]fp2.Element, len(num))

	for i := range num {
		var r, conj, withP fp2.Element

		fp2.Mul(&r, &num[i], &dInv[i])
		fp2.CyclotomicInv(&conj, &r)
		fp2.Mul(&withP, &r, &conj)

		for s := 0; s < 239; s++ {
			fp2.CyclotomicSquare(&withP, &withP)
		}

		out[i] = withP
	}

	return out
}

// FinalExponentiation3 is the 3^239-torsion analogue of FinalExponentiation2, ending in 372 cyclotomic cubings.
func FinalExponentiation3(num, den []fp2.Element) []fp2.Element {
	dInv := make([]fp2.Element, len(den))
	fp2.BatchInvert(dInv, den)

	out := make([]fp2.Element, len(num))

	for i := range num {
		var r, conj, withP fp2.Element

		fp2.Mul(&r, &num[i], &dInv[i])
		fp2.CyclotomicInv(&conj, &r)
		fp2.Mul(&withP, &r, &conj)

		for s := 0; s < 372; s++ {
			fp2.CyclotomicCube(&withP, &withP)
		}

		out[i] = withP
	}

	return out
}
