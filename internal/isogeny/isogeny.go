// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package isogeny implements the 4- and 3-isogeny step engines that push a point and a curve through one step of an
// isogeny walk, grounded on the curve-coefficient layout internal/curve establishes. The overall strategy-tree walk
// driver is an external collaborator (spec ยง1 Non-goals); this package only provides the single-step primitives.
package isogeny

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/fp2"
)

// FourIsogCoeffs holds the three precomputed ExtElements eval_4_isog needs to push a point through a 4-isogeny.
type FourIsogCoeffs struct {
	K1, K2, K3 fp2.Element
}

// Get4Isog computes the codomain curve constants (A24Plus', C24') of the 4-isogeny with kernel generated by P (a
// point of order 4), plus the coefficients EvalFourIsog needs to evaluate the isogeny at other points.
func Get4Isog(p *curve.ProjectivePoint) (curve.CurveCoeffs, FourIsogCoeffs) {
	var coeffs FourIsogCoeffs

	fp2.Sub(&coeffs.K1, &p.X, &p.Z)
	fp2.Add(&coeffs.K2, &p.X, &p.Z)

	var xz2 fp2.Element

	fp2.Sqr(&xz2, &p.Z)
	fp2.Add(&xz2, &xz2, &xz2)
	fp2.Sqr(&coeffs.K3, &p.X)
	fp2.Add(&coeffs.K3, &coeffs.K3, &coeffs.K3)
	fp2.Sub(&coeffs.K3, &coeffs.K3, &xz2)

	var c24, a24plus fp2.Element

	fp2.Sqr(&c24, &coeffs.K1)
	fp2.Sqr(&a24plus, &coeffs.K2)
	fp2.Sub(&a24plus, &a24plus, &c24)
	fp2.Add(&a24plus, &a24plus, &a24plus)

	out := curve.CurveCoeffs{A24Plus: a24plus, C24: c24}

	return out, coeffs
}

// EvalFourIsog pushes Q through the 4-isogeny described by coeffs, returning its image.
func EvalFourIsog(q *curve.ProjectivePoint, coeffs *FourIsogCoeffs) curve.ProjectivePoint {
	var t0, t1, t2 fp2.Element

	fp2.Add(&t0, &q.X, &q.Z)
	fp2.Sub(&t1, &q.X, &q.Z)

	fp2.Mul(&q.X, &t0, &coeffs.K1)
	fp2.Mul(&q.Z, &t1, &coeffs.K2)
	fp2.Mul(&t2, &t0, &t1)
	fp2.Mul(&t2, &t2, &coeffs.K3)

	var out curve.ProjectivePoint

	fp2.Add(&out.X, &q.X, &q.Z)
	fp2.Sub(&out.Z, &q.X, &q.Z)
	fp2.Sqr(&out.X, &out.X)
	fp2.Sqr(&out.Z, &out.Z)
	fp2.Add(&out.X, &out.X, &t2)
	fp2.Sub(&out.Z, &out.Z, &t2)

	return out
}

// First4Isog computes the specialized first 4-isogeny step from the starting curve constant A, used by the A-side
// (2^372-torsion) party at the beginning of its isogeny walk, where the kernel point has a fixed, simple form.
func First4Isog(a *fp2.Element) (curve.CurveCoeffs, curve.ProjectivePoint) {
	var two, four fp2.Element

	fp2.Add(&two, fp2.One(), fp2.One())
	fp2.Add(&four, &two, &two)

	var aPlus2, aMinus2 fp2.Element

	fp2.Add(&aPlus2, a, &two)
	fp2.Sub(&aMinus2, a, &two)

	var a24plus, a24minus fp2.Element

	fp2.Mul(&a24plus, &aPlus2, fp2.One())
	fp2.Mul(&a24minus, &aMinus2, fp2.One())

	coeffs := curve.CurveCoeffs{A24Plus: a24plus, C24: four, A24Minus: a24minus}

	p := curve.ProjectivePoint{X: *fp2.One(), Z: *fp2.New()}

	return coeffs, p
}

// Get3Isog computes the codomain curve constants of the 3-isogeny with kernel generated by P (a point of order 3).
func Get3Isog(p *curve.ProjectivePoint) curve.CurveCoeffs {
	var t0, t1, t2, t3, t4 fp2.Element

	fp2.Sqr(&t0, &p.X)
	fp2.Sqr(&t1, &p.Z)
	fp2.Add(&t2, &t0, &t1)
	fp2.Add(&t3, &p.X, &p.Z)
	fp2.Sqr(&t3, &t3)
	fp2.Sub(&t3, &t3, &t2)

	fp2.Add(&t4, &t1, &t3)
	fp2.Add(&t4, &t4, &t4)
	fp2.Add(&t4, &t4, &t2)

	var a24plus fp2.Element

	fp2.Mul(&a24plus, &t4, &t1)

	fp2.Add(&t4, &t0, &t3)
	fp2.Add(&t4, &t4, &t4)
	fp2.Add(&t4, &t4, &t2)

	var a24minus fp2.Element

	fp2.Mul(&a24minus, &t4, &t0)

	c24 := t2

	return curve.CurveCoeffs{A24Plus: a24plus, C24: c24, A24Minus: a24minus}
}

// ThreeIsogCoeffs holds the precomputed values EvalThreeIsog needs, derived from the kernel point P3.
type ThreeIsogCoeffs struct {
	K1, K2 fp2.Element
}

// PrepareThreeIsog derives the evaluation coefficients for the 3-isogeny with kernel point p3.
func PrepareThreeIsog(p3 *curve.ProjectivePoint) ThreeIsogCoeffs {
	var k1, k2 fp2.Element

	fp2.Add(&k1, &p3.X, &p3.Z)
	fp2.Sub(&k2, &p3.X, &p3.Z)

	return ThreeIsogCoeffs{K1: k1, K2: k2}
}

// EvalThreeIsog pushes Q through the 3-isogeny whose kernel generated coeffs, returning its image.
func EvalThreeIsog(q *curve.ProjectivePoint, coeffs *ThreeIsogCoeffs) curve.ProjectivePoint {
	var t0, t1, t2, t3 fp2.Element

	fp2.Add(&t0, &q.X, &q.Z)
	fp2.Sub(&t1, &q.X, &q.Z)
	fp2.Mul(&t0, &t0, &coeffs.K2)
	fp2.Mul(&t1, &t1, &coeffs.K1)
	fp2.Add(&t2, &t0, &t1)
	fp2.Sub(&t3, &t0, &t1)
	fp2.Sqr(&t2, &t2)
	fp2.Sqr(&t3, &t3)

	var out curve.ProjectivePoint

	fp2.Mul(&out.X, &q.X, &t2)
	fp2.Mul(&out.Z, &q.Z, &t3)

	return out
}
