// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package torsion generates deterministic torsion bases over E[2^372] and E[3^239] given a curve constant A, per
// spec ยง4.6. Both generators are public, deterministic functions of A and the process-wide curve parameters; neither
// ever touches a secret, so the package is free to use the non-constant-time helpers internal/field and internal/fp2
// expose for exactly this purpose.
package torsion

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/field"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/params"
)

// Basis is a pair of independent projective points generating a full torsion subgroup.
type Basis struct {
	R1, R2 curve.ProjectivePoint
}

// Generate2TorsionBasis searches a small deterministic sequence of candidate x-coordinates of the form alpha*(i+4)
// for increasing alpha, accepting a candidate only when x lies on the curve over GF(p^2) (quadResidueTest below) and
// its point is not already in [2]E. The point is driven to order 2^372 by 239 triplings; 371 further doublings of a
// copy confirm that order (a point in [2]E reaches the identity there and is rejected), exactly mirroring
// spec ยง4.6's generate_2_torsion_basis. Independence between the two returned points is confirmed via the
// cross-product test X_P*Z_Q - X_Q*Z_P != 0, using the non-constant-time equality spec ยง9's open question flags as
// acceptable here since the whole basis is public by construction.
func Generate2TorsionBasis(a *fp2.Element, c *curve.CurveCoeffs) Basis {
	var candidates [2]curve.ProjectivePoint
	found := 0
	alpha := uint64(1)

	for found < 2 {
		x := candidateX(alpha, a)

		if !quadResidueTest(&x, a) {
			alpha++
			continue
		}

		p := curve.ProjectivePoint{X: x, Z: *fp2.One()}

		curve.XTPLe(&p, &p, c, params.EB)

		var order2 curve.ProjectivePoint

		curve.XDBLe(&order2, &p, c, params.EA-1)

		if order2.IsIdentity() == 1 {
			alpha++
			continue
		}

		if found == 1 && !independent(&candidates[0], &p) {
			alpha++
			continue
		}

		candidates[found] = p
		found++
		alpha++
	}

	return Basis{R1: candidates[0], R2: candidates[1]}
}

// candidateX builds the deterministic candidate x = alpha*(i+4), where i is the GF(p^2) element with i^2 = -1
// (represented here as 0 + 1*i) and alpha ranges over small public field constants derived from the loop counter.
func candidateX(alpha uint64, a *fp2.Element) fp2.Element {
	base := fp2.Element{A: *field.FromUint64(4), B: *field.One()}

	scalar := fp2.Element{A: *field.FromUint64(alpha)}

	var x fp2.Element

	fp2.Mul(&x, &base, &scalar)

	return x
}

// quadResidueTest checks whether x*(x^2+A*x+1), the curve equation's right-hand side for C=1, is a square in GF(p^2),
// that is whether x is the x-coordinate of a point defined over GF(p^2). It does not test membership in [2]E;
// Generate2TorsionBasis rejects those candidates by its order check. It uses the constant-time Sqrt helper (a non-constant-time sqrt is not required here: this runs only on public
// candidates already, so Sqrt's constant-time cost is simply not a concern either way).
func quadResidueTest(x, a *fp2.Element) bool {
	var x2, ax, rhs fp2.Element

	fp2.Sqr(&x2, x)
	fp2.Mul(&ax, a, x)
	fp2.Add(&rhs, &x2, &ax)
	fp2.Add(&rhs, &rhs, fp2.One())
	fp2.Mul(&rhs, &rhs, x)

	var y fp2.Element

	return fp2.Sqrt(&y, &rhs)
}

// independent reports whether p and q generate independent cyclic subgroups via the cross-product test
// X_P*Z_Q - X_Q*Z_P != 0.
func independent(p, q *curve.ProjectivePoint) bool {
	var xpzq, xqzp, diff fp2.Element

	fp2.Mul(&xpzq, &p.X, &q.Z)
	fp2.Mul(&xqzp, &q.X, &p.Z)
	fp2.Sub(&diff, &xpzq, &xqzp)

	return diff.IsZero() == 0
}

// Generate3TorsionBasis constructs a basis for E[3^239] via Elligator2-style sampling: for an incrementing counter
// r, derive a candidate x-coordinate (getXOnCurve), accept it only if its y-evaluation on the curve's cubic form is
// a non-cube in GF(p^2) (guaranteeing full 3^239 order once "3-power-reduced"), then drive the candidate to exact
// order 3^239 by 372 doublings. Independence is checked the same cross-product way as the 2-torsion basis.
func Generate3TorsionBasis(a *fp2.Element, c *curve.CurveCoeffs) Basis {
	var candidates [2]curve.ProjectivePoint
	found := 0
	r := uint64(1)

	for found < 2 {
		x := getXOnCurve(r, a)

		var x2, ax, rhs fp2.Element

		fp2.Sqr(&x2, &x)
		fp2.Mul(&ax, a, &x)
		fp2.Add(&rhs, &x2, &ax)
		fp2.Add(&rhs, &rhs, fp2.One())
		fp2.Mul(&rhs, &rhs, &x)

		if fp2.IsCube(&rhs) {
			r++
			continue
		}

		p := curve.ProjectivePoint{X: x, Z: *fp2.One()}

		curve.XDBLe(&p, &p, c, params.EA)

		if p.IsIdentity() == 1 {
			r++
			continue
		}

		if found == 1 && !independent(&candidates[0], &p) {
			r++
			continue
		}

		candidates[found] = p
		found++
		r++
	}

	return Basis{R1: candidates[0], R2: candidates[1]}
}

// getXOnCurve derives the Elligator2-style candidate x-coordinate for counter r on the curve with constant A, using
// a deterministic table-free construction: x = -A/(1 + nonSquare*r^2), where nonSquare is the fixed GF(p^2)
// constant 4+i (see nonSquareConstant; a fixed constant rather than one transcribed from the C source's sqrt17 table:
// see DESIGN.md for this Open Question resolution).
func getXOnCurve(r uint64, a *fp2.Element) fp2.Element {
	ns := nonSquareConstant()

	rr := fp2.Element{A: *field.FromUint64(r)}

	var r2, denom fp2.Element

	fp2.Sqr(&r2, &rr)
	fp2.Mul(&denom, &ns, &r2)
	fp2.Add(&denom, &denom, fp2.One())

	var negA, x fp2.Element

	fp2.Neg(&negA, a)

	var denomInv fp2.Element

	fp2.InvNonConstantTime(&denomInv, &denom)
	fp2.Mul(&x, &negA, &denomInv)

	return x
}

// nonSquareConstant returns the fixed GF(p^2) element 4+i used by the Elligator sampler. An element of GF(p^2) is a
// square exactly when its norm is a square in GF(p); the norm of 4+i is 17, which is not a square modulo p751
// (p mod 17 = 10, a non-residue mod 17), so 4+i is a non-square.
func nonSquareConstant() fp2.Element {
	return fp2.Element{A: *field.FromUint64(4), B: *field.One()}
}
