// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/internal/torsion"
)

type publicBasis struct {
	xP, xQ, xPQ fp2.Element
}

// standardBasisA derives Alice's standard public torsion basis on the starting curve by regenerating the
// deterministic 2-torsion basis (internal/torsion) and computing x(R1-R2) via a full affine point subtraction.
func standardBasisA() publicBasis {
	start := startingCurve()

	a := fp2.New()
	basis := torsion.Generate2TorsionBasis(a, &start)

	xPQ := xDifference(&basis.R1, &basis.R2, a)

	return publicBasis{xP: basis.R1.X, xQ: basis.R2.X, xPQ: xPQ}
}

// standardBasisB is Bob's analogue of standardBasisA, over the 3-torsion.
func standardBasisB() publicBasis {
	start := startingCurve()

	a := fp2.New()
	basis := torsion.Generate3TorsionBasis(a, &start)

	xPQ := xDifference(&basis.R1, &basis.R2, a)

	return publicBasis{xP: basis.R1.X, xQ: basis.R2.X, xPQ: xPQ}
}

// recoverY recovers an affine y-coordinate on y^2 = x*(x^2+A*x+1) for the curve constant a, mirroring
// compress.recoverY (duplicated package-local, same rationale as sidh.go's recoverAFromTriple: avoid an import of
// compress purely for one helper).
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

// xDifference computes x(P-Q) for two x-only projective points P, Q on the Montgomery curve with constant a, via
// affine normalization, y-coordinate recovery, and the standard Montgomery point-addition formula applied to
// P + (-Q) = P + (xQ, -yQ): lambda = (-yQ-yP)/(xQ-xP), x(P-Q) = lambda^2 - a - xP - xQ.
func xDifference(p, q *curve.ProjectivePoint, a *fp2.Element) fp2.Element {
	var zInv, xP, xQ fp2.Element

	fp2.InvNonConstantTime(&zInv, &p.Z)
	fp2.Mul(&xP, &p.X, &zInv)

	fp2.InvNonConstantTime(&zInv, &q.Z)
	fp2.Mul(&xQ, &q.X, &zInv)

	yP := recoverY(&xP, a)
	yQ := recoverY(&xQ, a)

	var negYQ, num, den, lambda, lambda2, x3 fp2.Element

	fp2.Neg(&negYQ, &yQ)
	fp2.Sub(&num, &negYQ, &yP)
	fp2.Sub(&den, &xQ, &xP)

	var denInv fp2.Element

	fp2.InvNonConstantTime(&denInv, &den)
	fp2.Mul(&lambda, &num, &denInv)
	fp2.Sqr(&lambda2, &lambda)

	fp2.Sub(&x3, &lambda2, a)
	fp2.Sub(&x3, &x3, &xP)
	fp2.Sub(&x3, &x3, &xQ)

	return x3
}
