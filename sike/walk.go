// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package sike implements the high-level SIDH key exchange and SIKE KEM driver: the external collaborator spec ยง1
// names as out of scope for the core, built here on top of internal/curve, internal/isogeny and internal/torsion.
// This file holds the naive (non-strategy-tree) isogeny-walk driver: spec ยง4.5 explicitly leaves
// the optimal strategy-tree traversal to the external collaborator, so this walks one 4- or 3-isogeny step at a
// time in the straightforward left-to-right order, trading the production implementation's O(log n) scratch space
// for simplicity.
package sike

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/internal/isogeny"
	"github.com/bytemare/sidh751/params"
)

// walkState threads a curve and an isogeny kernel point through repeated degree-4 or degree-3 steps, pushing a set
// of auxiliary points along for the ride.
type walkState struct {
	coeffs curve.CurveCoeffs
	kernel curve.ProjectivePoint
	aux    []curve.ProjectivePoint
}

// isogenyWalk4 walks a 2^372-degree isogeny one 4-isogeny step at a time, starting from kernel (a point of order
// 2^372 generating the kernel of the whole walk), pushing aux through every step and returning the final codomain
// curve coefficients plus the images of aux.
func isogenyWalk4(start curve.CurveCoeffs, kernel curve.ProjectivePoint, aux []curve.ProjectivePoint) (curve.CurveCoeffs, []curve.ProjectivePoint) {
	st := walkState{coeffs: start, kernel: kernel, aux: append([]curve.ProjectivePoint(nil), aux...)}

	steps := params.EA / 2

	for i := 0; i < steps; i++ {
		remaining := steps - i

		var kernelOrder4 curve.ProjectivePoint

		curve.XDBLe(&kernelOrder4, &st.kernel, &st.coeffs, 2*(remaining-1))

		newCoeffs, fourCoeffs := isogeny.Get4Isog(&kernelOrder4)

		st.kernel = isogeny.EvalFourIsog(&st.kernel, &fourCoeffs)

		for j := range st.aux {
			st.aux[j] = isogeny.EvalFourIsog(&st.aux[j], &fourCoeffs)
		}

		st.coeffs = newCoeffs
	}

	return st.coeffs, st.aux
}

// isogenyWalk3 is the 3^239-degree analogue of isogenyWalk4, one 3-isogeny step at a time.
func isogenyWalk3(start curve.CurveCoeffs, kernel curve.ProjectivePoint, aux []curve.ProjectivePoint) (curve.CurveCoeffs, []curve.ProjectivePoint) {
	st := walkState{coeffs: start, kernel: kernel, aux: append([]curve.ProjectivePoint(nil), aux...)}

	for i := 0; i < params.EB; i++ {
		remaining := params.EB - i

		var kernelOrder3 curve.ProjectivePoint

		curve.XTPLe(&kernelOrder3, &st.kernel, &st.coeffs, remaining-1)

		newCoeffs := isogeny.Get3Isog(&kernelOrder3)
		threeCoeffs := isogeny.PrepareThreeIsog(&kernelOrder3)

		st.kernel = isogeny.EvalThreeIsog(&st.kernel, &threeCoeffs)

		for j := range st.aux {
			st.aux[j] = isogeny.EvalThreeIsog(&st.aux[j], &threeCoeffs)
		}

		st.coeffs = newCoeffs
	}

	return st.coeffs, st.aux
}

// startingCurve returns the standard starting supersingular curve A = 0, C = 1 in projective coefficient form.
func startingCurve() curve.CurveCoeffs {
	a := fp2.New()
	return curveCoeffsFromA(a)
}

func curveCoeffsFromA(a *fp2.Element) curve.CurveCoeffs {
	var two, four fp2.Element

	fp2.Add(&two, fp2.One(), fp2.One())
	fp2.Add(&four, &two, &two)

	var aPlus2, aMinus2 fp2.Element

	fp2.Add(&aPlus2, a, &two)
	fp2.Sub(&aMinus2, a, &two)

	return curve.CurveCoeffs{A24Plus: aPlus2, C24: four, A24Minus: aMinus2}
}
