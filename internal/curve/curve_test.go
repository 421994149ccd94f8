// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve_test

import (
	"testing"

	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/fp2"
)

func startingCoeffs() *curve.CurveCoeffs {
	// A = 0, C = 1: A24Plus/C24 = 2/4 = 1/2, A24Minus/C24 = -2/4 = -1/2.
	one := fp2.One()

	two := fp2.New()
	fp2.Add(two, one, one)

	var half fp2.Element

	fp2.Inv(&half, two)

	var negHalf fp2.Element

	fp2.Neg(&negHalf, &half)

	return &curve.CurveCoeffs{A24Plus: half, C24: *one, A24Minus: negHalf}
}

func TestLadderZeroScalarYieldsIdentity(t *testing.T) {
	c := startingCoeffs()

	x := fp2.New()
	fp2.Add(x, fp2.One(), fp2.One())

	var zero digit.Word

	p := curve.Ladder(x, &zero, 372, c)

	if p.IsIdentity() != 1 {
		t.Fatal("ladder with scalar 0 must yield identity")
	}
}

func TestXDBLeMatchesEdDBLe(t *testing.T) {
	c := startingCoeffs()

	x := fp2.New()
	fp2.Add(x, fp2.One(), fp2.One())

	p := curve.ProjectivePoint{X: *x, Z: *fp2.One()}

	var xd, ed curve.ProjectivePoint

	curve.XDBLe(&xd, &p, c, 3)
	curve.EdDBLe(&ed, &p, c, 3)

	xdAffine := affineX(&xd)
	edAffine := affineX(&ed)

	if xdAffine.Equal(&edAffine) != 1 {
		t.Fatal("xDBLe and edDBLe disagree on affine x")
	}
}

func affineX(p *curve.ProjectivePoint) fp2.Element {
	var zinv, x fp2.Element

	fp2.InvNonConstantTime(&zinv, &p.Z)
	fp2.Mul(&x, &p.X, &zinv)

	return x
}
