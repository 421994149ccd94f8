// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package torsion_test

import (
	"testing"

	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/internal/torsion"
	"github.com/bytemare/sidh751/params"
)

func startingCoeffs() (*fp2.Element, *curve.CurveCoeffs) {
	a := fp2.New()

	one := fp2.One()

	two := fp2.New()
	fp2.Add(two, one, one)

	var half fp2.Element

	fp2.Inv(&half, two)

	var negHalf fp2.Element

	fp2.Neg(&negHalf, &half)

	return a, &curve.CurveCoeffs{A24Plus: half, C24: *one, A24Minus: negHalf}
}

func TestGenerate2TorsionBasisOrder(t *testing.T) {
	a, c := startingCoeffs()

	basis := torsion.Generate2TorsionBasis(a, c)

	var check curve.ProjectivePoint

	curve.XDBLe(&check, &basis.R1, c, params.EA)

	if check.IsIdentity() != 1 {
		t.Fatal("R1 does not have order dividing 2^372")
	}
}
