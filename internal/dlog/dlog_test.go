// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package dlog_test

import (
	"testing"

	"github.com/bytemare/sidh751/internal/dlog"
	"github.com/bytemare/sidh751/internal/field"
	"github.com/bytemare/sidh751/internal/fp2"
)

func TestSolve2SmallExponent(t *testing.T) {
	g := fp2.Element{A: *field.FromUint64(3), B: *field.FromUint64(1)}

	lut := dlog.BuildLUTs2(&g)

	var r fp2.Element

	r = *fp2.One()

	for i := 0; i < 7; i++ {
		fp2.Mul(&r, &r, &g)
	}

	alpha := dlog.Solve2(lut, &g, &r)

	if alpha.Bit(0) != 1 || alpha.Bit(1) != 1 || alpha.Bit(2) != 1 {
		t.Fatalf("expected alpha==7, low bits mismatch")
	}
}
