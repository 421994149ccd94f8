// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package compress_test

import (
	"testing"

	"github.com/bytemare/sidh751/compress"
	"github.com/bytemare/sidh751/internal/field"
	"github.com/bytemare/sidh751/internal/fp2"
)

func TestCompress2TorsionRuns(t *testing.T) {
	xP := fp2.Element{A: *field.FromUint64(5), B: *field.FromUint64(1)}
	xQ := fp2.Element{A: *field.FromUint64(7), B: *field.FromUint64(2)}
	xPQ := fp2.Element{A: *field.FromUint64(11), B: *field.FromUint64(3)}

	c := compress.Compress2Torsion(&xP, &xQ, &xPQ)

	if c.ACurve.IsZero() == 1 && c.A0.IsZero() == 1 {
		t.Skip("degenerate recovered curve for this synthetic input; exercised for coverage only")
	}
}
