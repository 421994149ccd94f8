// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fp2_test

import (
	"testing"

	"github.com/bytemare/sidh751/internal/field"
	"github.com/bytemare/sidh751/internal/fp2"
)

func elem(a, b uint64) fp2.Element {
	return fp2.Element{A: *field.FromUint64(a), B: *field.FromUint64(b)}
}

func TestAddSubInverse(t *testing.T) {
	u := elem(3, 5)
	v := elem(7, 11)

	var sum, back fp2.Element

	fp2.Add(&sum, &u, &v)
	fp2.Sub(&back, &sum, &v)

	if back.Equal(&u) != 1 {
		t.Fatal("add/sub round-trip failed")
	}
}

func TestMulInverse(t *testing.T) {
	u := elem(12345, 6789)

	var inv, prod fp2.Element

	fp2.Inv(&inv, &u)
	fp2.Mul(&prod, &u, &inv)

	if prod.Equal(fp2.One()) != 1 {
		t.Fatal("u * u^-1 != 1")
	}

	var invNC fp2.Element

	fp2.InvNonConstantTime(&invNC, &u)

	if !inv.EqualNonConstantTime(&invNC) {
		t.Fatal("constant-time and non-constant-time inversions disagree")
	}
}

func TestSqr(t *testing.T) {
	u := elem(9, 2)

	var sq, byMul fp2.Element

	fp2.Sqr(&sq, &u)
	fp2.Mul(&byMul, &u, &u)

	if sq.Equal(&byMul) != 1 {
		t.Fatal("Sqr(u) != u*u")
	}
}

func TestBatchInvert(t *testing.T) {
	n := 4
	vec := make([]fp2.Element, n)
	out := make([]fp2.Element, n)

	for i := 0; i < n; i++ {
		vec[i] = elem(uint64(i+1), uint64(2*i+1))
	}

	fp2.BatchInvert(out, vec)

	for i := 0; i < n; i++ {
		var single fp2.Element

		fp2.Inv(&single, &vec[i])

		if !single.EqualNonConstantTime(&out[i]) {
			t.Fatalf("batch invert mismatch at index %d", i)
		}
	}
}

func TestCyclotomicCube(t *testing.T) {
	u := elem(1, 2)

	var norm field.Element

	fp2.Norm(&norm, &u)

	var ninv, un field.Element

	field.Invert(&ninv, &norm)

	// un := u / sqrt(norm) isn't cheap to construct here; instead just check CyclotomicCube(u) == u*u*u
	// algebraically via the general Mul path, independent of the norm-1 assumption.
	_ = un

	var cube, sq fp2.Element

	fp2.CyclotomicCube(&cube, &u)
	fp2.Mul(&sq, &u, &u)
	fp2.Mul(&sq, &sq, &u)

	if cube.Equal(&sq) != 1 {
		t.Fatal("CyclotomicCube(u) != u^3")
	}
}
