// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package digit_test

import (
	"math/big"
	"testing"

	"github.com/bytemare/sidh751/internal/digit"
)

func toBig(w *digit.Word) *big.Int {
	b := w.BytesLE(digit.N * 8)
	le := make([]byte, len(b))

	for i, c := range b {
		le[len(b)-1-i] = c
	}

	return new(big.Int).SetBytes(le)
}

func fromBig(i *big.Int) digit.Word {
	b := i.Bytes()
	le := make([]byte, len(b))

	for i, c := range b {
		le[len(b)-1-i] = c
	}

	var w digit.Word

	w.SetBytesLE(le)

	return w
}

func TestAddSub(t *testing.T) {
	a := fromBig(big.NewInt(123456789))
	b := fromBig(big.NewInt(987654321))

	var sum digit.Word

	carry := digit.Add(&sum, &a, &b)
	if carry != 0 {
		t.Fatalf("unexpected carry")
	}

	want := new(big.Int).Add(toBig(&a), toBig(&b))
	if toBig(&sum).Cmp(want) != 0 {
		t.Fatalf("add mismatch: got %s want %s", toBig(&sum), want)
	}

	var diff digit.Word

	borrow := digit.Sub(&diff, &sum, &a)
	if borrow != 0 {
		t.Fatalf("unexpected borrow")
	}

	if toBig(&diff).Cmp(toBig(&b)) != 0 {
		t.Fatalf("sub mismatch")
	}
}

func TestMultiply(t *testing.T) {
	a := fromBig(big.NewInt(123456789123456789))
	b := fromBig(big.NewInt(987654321987654321))

	var prod digit.WideWord

	digit.Multiply(&prod, &a, &b)

	want := new(big.Int).Mul(toBig(&a), toBig(&b))

	var lo, hi digit.Word

	copy(lo[:], prod[:digit.N])
	copy(hi[:], prod[digit.N:])

	got := new(big.Int).Lsh(toBig(&hi), digit.N*64)
	got.Add(got, toBig(&lo))

	if got.Cmp(want) != 0 {
		t.Fatalf("multiply mismatch: got %s want %s", got, want)
	}
}

func TestShift(t *testing.T) {
	a := fromBig(big.NewInt(5))

	var l digit.Word

	digit.ShiftLeftOne(&l, &a)

	if toBig(&l).Cmp(big.NewInt(10)) != 0 {
		t.Fatalf("shift left mismatch")
	}

	var r digit.Word

	digit.ShiftRightOne(&r, &l)

	if toBig(&r).Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("shift right mismatch")
	}
}

func TestCSwap(t *testing.T) {
	a := fromBig(big.NewInt(1))
	b := fromBig(big.NewInt(2))

	digit.CSwap(&a, &b, 0)

	if toBig(&a).Cmp(big.NewInt(1)) != 0 || toBig(&b).Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("cswap with mask 0 must not swap")
	}

	digit.CSwap(&a, &b, digit.Mask(1))

	if toBig(&a).Cmp(big.NewInt(2)) != 0 || toBig(&b).Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("cswap with all-ones mask must swap")
	}
}

func TestCMove(t *testing.T) {
	u := fromBig(big.NewInt(11))
	v := fromBig(big.NewInt(22))

	var w digit.Word

	digit.CMove(&w, &u, &v, 0)

	if toBig(&w).Cmp(big.NewInt(11)) != 0 {
		t.Fatalf("cmove mask 0 should select u")
	}

	digit.CMove(&w, &u, &v, digit.Mask(1))

	if toBig(&w).Cmp(big.NewInt(22)) != 0 {
		t.Fatalf("cmove mask all-ones should select v")
	}
}
