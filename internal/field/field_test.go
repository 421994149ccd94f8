// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/sidh751/internal/field"
)

func TestMontRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 12345, 1 << 40} {
		a := field.FromUint64(v)

		var mont, back field.Element

		field.ToMont(&mont, a)
		field.FromMont(&back, &mont)

		require.EqualValues(t, uint64(1), back.Equal(a), "from_mont(to_mont(a)) != a for v=%d", v)
	}
}

func TestAddHomomorphism(t *testing.T) {
	a := field.FromUint64(7)
	b := field.FromUint64(11)

	var montA, montB, sumMont, sum, sumOfMont field.Element

	field.ToMont(&montA, a)
	field.ToMont(&montB, b)

	field.Add(&sum, a, b)
	field.ToMont(&sumMont, &sum)

	field.Add(&sumOfMont, &montA, &montB)

	require.EqualValues(t, uint64(1), sumMont.Equal(&sumOfMont), "to_mont(a+b) != to_mont(a)+to_mont(b)")
}

func TestInvertAgreement(t *testing.T) {
	a := field.FromUint64(123456789)

	var mont, invChain, invBinGCD, prod field.Element

	field.ToMont(&mont, a)

	field.Invert(&invChain, &mont)
	field.InvertBinGCDNonConstantTime(&invBinGCD, &mont)

	require.EqualValues(t, uint64(1), invChain.Equal(&invBinGCD), "inv_chain and inv_bingcd disagree")

	field.Multiply(&prod, &mont, &invChain)

	one := field.One()

	require.EqualValues(t, uint64(1), prod.Equal(one), "a * inv(a) != 1")
}

func TestCorrectIsZero(t *testing.T) {
	e := field.New()
	require.EqualValues(t, uint64(1), e.IsZero())

	nonzero := field.FromUint64(5)
	require.EqualValues(t, uint64(0), nonzero.IsZero())
}
