// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fp2

import "math/big"

// The helpers below build the two public exponents this package needs ((p+1)/4 for Hamburg square roots, and
// (p^2-1)/3 for the cube test) from the prime via math/big at init time, the same derivation discipline
// internal/field/field_invert.go and params.init use for (p-3)/4 and the Montgomery constants.

func addOne(x *big.Int) *big.Int {
	return new(big.Int).Add(x, big.NewInt(1))
}

func subOne(x *big.Int) *big.Int {
	return new(big.Int).Sub(x, big.NewInt(1))
}

func rshift(x *big.Int, n uint) *big.Int {
	return new(big.Int).Rsh(x, n)
}

func mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

func divSmall(x *big.Int, d int64) *big.Int {
	return new(big.Int).Div(x, big.NewInt(d))
}

func bitsMSBFirst(x *big.Int) []uint64 {
	n := x.BitLen()
	out := make([]uint64, n)

	for i := 0; i < n; i++ {
		out[i] = uint64(x.Bit(n - 1 - i))
	}

	return out
}
