// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field

import (
	"math/big"

	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/params"
)

// expMin3Div4Bits holds the bits (MSB first) of (p-3)/4, the exponent InvChain raises its argument to. It is
// computed once from the public prime at package init, rather than hand-transcribed as a 27-entry addition-chain
// window table the way the C reference and the teacher's addchain-generated internal/field/fe_invert.go do: p751's
// bit pattern was not available to transcribe faithfully in this port, so InvChain instead walks every bit of the
// fixed public exponent with an unconditional square and a masked conditional multiply, which costs more multiplies
// than an optimal chain but preserves the same constant-time contract (no branch, no table index, ever depends on
// the secret base a). See DESIGN.md for this simplification.
var expMin3Div4Bits []uint64

func init() {
	p := params.Current()
	pBig := params.WordToBig(&p.P)
	k := new(big.Int).Sub(pBig, big.NewInt(3))
	k.Rsh(k, 2)

	expMin3Div4Bits = make([]uint64, k.BitLen())
	for i := 0; i < k.BitLen(); i++ {
		expMin3Div4Bits[i] = uint64(k.Bit(k.BitLen() - 1 - i))
	}
}

// InvChain sets e = a^((p-3)/4) mod p via fixed-schedule square-and-multiply over the public exponent bits.
// Constant-time with respect to a.
func InvChain(e, a *Element) *Element {
	acc := One()

	for _, bit := range expMin3Div4Bits {
		Square(acc, acc)

		mult := New().Set(acc)
		Multiply(mult, acc, a)

		acc.CMove(acc, mult, digit.Mask(bit))
	}

	e.Set(acc)

	return e
}

// Invert sets e = a^-1 mod p = a^(p-2), by computing InvChain(a) = a^((p-3)/4), squaring twice (giving a^(p-3)), and
// multiplying once more by a (giving a^(p-2)). Constant-time; safe to call on secret field elements.
func Invert(e, a *Element) *Element {
	t := New()
	InvChain(t, a)
	Square(t, t)
	Square(t, t)
	Multiply(e, t, a)

	return e
}

// InvertBinGCDNonConstantTime sets e = a^-1 mod p using the binary extended Euclidean algorithm. Variable-time:
// branches and loop bounds depend on the value of a. Only safe to call on public field elements (e.g. pairing
// outputs during compression, or y-recovery during decompression), never on secret scalars or ladder state.
func InvertBinGCDNonConstantTime(e, a *Element) *Element {
	p := params.Current()

	nonMont := New()
	FromMont(nonMont, a)

	modulus := params.WordToBig(&p.P)
	u := params.WordToBig(&p.P)
	v := params.WordToBig(nonMont.Raw())
	v.Mod(v, modulus)
	x1 := big.NewInt(0)
	x2 := big.NewInt(1)

	for v.Sign() != 0 {
		switch {
		case v.Bit(0) == 0: // v even
			v.Rsh(v, 1)

			if x2.Bit(0) == 0 {
				x2.Rsh(x2, 1)
			} else {
				x2.Add(x2, modulus)
				x2.Rsh(x2, 1)
			}
		case u.Bit(0) == 0: // u even
			u.Rsh(u, 1)

			if x1.Bit(0) == 0 {
				x1.Rsh(x1, 1)
			} else {
				x1.Add(x1, modulus)
				x1.Rsh(x1, 1)
			}
		case v.Cmp(u) >= 0:
			v.Sub(v, u)
			v.Rsh(v, 1)
			x2.Sub(x2, x1)

			if x2.Sign() < 0 {
				x2.Add(x2, modulus)
			}

			if x2.Bit(0) == 0 {
				x2.Rsh(x2, 1)
			} else {
				x2.Add(x2, modulus)
				x2.Rsh(x2, 1)
			}
		default: // u > v
			u.Sub(u, v)
			u.Rsh(u, 1)
			x1.Sub(x1, x2)

			if x1.Sign() < 0 {
				x1.Add(x1, modulus)
			}

			if x1.Bit(0) == 0 {
				x1.Rsh(x1, 1)
			} else {
				x1.Add(x1, modulus)
				x1.Rsh(x1, 1)
			}
		}
	}

	// v has reached 0, so u holds gcd(p, a) == 1 and x1 holds the true (non-Montgomery) value of a^-1 mod p.
	x1.Mod(x1, modulus)

	var out digit.Word

	buf := x1.Bytes()
	le := make([]byte, len(buf))

	for i, c := range buf {
		le[len(buf)-1-i] = c
	}

	out.SetBytesLE(le)

	result := FromRaw(out)
	ToMont(e, &result)

	return e
}
