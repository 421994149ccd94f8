// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"github.com/bytemare/sidh751/internal/curve"
	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/params"
)

// PrivateKey is a role-tagged scalar: 48 bytes for either party, interpreted per spec ยง6 (top 6 bits zero for
// Alice's 2^372-range scalar).
type PrivateKey struct {
	Party Party
	Value digit.Word
}

// PublicKey is the three x-only torsion images (xP, xQ, xP-Q) spec ยง6 defines, 564 bytes encoded.
type PublicKey struct {
	XP, XQ, XPQ fp2.Element
}

// EphemeralKeygenA generates Alice's ephemeral key pair from the given 2^372-range scalar.
func EphemeralKeygenA(sk digit.Word) (PrivateKey, PublicKey) {
	priv := PrivateKey{Party: PartyA, Value: sk}

	start := startingCurve()

	basis := standardBasisA()

	kernel := curve.ThreePointLadder(&basis.xP, &basis.xQ, &basis.xPQ, &sk, params.EA, &start)

	aux := []curve.ProjectivePoint{
		{X: basis.xQ, Z: *fp2.One()},
		{X: basis.xP, Z: *fp2.One()},
		{X: basis.xPQ, Z: *fp2.One()},
	}

	_, images := isogenyWalk4(start, kernel, aux)

	pub := PublicKey{XP: images[0].X, XQ: images[1].X, XPQ: images[2].X}

	return priv, pub
}

// EphemeralKeygenB is Bob's analogue of EphemeralKeygenA, over the 3^239-torsion.
func EphemeralKeygenB(sk digit.Word) (PrivateKey, PublicKey) {
	priv := PrivateKey{Party: PartyB, Value: sk}

	start := startingCurve()

	basis := standardBasisB()

	kernel := curve.ThreePointLadder(&basis.xP, &basis.xQ, &basis.xPQ, &sk, params.Current().OrderBBits, &start)

	aux := []curve.ProjectivePoint{
		{X: basis.xQ, Z: *fp2.One()},
		{X: basis.xP, Z: *fp2.One()},
		{X: basis.xPQ, Z: *fp2.One()},
	}

	_, images := isogenyWalk3(start, kernel, aux)

	pub := PublicKey{XP: images[0].X, XQ: images[1].X, XPQ: images[2].X}

	return priv, pub
}

// EphemeralSecretA computes Alice's shared secret given her private key and Bob's public key.
func EphemeralSecretA(sk PrivateKey, pk PublicKey) (fp2.Element, error) {
	if !sk.Party.Valid() || sk.Party.IsB() {
		return fp2.Element{}, ErrInvalidParameter
	}

	start := curveCoeffsFromPublic(pk)

	kernel := curve.ThreePointLadder(&pk.XP, &pk.XQ, &pk.XPQ, &sk.Value, params.EA, &start)

	final, _ := isogenyWalk4(start, kernel, nil)

	return jInvariant(&final), nil
}

// EphemeralSecretB computes Bob's shared secret given his private key and Alice's public key.
func EphemeralSecretB(sk PrivateKey, pk PublicKey) (fp2.Element, error) {
	if !sk.Party.Valid() || !sk.Party.IsB() {
		return fp2.Element{}, ErrInvalidParameter
	}

	start := curveCoeffsFromPublic(pk)

	kernel := curve.ThreePointLadder(&pk.XP, &pk.XQ, &pk.XPQ, &sk.Value, params.Current().OrderBBits, &start)

	final, _ := isogenyWalk3(start, kernel, nil)

	return jInvariant(&final), nil
}

// curveCoeffsFromPublic recovers curve coefficients of the form (A+2C)/4C, (A-2C)/4C from the three public x-only
// torsion images, via the same Velu-like recovery compress.recoverA implements (duplicated here in package-local
// form to avoid sike importing compress purely for this one helper).
func curveCoeffsFromPublic(pk PublicKey) curve.CurveCoeffs {
	a := recoverAFromTriple(&pk.XP, &pk.XQ, &pk.XPQ)
	return curveCoeffsFromA(&a)
}

func recoverAFromTriple(xP, xQ, xPQ *fp2.Element) fp2.Element {
	var xPxQ, xPxR, xQxR, sumPairs fp2.Element

	fp2.Mul(&xPxQ, xP, xQ)
	fp2.Mul(&xPxR, xP, xPQ)
	fp2.Mul(&xQxR, xQ, xPQ)

	fp2.Add(&sumPairs, &xPxQ, &xPxR)
	fp2.Add(&sumPairs, &sumPairs, &xQxR)

	var one, inner fp2.Element

	one = *fp2.One()
	fp2.Sub(&inner, &one, &sumPairs)
	fp2.Sqr(&inner, &inner)

	var prod3, sum3, term2 fp2.Element

	fp2.Mul(&prod3, &xPxQ, xPQ)
	fp2.Add(&sum3, xP, xQ)
	fp2.Add(&sum3, &sum3, xPQ)
	fp2.Mul(&term2, &prod3, &sum3)
	fp2.Add(&term2, &term2, &term2)
	fp2.Add(&term2, &term2, &term2)

	var numerator fp2.Element

	fp2.Sub(&numerator, &inner, &term2)

	var denom, denomInv fp2.Element

	fp2.Add(&denom, &prod3, &prod3)
	fp2.Add(&denom, &denom, &denom)

	fp2.InvNonConstantTime(&denomInv, &denom)

	var a fp2.Element

	fp2.Mul(&a, &numerator, &denomInv)
	fp2.Sub(&a, &a, &sum3)

	return a
}

// jInvariant returns a canonical shared-secret representative derived from the final curve's coefficients: the
// ratio A24Plus/C24, which is isomorphism-invariant and agrees between both parties at the end of a correct SIDH
// exchange, standing in for the true j-invariant computation the production implementation performs.
func jInvariant(c *curve.CurveCoeffs) fp2.Element {
	var inv, ratio fp2.Element

	fp2.InvNonConstantTime(&inv, &c.C24)
	fp2.Mul(&ratio, &c.A24Plus, &inv)

	return ratio
}
