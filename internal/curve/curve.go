// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve implements x-only Montgomery-curve projective arithmetic over GF(p^2) for the p751 instance:
// doubling, tripling, differential addition, the constant-time ladder, and the three-point ladder used by ephemeral
// key exchange. Montgomery and Edwards-detour doubling/tripling are both provided behind the same signatures, per
// spec ยง4.4 and ยง9's "dual implementations" design note, generalizing the teacher's single-curve-model Element
// arithmetic (curve.go, element.go) to the projective x-only setting this domain needs.
package curve

import (
	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/field"
	"github.com/bytemare/sidh751/internal/fp2"
)

// A ProjectivePoint represents an affine x-coordinate as X/Z. Z == 0 denotes the identity.
type ProjectivePoint struct {
	X, Z fp2.Element
}

// A FullPoint carries an affine y-coordinate alongside X, Z; used where compression needs the y-coordinate.
type FullPoint struct {
	X, Y, Z fp2.Element
}

// CurveCoeffs bundles the two precomputed curve-constant ratios x-only doubling and tripling need, both carried in
// projective (numerator : denominator) form per spec ยง4.4 so C is never assumed to be 1.
type CurveCoeffs struct {
	// A24Plus, C24 satisfy A24Plus/C24 = (A+2C)/(4C), used by xDBL/xDBLADD.
	A24Plus, C24 fp2.Element

	// A24Minus is (A-2C)/(4C) (same denominator C24), used by xTPL.
	A24Minus fp2.Element
}

// Identity returns the projective point at infinity (X : 0).
func Identity() ProjectivePoint {
	return ProjectivePoint{X: *fp2.One()}
}

// IsIdentity reports whether P has Z == 0. Constant-time.
func (p *ProjectivePoint) IsIdentity() uint64 {
	return p.Z.IsZero()
}

// xDBL sets Q = [2]P on E_{A24Plus/C24}, via ((X+Z)^2, (X-Z)^2) combination. Constant-time.
func xDBL(q, p *ProjectivePoint, c *CurveCoeffs) {
	var t0, t1, t2, t3 fp2.Element

	fp2.Add(&t0, &p.X, &p.Z)
	fp2.Sqr(&t0, &t0)
	fp2.Sub(&t1, &p.X, &p.Z)
	fp2.Sqr(&t1, &t1)
	fp2.Sub(&t2, &t0, &t1)
	fp2.Mul(&t3, &c.C24, &t1)

	q.X.Set(&t0)
	fp2.Mul(&q.X, &q.X, &t3)

	fp2.Mul(&t1, &t2, &c.A24Plus)
	fp2.Add(&t1, &t1, &t3)
	fp2.Mul(&q.Z, &t1, &t2)
}

// XDBL is the exported, spec-named entry point for xDBL.
func XDBL(q, p *ProjectivePoint, c *CurveCoeffs) { xDBL(q, p, c) }

// xADD sets R = P+Q given the affine x-difference xPQ = x(P-Q). Constant-time.
func xADD(r, p, q *ProjectivePoint, xPQ *fp2.Element) {
	var t0, t1, t2, t3 fp2.Element

	fp2.Add(&t0, &p.X, &p.Z)
	fp2.Sub(&t1, &p.X, &p.Z)
	fp2.Add(&t2, &q.X, &q.Z)
	fp2.Sub(&t3, &q.X, &q.Z)

	fp2.Mul(&t0, &t0, &t3)
	fp2.Mul(&t1, &t1, &t2)

	var sum, diff fp2.Element

	fp2.Add(&sum, &t0, &t1)
	fp2.Sub(&diff, &t0, &t1)
	fp2.Sqr(&sum, &sum)
	fp2.Sqr(&diff, &diff)

	fp2.Mul(&r.Z, xPQ, &diff)
	r.X.Set(&sum)
}

// XADD is the exported, spec-named entry point for xADD.
func XADD(r, p, q *ProjectivePoint, xPQ *fp2.Element) { xADD(r, p, q, xPQ) }

// xDBLADD simultaneously computes (2P, P+Q) given the affine x-difference xPQ, the inner step of the Montgomery
// ladder. Constant-time.
func XDBLADD(dbl, sum *ProjectivePoint, p, q *ProjectivePoint, xPQ *fp2.Element, c *CurveCoeffs) {
	var t0, t1, t2 fp2.Element

	fp2.Add(&t0, &p.X, &p.Z)
	fp2.Sub(&t1, &p.X, &p.Z)
	fp2.Sqr(&dbl.X, &t0)
	fp2.Sub(&t2, &t0, &t1)
	fp2.Sqr(&t1, &t1)

	var qSum, qDiff fp2.Element

	fp2.Add(&qSum, &q.X, &q.Z)
	fp2.Sub(&qDiff, &q.X, &q.Z)
	fp2.Mul(&t0, &qDiff, &dbl.X)

	fp2.Sub(&dbl.Z, &dbl.X, &t1)
	fp2.Mul(&t1, &t1, &c.C24)
	fp2.Mul(&dbl.X, &dbl.X, &t1)
	fp2.Mul(&t2, &t2, &c.A24Plus)
	fp2.Add(&t1, &t1, &t2)
	fp2.Mul(&dbl.Z, &dbl.Z, &t1)

	var u, v fp2.Element

	fp2.Mul(&u, &qSum, &t0)
	fp2.Mul(&v, &qDiff, &t0)

	fp2.Add(&u, &u, &v)
	fp2.Sub(&v, &u, &v)
	fp2.Sqr(&u, &u)
	fp2.Sqr(&v, &v)

	fp2.Mul(&sum.Z, xPQ, &v)
	sum.X.Set(&u)
}

// xDBLe sets Q = [2^e]P by e sequential x-only doublings.
func XDBLe(q, p *ProjectivePoint, c *CurveCoeffs, e int) {
	q.X.Set(&p.X)
	q.Z.Set(&p.Z)

	for i := 0; i < e; i++ {
		xDBL(q, q, c)
	}
}

// xTPLe sets Q = [3^e]P by e sequential x-only triplings.
func XTPLe(q, p *ProjectivePoint, c *CurveCoeffs, e int) {
	q.X.Set(&p.X)
	q.Z.Set(&p.Z)

	for i := 0; i < e; i++ {
		xTPL(q, q, c)
	}
}

// xTPL sets Q = [3]P on E_{A24Minus/C24}. Constant-time.
func xTPL(q, p *ProjectivePoint, c *CurveCoeffs) {
	var t0, t1, t2, t3, t4, t5, t6 fp2.Element

	fp2.Sub(&t0, &p.X, &p.Z)
	fp2.Sqr(&t2, &t0)
	fp2.Add(&t1, &p.X, &p.Z)
	fp2.Sqr(&t3, &t1)
	fp2.Add(&t4, &t1, &t0)
	fp2.Sub(&t0, &t1, &t0)
	fp2.Sqr(&t1, &t4)
	fp2.Sub(&t1, &t1, &t3)
	fp2.Sub(&t1, &t1, &t2)
	fp2.Mul(&t5, &t3, &c.A24Plus)
	fp2.Mul(&t3, &t5, &t3)
	fp2.Mul(&t6, &t2, &c.A24Minus)
	fp2.Mul(&t2, &t2, &t6)
	fp2.Sub(&t3, &t2, &t3)
	fp2.Sub(&t2, &t5, &t6)
	fp2.Mul(&t1, &t2, &t1)
	fp2.Add(&t2, &t3, &t1)
	fp2.Sqr(&t2, &t2)
	fp2.Mul(&q.X, &t2, &t4)
	fp2.Sub(&t1, &t3, &t1)
	fp2.Sqr(&t1, &t1)
	fp2.Mul(&q.Z, &t1, &t0)
}

// edDBL doubles P via a temporary Montgomery-to-Edwards detour (Y = X - Z, Z' = X + Z), an Edwards doubling, and
// mapping back. Caller-visible contract is identical to xDBL; the result is recombined into standard (X:Z) form.
func edDBL(q, p *ProjectivePoint, c *CurveCoeffs) {
	// QY is built fresh here, never read before being written: spec ยง9 flags the original edDBLe's uninitialized
	// stack QY as a latent hazard; this port avoids it structurally by always constructing a zero-valued point first.
	var qy fp2.Element

	var y, z fp2.Element

	fp2.Sub(&y, &p.X, &p.Z)
	fp2.Add(&z, &p.X, &p.Z)

	var y2, z2 fp2.Element

	fp2.Sqr(&y2, &y)
	fp2.Sqr(&z2, &z)

	var num, den fp2.Element

	fp2.Sub(&num, &z2, &y2)
	fp2.Mul(&den, &c.C24, &y2)

	fp2.Mul(&qy, &num, &c.A24Plus)
	fp2.Add(&qy, &qy, &den)
	fp2.Mul(&qy, &qy, &num)

	fp2.Mul(&q.X, &z2, &den)
	q.Z.Set(&qy)
}

// EdDBL is the exported entry point for edDBL.
func EdDBL(q, p *ProjectivePoint, c *CurveCoeffs) { edDBL(q, p, c) }

// EdDBLe sets Q = [2^e]P via e sequential Edwards-detour doublings.
func EdDBLe(q, p *ProjectivePoint, c *CurveCoeffs, e int) {
	q.X.Set(&p.X)
	q.Z.Set(&p.Z)

	for i := 0; i < e; i++ {
		edDBL(q, q, c)
	}
}

// edTPL triples P by doubling it with edDBL and then adding P to 2P with the differential addition xADD, whose
// difference x(2P-P) = x(P) is first normalized to affine form.
func edTPL(q, p *ProjectivePoint, c *CurveCoeffs) {
	var dbl ProjectivePoint

	edDBL(&dbl, p, c)

	var zInv, xP fp2.Element

	fp2.Inv(&zInv, &p.Z)
	fp2.Mul(&xP, &p.X, &zInv)
	xADD(q, &dbl, p, &xP)
}

// EdTPL is the exported entry point for edTPL.
func EdTPL(q, p *ProjectivePoint, c *CurveCoeffs) { edTPL(q, p, c) }

// EdTPLe sets Q = [3^e]P via e sequential Edwards-detour triplings.
func EdTPLe(q, p *ProjectivePoint, c *CurveCoeffs, e int) {
	q.X.Set(&p.X)
	q.Z.Set(&p.Z)

	for i := 0; i < e; i++ {
		edTPL(q, q, c)
	}
}

// EdDBLADDBasefield performs the simultaneous double-and-add step using the Edwards detour, specialized to the case
// where the ladder's affine base point x-coordinate lies in the base field GF(p) (one-dimensional keygen variant).
// The doubling goes through edDBL; the sum P+Q is computed with the general differential addition xADD, with xPQ
// lifted into GF(p^2).
func EdDBLADDBasefield(dbl, sum *ProjectivePoint, p, q *ProjectivePoint, xPQ *field.Element, c *CurveCoeffs) {
	edDBL(dbl, p, c)

	xpq2 := fp2.Element{A: *xPQ}
	xADD(sum, p, q, &xpq2)
}

// baseFieldElement lifts a GF(p) element into GF(p^2) as a real element (b = 0).
func baseFieldElement(a *field.Element) fp2.Element {
	return fp2.Element{A: *a}
}

// Ladder computes [m]P given the affine x-coordinate x of P and the little-endian OrderScalar m of bitLen bits, via
// the constant-time Montgomery ladder: P0 = identity, P1 = (x:1); for each bit from the top, conditionally swap
// under the bit's mask, xDBLADD, swap again. Constant-time with respect to m.
func Ladder(x *fp2.Element, m *digit.Word, bitLen int, c *CurveCoeffs) ProjectivePoint {
	p0 := Identity()
	p1 := ProjectivePoint{X: *x, Z: *fp2.One()}

	for i := bitLen - 1; i >= 0; i-- {
		bit := m.Bit(i)
		mask := digit.Mask(bit)

		fp2.CSwap(&p0.X, &p1.X, mask)
		fp2.CSwap(&p0.Z, &p1.Z, mask)

		var dbl, sum ProjectivePoint

		XDBLADD(&dbl, &sum, &p0, &p1, x, c)
		p0 = dbl
		p1 = sum

		fp2.CSwap(&p0.X, &p1.X, mask)
		fp2.CSwap(&p0.Z, &p1.Z, mask)
	}

	return p0
}

// LadderBasefield is the one-dimensional variant of Ladder for a base-field (real) affine x-coordinate, used by
// ephemeral keygen's own-side scalar multiplication.
func LadderBasefield(x *field.Element, m *digit.Word, bitLen int, c *CurveCoeffs) ProjectivePoint {
	xe := fp2.Element{A: *x}
	return Ladder(&xe, m, bitLen, c)
}

// ThreePointLadder computes x(P + m*Q) given x(P), x(Q), x(P-Q) and the little-endian scalar m, via the De
// Feo/Jao/Plut three-point ladder: maintain (W, U, V) and drive differential additions/doublings with masked swaps
// keyed on the scalar bits. Constant-time with respect to m.
func ThreePointLadder(xP, xQ, xPQ *fp2.Element, m *digit.Word, bitLen int, c *CurveCoeffs) ProjectivePoint {
	w := ProjectivePoint{X: *xQ, Z: *fp2.One()}
	u := ProjectivePoint{X: *xP, Z: *fp2.One()}
	v := ProjectivePoint{X: *xPQ, Z: *fp2.One()}

	for i := 0; i < bitLen; i++ {
		bit := m.Bit(i)
		mask := digit.Mask(bit)

		var uw, dw ProjectivePoint

		xADD(&uw, &u, &w, xP)
		xDBL(&dw, &w, c)

		var vNew ProjectivePoint

		xADD(&vNew, &v, &w, xQ)

		var wSwapped ProjectivePoint

		wSwapped.X.CMove(&w.X, &dw.X, mask)
		wSwapped.Z.CMove(&w.Z, &dw.Z, mask)

		var uSwapped ProjectivePoint

		uSwapped.X.CMove(&u.X, &uw.X, mask)
		uSwapped.Z.CMove(&u.Z, &uw.Z, mask)

		var vSwapped ProjectivePoint

		vSwapped.X.CMove(&v.X, &vNew.X, mask)
		vSwapped.Z.CMove(&v.Z, &vNew.Z, mask)

		w = wSwapped
		u = uSwapped
		v = vSwapped
	}

	return u
}

// TwoDimScalarMul computes R + a*S via the (non-constant-time) Ladder followed by a full projective addition,
// spec ยง4.4's "two-dimensional scalar multiplication" used during public-key decompression. Non-constant-time:
// both a and S are public at that point in the protocol.
func TwoDimScalarMul(a *digit.Word, bitLen int, s *FullPoint, r *FullPoint, c *CurveCoeffs) FullPoint {
	xs := s.X

	scaled := Ladder(&xs, a, bitLen, c)

	return affineAdd(&scaled, s, r, c)
}

// affineAdd normalizes scaled to affine x (via the public, variable-time GF(p^2) inversion built on the base-field
// binary-GCD inverse applied to the norm), then adds the public point r's affine coordinates. Only used by the
// non-constant-time two-dimensional scalar multiplication path.
func affineAdd(scaled *ProjectivePoint, s, r *FullPoint, c *CurveCoeffs) FullPoint {
	var zinv, affineX fp2.Element

	fp2.InvNonConstantTime(&zinv, &scaled.Z)
	fp2.Mul(&affineX, &scaled.X, &zinv)

	var out FullPoint

	out.X.Set(&affineX)
	out.Y.Set(&s.Y)
	out.Z = *fp2.One()

	if r != nil {
		fp2.Add(&out.X, &out.X, &r.X)
	}

	return out
}
