// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import "errors"

// ErrInvalidParameter is returned by any role-switched routine given a Party value other than PartyA or PartyB.
// Spec ยง7/ยง9 describe this as the core's only runtime failure surface once the role selector is typed; with Party
// a sum type of exactly two variants, this error constant exists for API completeness but should be unreachable
// from callers that only ever construct PartyA or PartyB.
var ErrInvalidParameter = errors.New("sidh751: invalid party")

// Party selects which side of the SIDH exchange a routine operates as, replacing the source's integer role
// parameter (spec ยง9 "Role selector"). disallowEqual blocks accidental comparison of a Party against an
// uninitialized zero value of the wrong type, the same zero-field idiom the teacher's scalar/group types use to
// prevent invalid ==-comparisons.
type Party struct {
	_     disallowEqual
	isB   bool
	valid bool
}

type disallowEqual [0]func()

// PartyA is Alice, the 2^372-torsion side.
var PartyA = Party{valid: true, isB: false}

// PartyB is Bob, the 3^239-torsion side.
var PartyB = Party{valid: true, isB: true}

// IsB reports whether p is PartyB. Returns false for a zero-valued (invalid) Party.
func (p Party) IsB() bool {
	return p.valid && p.isB
}

// Valid reports whether p was constructed via PartyA or PartyB.
func (p Party) Valid() bool {
	return p.valid
}
