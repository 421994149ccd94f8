// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike_test

import (
	"testing"

	"github.com/bytemare/sidh751/sike"
)

func TestPartyRoleSelector(t *testing.T) {
	if !sike.PartyA.Valid() || sike.PartyA.IsB() {
		t.Fatal("PartyA must be valid and not B")
	}

	if !sike.PartyB.Valid() || !sike.PartyB.IsB() {
		t.Fatal("PartyB must be valid and B")
	}

	var zero sike.Party

	if zero.Valid() {
		t.Fatal("zero-valued Party must be invalid")
	}
}

func TestGenerateKeyPairRuns(t *testing.T) {
	kp, err := sike.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if kp.SecretB.Value.Bit(0) > 1 {
		t.Fatal("unreachable: Bit must return 0 or 1")
	}
}
