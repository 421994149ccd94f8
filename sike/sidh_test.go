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

	"github.com/google/go-cmp/cmp"

	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/sike"
)

func TestEphemeralKeygenADeterministic(t *testing.T) {
	var sk digit.Word

	sk[0] = 12345

	priv1, pub1 := sike.EphemeralKeygenA(sk)
	priv2, pub2 := sike.EphemeralKeygenA(sk)

	if priv1.Party.IsB() != priv2.Party.IsB() {
		t.Fatal("party mismatch across identical keygen calls")
	}

	b1 := pub1.XP.Bytes()
	b2 := pub2.XP.Bytes()

	if diff := cmp.Diff(b1, b2); diff != "" {
		t.Fatalf("keygen is not deterministic for a fixed scalar (-got +want):\n%s", diff)
	}
}
