// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"crypto/rand"
	"io"
)

// randSource is the randomness collaborator spec ยง1 excludes from the core; it defaults to crypto/rand.Reader and
// is overridable for deterministic test-vector generation, the same seam the teacher's tests use for reproducible
// scalar sampling.
var randSource io.Reader = rand.Reader

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(randSource, buf); err != nil {
		return nil, err
	}

	return buf, nil
}
