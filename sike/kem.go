// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"github.com/bytemare/sidh751/internal/digit"
	"github.com/bytemare/sidh751/internal/fp2"
	"github.com/bytemare/sidh751/params"
	"golang.org/x/crypto/sha3"
)

const (
	randomBytesLen = 48
	ssBytesLen     = 48
	pkBytesLen     = 3 * 2 * params.FieldElementBytes
	skBytesLen     = randomBytesLen + params.PrivateKeyBBytes + pkBytesLen
	ctBytesLen     = pkBytesLen + 48
)

// KeyPair is a SIKE secret/public key pair, 660 and 564 bytes encoded respectively (spec ยง6).
type KeyPair struct {
	SecretRandom [randomBytesLen]byte
	SecretB      PrivateKey
	Public       PublicKey
}

// GenerateKeyPair runs SIKE keygen: sample a random 48-byte seed and Bob's private scalar, derive the
// corresponding public key via EphemeralKeygenB.
func GenerateKeyPair() (KeyPair, error) {
	seed, err := randomBytes(randomBytesLen)
	if err != nil {
		return KeyPair{}, err
	}

	skBytes, err := randomBytes(params.PrivateKeyBBytes)
	if err != nil {
		return KeyPair{}, err
	}

	var skWord digit.Word

	skWord.SetBytesLE(skBytes)

	priv, pub := EphemeralKeygenB(skWord)

	var kp KeyPair

	copy(kp.SecretRandom[:], seed)
	kp.SecretB = priv
	kp.Public = pub

	return kp, nil
}

// Ciphertext is a SIKE ciphertext: Alice's ephemeral public key plus a 48-byte KEM tag, 612 bytes encoded.
type Ciphertext struct {
	Public PublicKey
	Tag    [48]byte
}

// Encapsulate runs the Fujisaki-Okamoto transform against pk using the given 48-byte coin: derive Alice's
// ephemeral scalar from a SHAKE-256 hash of (coin, pk), compute the shared j-invariant, and derive both the
// ciphertext tag and the 48-byte shared secret from further SHAKE-256 absorptions.
func Encapsulate(pk PublicKey, coin [48]byte) (Ciphertext, [ssBytesLen]byte, error) {
	h := sha3.NewShake256()
	h.Write(coin[:])
	h.Write(encodePublicKey(pk))

	skABytes := make([]byte, params.PrivateKeyABytes)
	_, _ = h.Read(skABytes)

	var skA digit.Word

	skA.SetBytesLE(skABytes)
	clearAbovePrivateKeyABits(&skA)

	priv, pubA := EphemeralKeygenA(skA)

	shared, err := EphemeralSecretA(priv, pk)
	if err != nil {
		return Ciphertext{}, [ssBytesLen]byte{}, err
	}

	tagH := sha3.NewShake256()
	tagH.Write(coin[:])
	tagH.Write(shared.Bytes())

	var tag [48]byte

	_, _ = tagH.Read(tag[:])

	ss := deriveSharedSecret(&shared, tag)

	return Ciphertext{Public: pubA, Tag: tag}, ss, nil
}

// deriveSharedSecret hashes the DH output and the ciphertext tag into the 48-byte KEM shared secret; both
// Encapsulate and Decapsulate call this once each has independently recovered the same shared j-invariant.
func deriveSharedSecret(shared *fp2.Element, tag [48]byte) [ssBytesLen]byte {
	h := sha3.NewShake256()
	h.Write(shared.Bytes())
	h.Write(tag[:])

	var ss [ssBytesLen]byte

	_, _ = h.Read(ss[:])

	return ss
}

// Decapsulate recovers the 48-byte shared secret Encapsulate produced for ct, re-deriving Bob's view of the shared
// j-invariant via EphemeralSecretB and re-running the same SHAKE-256 absorptions.
func Decapsulate(kp KeyPair, ct Ciphertext) ([ssBytesLen]byte, error) {
	shared, err := EphemeralSecretB(kp.SecretB, ct.Public)
	if err != nil {
		return [ssBytesLen]byte{}, err
	}

	return deriveSharedSecret(&shared, ct.Tag), nil
}

// clearAbovePrivateKeyABits masks skA down into [0, 2^372), clearing the bits above EA in the 48-octet (384-bit)
// private-key-A encoding spec ยง6 requires.
func clearAbovePrivateKeyABits(skA *digit.Word) {
	limb := params.EA / 64
	bit := uint(params.EA % 64)

	skA[limb] &= (uint64(1) << bit) - 1

	for i := limb + 1; i < len(skA); i++ {
		skA[i] = 0
	}
}

func encodePublicKey(pk PublicKey) []byte {
	out := make([]byte, 0, pkBytesLen)
	out = append(out, pk.XP.Bytes()...)
	out = append(out, pk.XQ.Bytes()...)
	out = append(out, pk.XPQ.Bytes()...)

	return out
}
