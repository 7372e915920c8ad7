// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

import (
	"golang.org/x/crypto/sha3"
)

// XOF128/XOF256 and the domain-separation tags below are built on
// golang.org/x/crypto/sha3: sha3.ShakeHash already exposes an
// absorb(Write)/squeeze(Read) contract, so the constructors here are
// thin rather than a bespoke sponge implementation.

// Domain-separation tags, absorbed as a single byte after the relevant
// seed whenever a seed is shared between distinct uses. tagCBDSecret and
// tagCBDError are defined but not absorbed anywhere: prf keys CBD sampling
// by seed‖nonce alone, and the distinct nonces are what separate s, e, e1
// and e2.
const (
	tagGKeyGen   byte = 0x00 // G-split in KeyGen_PKE
	tagGEncaps   byte = 0x01 // G-split in Encaps
	tagCBDSecret byte = 0x02 // CBD sampling of s (not absorbed; see above)
	tagCBDError  byte = 0x03 // CBD sampling of e, e1, e2 (not absorbed; see above)
	tagKDFMarker byte = 0x04 // KDF input marker
	tagMWhiten   byte = 0x05 // H-split whitening the Encaps message before use
)

// xof128 returns a fresh XOF128 context (SHAKE-128), used for matrix
// expansion: the matrix A is public, so only 128-bit security is needed
// there.
func xof128() sha3.ShakeHash {
	return sha3.NewShake128()
}

// xof256 returns a fresh XOF256 context (SHAKE-256), used for
// secret/error sampling, key derivation, and hashing, where 256-bit
// security is needed regardless of the parameter set's target level.
func xof256() sha3.ShakeHash {
	return sha3.NewShake256()
}

// prf squeezes outLen bytes of XOF256(seed || nonce), the CBD sampler's
// pseudorandom function.
func prf(seed []byte, nonce byte, outLen int) []byte {
	x := xof256()
	x.Write(seed)
	x.Write([]byte{nonce})
	out := make([]byte, outLen)
	x.Read(out)
	return out
}

// g splits XOF256(input) into two 32-byte halves (ρ,σ) or (K̄,r)
// depending on call site.
func g(input ...[]byte) (a, b [32]byte) {
	x := xof256()
	for _, part := range input {
		x.Write(part)
	}
	var buf [64]byte
	x.Read(buf[:])
	copy(a[:], buf[:32])
	copy(b[:], buf[32:])
	return a, b
}

// hHash is the hash H used throughout the FO transform: a fixed-output
// (32-byte) SHAKE-256 squeeze over the concatenated parts. It comes from
// the same sponge family as SHA3-256, but its output is not SHA3-256's.
func hHash(parts ...[]byte) [32]byte {
	x := xof256()
	for _, p := range parts {
		x.Write(p)
	}
	var out [32]byte
	x.Read(out[:])
	return out
}

// kdf derives the final 32-byte shared secret from K̄ and H(c), tagged
// to keep it distinct from other uses of XOF256 with the same inputs.
func kdf(kBar, hc []byte) [32]byte {
	x := xof256()
	x.Write(kBar)
	x.Write(hc)
	x.Write([]byte{tagKDFMarker})
	var out [SharedKeySize]byte
	x.Read(out[:])
	return out
}
