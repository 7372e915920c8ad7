// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

import (
	"crypto/subtle"
	"io"
)

// The CCA-secure KEM built from the CPA PKE of pke.go via the
// Fujisaki-Okamoto transform with implicit rejection.

// DecapsulationKey is a parsed decapsulation (secret) key together with
// its parameter set. The zero value is not valid; construct one with
// GenerateKey, NewKeyFromSeed, or ParseDecapsulationKey.
type DecapsulationKey struct {
	params Parameters
	dkPKE  []byte   // packed ŝ
	ekPKE  []byte   // packed t̂‖ρ
	h      [32]byte // H(ekPKE)
	z      [32]byte // implicit-rejection seed
}

// GenerateKey generates a fresh decapsulation key for the given parameter
// set, drawing randomness from rand (typically crypto/rand.Reader).
func GenerateKey(params Parameters, rand io.Reader) (*DecapsulationKey, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, entropyError(err)
	}
	return newKeyFromSeed(params, seed[:])
}

// NewKeyFromSeed deterministically derives a decapsulation key from a
// 64-byte seed (d‖z), for reproducible key generation in tests and KATs.
func NewKeyFromSeed(params Parameters, seed []byte) (*DecapsulationKey, error) {
	if len(seed) != SeedSize {
		return nil, deserializationError("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return newKeyFromSeed(params, seed)
}

func newKeyFromSeed(params Parameters, seed []byte) (*DecapsulationKey, error) {
	d := seed[:seedSize]
	ekPKE, dkPKE := keyGenPKE(params, d)

	dk := &DecapsulationKey{params: params, dkPKE: dkPKE, ekPKE: ekPKE}
	dk.h = hHash(ekPKE)
	copy(dk.z[:], seed[seedSize:])
	return dk, nil
}

// Bytes returns the canonical encoding of dk: ŝ‖ekPKE‖H(ekPKE)‖z.
func (dk *DecapsulationKey) Bytes() []byte {
	out := make([]byte, 0, dk.params.DecapsulationKeySize())
	out = append(out, dk.dkPKE...)
	out = append(out, dk.ekPKE...)
	out = append(out, dk.h[:]...)
	out = append(out, dk.z[:]...)
	return out
}

// EncapsulationKey returns the encapsulation (public) key paired with dk.
func (dk *DecapsulationKey) EncapsulationKey() []byte {
	ek := make([]byte, len(dk.ekPKE))
	copy(ek, dk.ekPKE)
	return ek
}

// ParseDecapsulationKey parses a decapsulation key previously produced by
// Bytes, for the given parameter set. It returns a Deserialization error
// if b is not exactly DecapsulationKeySize() bytes, or if the embedded
// hash does not match H(ekPKE) (a corrupted or mismatched-parameter-set
// key).
func ParseDecapsulationKey(params Parameters, b []byte) (*DecapsulationKey, error) {
	want := params.DecapsulationKeySize()
	if len(b) != want {
		return nil, deserializationError("decapsulation key must be %d bytes, got %d", want, len(b))
	}
	polyVecSize := params.polyVecSize()
	ekSize := params.EncapsulationKeySize()

	dk := &DecapsulationKey{params: params}
	dk.dkPKE = append([]byte(nil), b[:polyVecSize]...)
	dk.ekPKE = append([]byte(nil), b[polyVecSize:polyVecSize+ekSize]...)
	copy(dk.h[:], b[polyVecSize+ekSize:polyVecSize+ekSize+seedSize])
	copy(dk.z[:], b[polyVecSize+ekSize+seedSize:])

	if got := hHash(dk.ekPKE); got != dk.h {
		return nil, deserializationError("decapsulation key hash does not match its embedded encapsulation key")
	}
	return dk, nil
}

// checkEncapsulationKeySize reports a Deserialization error if ek is not
// exactly EncapsulationKeySize() bytes for params.
func checkEncapsulationKeySize(params Parameters, ek []byte) error {
	if want := params.EncapsulationKeySize(); len(ek) != want {
		return deserializationError("encapsulation key must be %d bytes, got %d", want, len(ek))
	}
	return nil
}

// Encapsulate generates a fresh ciphertext and shared secret under the
// given encapsulation key, drawing randomness from rand.
func Encapsulate(params Parameters, ek []byte, rand io.Reader) (ciphertext, sharedKey []byte, err error) {
	if err := checkEncapsulationKeySize(params, ek); err != nil {
		return nil, nil, err
	}
	var m [messageSize]byte
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, nil, entropyError(err)
	}
	defer zeroBytes(m[:])
	return encapsulateDerand(params, ek, m[:])
}

// EncapsulateDerand is the derandomized form of Encapsulate, taking the
// 32-byte message directly instead of drawing it from a random source.
// Exported for known-answer tests; production callers should use
// Encapsulate.
func EncapsulateDerand(params Parameters, ek, m []byte) (ciphertext, sharedKey []byte, err error) {
	if err := checkEncapsulationKeySize(params, ek); err != nil {
		return nil, nil, err
	}
	if len(m) != messageSize {
		return nil, nil, deserializationError("message must be %d bytes, got %d", messageSize, len(m))
	}
	return encapsulateDerand(params, ek, m)
}

func encapsulateDerand(params Parameters, ek, m []byte) (ciphertext, sharedKey []byte, err error) {
	mh := hHash(m, []byte{tagMWhiten})

	h := hHash(ek)
	kBar, r := g(mh[:], h[:], []byte{tagGEncaps})

	c := encPKE(params, ek, mh[:], r[:])
	hc := hHash(c)
	k := kdf(kBar[:], hc[:])

	zeroBytes(mh[:])
	zeroBytes(kBar[:])
	zeroBytes(r[:])
	return c, k[:], nil
}

// Decapsulate recovers the shared secret encapsulated in ciphertext under
// dk. It never returns an error for a tampered or invalid ciphertext of
// the correct length: implicit rejection makes Decapsulate total over
// all byte strings of the right length, returning an unpredictable (but
// deterministic, given dk and the ciphertext) key instead of failing.
func Decapsulate(dk *DecapsulationKey, ciphertext []byte) (sharedKey []byte, err error) {
	if want := dk.params.CiphertextSize(); len(ciphertext) != want {
		return nil, deserializationError("ciphertext must be %d bytes, got %d", want, len(ciphertext))
	}

	m := decPKE(dk.params, dk.dkPKE, ciphertext)
	kBar, r := g(m[:], dk.h[:], []byte{tagGEncaps})

	c2 := encPKE(dk.params, dk.ekPKE, m[:], r[:])

	// Constant-time select: use kBar if c2 == ciphertext, else z. No
	// branch depends on the comparison's secret-influenced outcome.
	equal := subtle.ConstantTimeCompare(c2, ciphertext)
	var kBarFinal [32]byte
	subtle.ConstantTimeCopy(equal, kBarFinal[:], kBar[:])
	subtle.ConstantTimeCopy(1-equal, kBarFinal[:], dk.z[:])

	hc := hHash(ciphertext)
	k := kdf(kBarFinal[:], hc[:])

	zeroBytes(m[:])
	zeroBytes(r[:])
	zeroBytes(kBar[:])
	zeroBytes(kBarFinal[:])
	return k[:], nil
}
