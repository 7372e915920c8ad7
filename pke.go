// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// The CPA-secure public-key encryption scheme the KEM layer wraps with a
// Fujisaki-Okamoto transform: matrix expansion, CBD sampling, NTT domain
// bookkeeping, and the Montgomery-form correction folded into baseMul
// (see ntt.go).

// keyGenPKE implements KeyGen_PKE(d): deterministic key generation from a
// 32-byte seed d. Returns the packed encapsulation key (t̂‖ρ) and the
// packed decapsulation key (ŝ).
func keyGenPKE(p Parameters, d []byte) (ekPKE, dkPKE []byte) {
	rho, sigma := g(d, []byte{tagGKeyGen})

	a := newMatrix(p.K)
	deriveMatrix(a, rho[:])

	s := newPolyVec(p.K)
	cbdVec(s, p.Eta1, sigma[:], 0)
	s.ntt()

	e := newPolyVec(p.K)
	cbdVec(e, p.Eta1, sigma[:], byte(p.K))
	e.ntt()

	t := newPolyVec(p.K)
	matVec(t, a, s)
	t.add(t, e)
	t.normalize()

	ekPKE = make([]byte, p.polyVecSize()+seedSize)
	t.pack(ekPKE[:p.polyVecSize()])
	copy(ekPKE[p.polyVecSize():], rho[:])

	// s is stored NTT-domain: decPKE consumes it directly as the dot
	// product's left operand without re-transforming.
	s.normalize()
	dkPKE = make([]byte, p.polyVecSize())
	s.pack(dkPKE)

	s.zero()
	e.zero()
	return ekPKE, dkPKE
}

// encPKE implements Enc_PKE(ekPKE, m, r): deterministic encryption of the
// 32-byte message m under encapsulation key ekPKE using 32 bytes of
// randomness r. Returns the packed ciphertext c = c1‖c2.
func encPKE(p Parameters, ekPKE, m, r []byte) []byte {
	t := newPolyVec(p.K)
	t.unpack(ekPKE[:p.polyVecSize()])
	rho := ekPKE[p.polyVecSize():]

	a := newMatrix(p.K)
	deriveMatrix(a, rho)

	rVec := newPolyVec(p.K)
	cbdVec(rVec, p.Eta1, r, 0)
	rVec.ntt()

	e1 := newPolyVec(p.K)
	cbdVec(e1, p.Eta2, r, byte(p.K))

	var e2 poly
	cbd(&e2, p.Eta2, r, byte(2*p.K))

	u := newPolyVec(p.K)
	matVecTranspose(u, a, rVec)
	u.invNTT()
	u.add(u, e1)
	u.normalize()

	var v poly
	dot(&v, t, rVec)
	v.invNTT()
	v.add(&v, &e2)

	var mPoly poly
	var mArr [messageSize]byte
	copy(mArr[:], m)
	mPoly.encodeMessage(&mArr)
	v.add(&v, &mPoly)
	v.normalize()

	c := make([]byte, p.CiphertextSize())
	u.compress(c[:p.compressedUSize()], p.DU)
	v.compress(c[p.compressedUSize():], p.DV)

	rVec.zero()
	e1.zero()
	e2 = poly{}
	mPoly = poly{}
	zeroBytes(mArr[:])
	return c
}

// decPKE implements Dec_PKE(dkPKE, c): deterministic decryption of
// ciphertext c under decapsulation key dkPKE. Returns the recovered
// 32-byte message.
func decPKE(p Parameters, dkPKE, c []byte) [messageSize]byte {
	s := newPolyVec(p.K)
	s.unpack(dkPKE)

	u := newPolyVec(p.K)
	u.decompress(c[:p.compressedUSize()], p.DU)
	u.ntt()

	var v poly
	v.decompress(c[p.compressedUSize():], p.DV)

	var mm poly
	dot(&mm, s, u)
	mm.invNTT()

	var diff poly
	diff.sub(&v, &mm)
	diff.normalize()

	var m [messageSize]byte
	diff.decodeMessage(&m)

	s.zero()
	mm = poly{}
	diff = poly{}
	return m
}
