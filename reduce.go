// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// fieldElement holds a coefficient of the ring Z_q[x]/(x^n+1). It is not
// kept canonical in [0, q) at all times: between reductions it carries a
// non-canonical representative (the forward NTT alone grows magnitudes by
// up to q per layer), matching the NTT engine's Montgomery/Barrett
// discipline. Canonical reduction
// happens at the pack/compress boundary.
type fieldElement = int16

// Montgomery constants. R = 2^16 is the Montgomery radix. qInvNeg is
// q^-1 mod 2^16 (62209) represented as a signed int16, -3327:
// q * qInvNeg ≡ 1 (mod 2^16), so montReduce subtracts t*q to clear the low
// 16 bits of x.
const qInvNeg int16 = -3327

// barrettV is ⌊2^26/q + 1/2⌋, the fixed-point reciprocal used by
// barrettReduce. 26 bits of headroom keeps the shift exact for any int16
// input, matching the bound used throughout the NTT engine.
const barrettV int32 = 20159

// montReduce implements the Reducer contract's mont_reduce: given x with
// |x| < q*2^15, returns a in (-q, q) with a ≡ x*R^-1 (mod q). The
// computation is a fixed sequence of multiplies, masks and a shift with no
// data-dependent branch, satisfying the constant-time requirement of
// §5: no branch or memory access depends on x.
func montReduce(x int32) int16 {
	t := int16(x) * qInvNeg
	t32 := int32(t) * q
	return int16((x - t32) >> 16)
}

// barrettReduce implements mod_reduce/barrett_reduce: returns a in
// [0, q) with a ≡ x (mod q), via a fixed-point multiply-shift, a
// conditional addition, and a conditional subtraction, constant-time.
// The multiply-shift alone leaves a residue in (-q, q); condSubQ's own
// precondition is an input already in [0, 2q), so the conditional
// addition brings a negative residue back into that range before
// condSubQ finishes the reduction.
func barrettReduce(x int16) int16 {
	t := int16((barrettV*int32(x) + (1 << 25)) >> 26)
	x -= t * q
	x += (x >> 15) & q
	return condSubQ(x)
}

// condSubQ implements cond_sub_q: returns x-q if x>=q, else x, computed
// via a branchless mask rather than an if, so the result does not depend
// on a data-dependent branch.
func condSubQ(x int16) int16 {
	x -= q
	x += (x >> 15) & q
	return x
}

// toMont converts a plain-scale coefficient x into Montgomery form, x*R
// mod q, via a single montReduce call against the precomputed R^2 mod q
// constant. Used to cancel the stray R^-1 factor that basemul's two
// plain-scale multiplies introduce (see ntt.go).
func toMont(x int16) int16 {
	const r2modq int32 = 1353 // R^2 mod q
	return montReduce(int32(x) * r2modq)
}
