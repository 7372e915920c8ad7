// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// zetas lists precomputed powers of the primitive 256th root of unity
// ζ=17 modulo q, in Montgomery form and bit-reversed order:
//
//	zetas[i] = ζ^BitRev7(i) * R mod q
//
// used as the forward/inverse NTT's Cooley-Tukey/Gentleman-Sande twiddle
// factors. Because q-1 = 3328 = 2^8*13 is not divisible by 2n=512, Z_q has
// no primitive 2n-th root; ζ=17 is instead a primitive n-th (256th) root,
// and the transform below factors R_q into 128 quadratic extensions
// rather than splitting completely — see basemul.
var zetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202, 3158, 622, 1577, 182, 962, 2127, 1855, 1468,
	573, 2004, 264, 383, 2500, 1458, 1727, 3199, 2648, 1017, 732, 608, 1787, 411, 3124, 1758,
	1223, 652, 2777, 1015, 2036, 1491, 3047, 1785, 516, 3321, 3009, 2663, 1711, 2167, 126, 1469,
	2476, 3239, 3058, 830, 107, 1908, 3082, 2378, 2931, 961, 1821, 2604, 448, 2264, 677, 2054,
	2226, 430, 555, 843, 2078, 871, 1550, 105, 422, 587, 177, 3094, 3038, 2869, 1574, 1653,
	3083, 778, 1159, 3182, 2552, 1483, 2727, 1119, 1739, 644, 2457, 349, 418, 329, 3173, 3254,
	817, 1097, 603, 610, 1322, 2044, 1864, 384, 2114, 3193, 1218, 1994, 2455, 220, 2142, 1670,
	2144, 1799, 2051, 794, 1819, 2475, 2459, 478, 3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// gammas lists the twiddles basemul needs to multiply within each of the
// 128 quadratic extensions: gammas[i] = ζ^(2*BitRev7(i)+1) * R mod q, the
// image of x^2 under the i-th factor R_q / (x^2 - γ_i).
var gammas = [128]int16{
	2226, 1103, 430, 2899, 555, 2774, 843, 2486, 2078, 1251, 871, 2458, 1550, 1779, 105, 3224,
	422, 2907, 587, 2742, 177, 3152, 3094, 235, 3038, 291, 2869, 460, 1574, 1755, 1653, 1676,
	3083, 246, 778, 2551, 1159, 2170, 3182, 147, 2552, 777, 1483, 1846, 2727, 602, 1119, 2210,
	1739, 1590, 644, 2685, 2457, 872, 349, 2980, 418, 2911, 329, 3000, 3173, 156, 3254, 75,
	817, 2512, 1097, 2232, 603, 2726, 610, 2719, 1322, 2007, 2044, 1285, 1864, 1465, 384, 2945,
	2114, 1215, 3193, 136, 1218, 2111, 1994, 1335, 2455, 874, 220, 3109, 2142, 1187, 1670, 1659,
	2144, 1185, 1799, 1530, 2051, 1278, 794, 2535, 1819, 1510, 2475, 854, 2459, 870, 478, 2851,
	3221, 108, 3021, 308, 996, 2333, 991, 2338, 958, 2371, 1869, 1460, 1522, 1807, 1628, 1701,
}

// invNTTScale is ((n/2)^-1 mod q) in Montgomery form: the single constant
// the inverse NTT multiplies every coefficient by after the
// Gentleman-Sande layers, correcting the missing division by n/2 that
// the butterflies postpone. It is deliberately the "plain" scale (not the
// basemul-compensating mont^2/(n/2) some Kyber implementations bake into
// invNTT) so that ntt_inverse is a single, uniform operation: basemul
// cancels its own stray Montgomery factor before returning (see below),
// rather than leaving that correction for invNTT to absorb.
const invNTTScale int16 = 512

// nttTransformer is the NTT engine contract: a forward and inverse
// transform plus the negacyclic pointwise product. It exists so
// alternative back-ends (AVX2/NEON/etc.) can implement the same contract
// as interchangeable engines; scalarNTT below is the sole implementation
// and doubles as the correctness reference any such back-end would be
// checked against.
type nttTransformer interface {
	forward(p *poly)
	inverse(p *poly)
	baseMul(c, a, b *poly)
}

// scalarNTT is the reference, portable implementation of nttTransformer.
type scalarNTT struct{}

// defaultEngine is the NTT engine used throughout this package.
var defaultEngine nttTransformer = scalarNTT{}

// forward executes ntt_forward in place: decimation-in-time,
// Cooley-Tukey butterflies, bit-reversed output order matching zetas. No
// bit-reverse permutation is applied.
func (scalarNTT) forward(p *poly) {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := int32(zetas[k])
			k++
			for j := start; j < start+length; j++ {
				t := montReduce(zeta * int32(p[j+length]))
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// inverse executes ntt_inverse in place: Gentleman-Sande butterflies,
// concluding with multiplication by (n/2)^-1 mod q in Montgomery form.
func (scalarNTT) inverse(p *poly) {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := int32(zetas[k])
			k--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = montReduce(zeta * int32(p[j+length]))
			}
		}
	}
	for j := 0; j < n; j++ {
		p[j] = montReduce(int32(invNTTScale) * int32(p[j]))
	}
}

// baseMul computes the negacyclic pointwise product c = a ⊙ b of two
// NTT-domain polynomials. R_q's image under the NTT is a product of n/2
// quadratic extensions Z_q[x]/(x^2-γ_i), so pointwise multiplication
// proceeds pair by pair, multiplying degree-one polynomials modulo
// x^2-γ_i instead of simply multiplying scalars.
//
// a and b are plain-scale (not Montgomery form); the two montReduce calls
// combining them each divide by R once, leaving a stray R^-1 factor on
// the result that the final toMont call cancels, so that the result is
// plain-scale and inverse can use its single uniform scale constant
// regardless of whether its input came from baseMul or from forward
// directly.
func (scalarNTT) baseMul(c, a, b *poly) {
	for i := 0; i < n/2; i++ {
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]
		gamma := int32(gammas[i])

		c0 := montReduce(int32(a0) * int32(b0))
		c0 += montReduce(gamma * int32(montReduce(int32(a1)*int32(b1))))
		c1 := montReduce(int32(a0) * int32(b1))
		c1 += montReduce(int32(a1) * int32(b0))

		c[2*i] = toMont(c0)
		c[2*i+1] = toMont(c1)
	}
}
