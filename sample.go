// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// Two samplers live here: rejection sampling of matrix entries uniform
// over [0,q) from an XOF128 stream, and centered binomial sampling of
// secret/error coefficients from an XOF256 stream keyed by a seed and
// nonce.

// uniformBlockSize is squeezed per round of rejection sampling: 3 bytes
// yield two 12-bit candidates, so 168 is chosen to be a multiple of 3
// close to SHAKE128's 168-byte rate, minimizing re-squeezes.
const uniformBlockSize = 168

// sampleUniform fills p with n coefficients drawn uniformly from [0,q) via
// rejection sampling against an XOF128 stream keyed by rho‖j‖i. i is the
// row, j the column: A[i][j] is derived from rho with i as the high byte,
// j as the low byte of the two-byte suffix.
func sampleUniform(p *poly, rho []byte, i, j byte) {
	x := xof128()
	x.Write(rho)
	x.Write([]byte{j, i})

	var buf [uniformBlockSize]byte
	count := 0
	for count < n {
		x.Read(buf[:])
		for off := 0; off+3 <= len(buf) && count < n; off += 3 {
			d1 := uint16(buf[off]) | (uint16(buf[off+1]&0x0f) << 8)
			d2 := (uint16(buf[off+1]) >> 4) | (uint16(buf[off+2]) << 4)
			if d1 < q {
				p[count] = int16(d1)
				count++
			}
			if d2 < q && count < n {
				p[count] = int16(d2)
				count++
			}
		}
	}
}

// deriveMatrix fills a with the public matrix A expanded from rho:
// a[i][j] = Parse(XOF128(rho‖j‖i)).
func deriveMatrix(a matrix, rho []byte) {
	for i := range a {
		for j := range a[i] {
			sampleUniform(&a[i][j], rho, byte(i), byte(j))
		}
	}
}

// cbd fills p with n coefficients drawn from the centered binomial
// distribution CBD_eta: each coefficient is sum_{l<eta} b_l - b'_l for
// independent uniform bits b_l, b'_l, consumed 2*eta bits at a time from
// prf(seed, nonce, ...).
func cbd(p *poly, eta int, seed []byte, nonce byte) {
	buf := prf(seed, nonce, eta*n/4)
	switch eta {
	case 2:
		cbd2(p, buf)
	case 3:
		cbd3(p, buf)
	default:
		panic("clwe: unsupported eta")
	}
}

// cbd2 implements CBD_2: 4 bits per coefficient, packed 1 byte per pair
// of coefficients (128 bytes for n=256).
func cbd2(p *poly, buf []byte) {
	for i := 0; i < n/8; i++ {
		t := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555
		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			p[8*i+j] = a - b
		}
	}
}

// cbd3 implements CBD_3: 6 bits per coefficient, packed 3 bytes per 4
// coefficients (192 bytes for n=256).
func cbd3(p *poly, buf []byte) {
	for i := 0; i < n/4; i++ {
		t := uint32(buf[3*i]) | uint32(buf[3*i+1])<<8 | uint32(buf[3*i+2])<<16
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249
		for j := 0; j < 4; j++ {
			a := int16((d >> uint(6*j)) & 0x7)
			b := int16((d >> uint(6*j+3)) & 0x7)
			p[4*i+j] = a - b
		}
	}
}

// cbdVec fills v with k independent CBD_eta-sampled polys, consuming a
// distinct nonce per element starting at startNonce (used for the secret
// vector s and for the error vectors e/e1).
func cbdVec(v polyVec, eta int, seed []byte, startNonce byte) {
	for i := range v {
		cbd(&v[i], eta, seed, startNonce+byte(i))
	}
}
