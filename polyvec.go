// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// polyVec is a length-k vector of ring elements, the module-LWE layer's
// basic object. Length is tracked dynamically rather than via a generic
// parameter so the same type serves all three parameter sets.
type polyVec []poly

// newPolyVec allocates a zeroed vector of k polys.
func newPolyVec(k int) polyVec {
	return make(polyVec, k)
}

// matrix is a k*k matrix of ring elements, row-major: matrix[i][j]
// corresponds to A[i][j] in KeyGen_PKE.
type matrix []polyVec

// newMatrix allocates a k*k matrix of zeroed polys.
func newMatrix(k int) matrix {
	m := make(matrix, k)
	for i := range m {
		m[i] = newPolyVec(k)
	}
	return m
}

// add sets v to a+b, element-wise.
func (v polyVec) add(a, b polyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

// sub sets v to a-b, element-wise.
func (v polyVec) sub(a, b polyVec) {
	for i := range v {
		v[i].sub(&a[i], &b[i])
	}
}

// ntt transforms every element of v from time-domain to ntt-domain in
// place.
func (v polyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

// invNTT transforms every element of v from ntt-domain to time-domain in
// place.
func (v polyVec) invNTT() {
	for i := range v {
		v[i].invNTT()
	}
}

// normalize canonicalizes every coefficient of every element of v.
func (v polyVec) normalize() {
	for i := range v {
		v[i].normalize()
	}
}

// dot sets r to the inner product <a,b> of two ntt-domain vectors: the sum
// over i of a[i]*b[i] computed via baseMul. a and b are left untouched;
// the result is plain-scale and still in ntt-domain (it is the caller's
// job to invNTT it).
func dot(r *poly, a, b polyVec) {
	var term poly
	defaultEngine.baseMul(r, &a[0], &b[0])
	for i := 1; i < len(a); i++ {
		defaultEngine.baseMul(&term, &a[i], &b[i])
		r.add(r, &term)
	}
}

// matVec sets r to A*s, the matrix-vector product used by KeyGen_PKE:
// r[i] = <A[i], s>, with A and s both in ntt-domain.
func matVec(r polyVec, a matrix, s polyVec) {
	for i := range a {
		dot(&r[i], a[i], s)
	}
}

// matVecTranspose sets r to A^T*s, the transposed matrix-vector product
// used by Enc_PKE: r[j] = <column j of A, s> = sum_i A[i][j]*s[i].
func matVecTranspose(r polyVec, a matrix, s polyVec) {
	k := len(a)
	col := newPolyVec(k)
	for j := 0; j < k; j++ {
		for i := 0; i < k; i++ {
			col[i] = a[i][j]
		}
		dot(&r[j], col, s)
	}
}

// pack writes v's k polys into buf (which must be k*polySize bytes long).
func (v polyVec) pack(buf []byte) {
	for i := range v {
		v[i].pack(buf[i*polySize : (i+1)*polySize])
	}
}

// unpack reads v's k polys from buf (k*polySize bytes).
func (v polyVec) unpack(buf []byte) {
	for i := range v {
		v[i].unpack(buf[i*polySize : (i+1)*polySize])
	}
}

// compress writes Compress_q(v, d) to buf, which must hold
// k*compressedPolySize(d) bytes.
func (v polyVec) compress(buf []byte, d int) {
	step := compressedPolySize(d)
	for i := range v {
		v[i].compress(buf[i*step:(i+1)*step], d)
	}
}

// decompress reads v's k polys from buf (k*compressedPolySize(d) bytes),
// each decompressed from depth d.
func (v polyVec) decompress(buf []byte, d int) {
	step := compressedPolySize(d)
	for i := range v {
		v[i].decompress(buf[i*step:(i+1)*step], d)
	}
}

// zero overwrites every coefficient of every element of v with 0, for
// dropping secret vectors (ŝ and intermediate noise) once they are no
// longer needed.
func (v polyVec) zero() {
	for i := range v {
		for j := range v[i] {
			v[i][j] = 0
		}
	}
}
