// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// Secret material (ŝ, sk_pke bytes, m, r, K̄, z, and intermediate noise
// polynomials) is overwritten once no longer needed rather than left for
// the garbage collector. Go offers no guaranteed-not-optimized-away
// primitive for this the way some languages do; zeroBytes and polyVec.zero
// (polyvec.go) are the plain loops the rest of this package calls where
// the material listed above is dropped.

// zeroBytes overwrites every byte of b with 0.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Destroy overwrites dk's secret material (ŝ and the implicit-rejection
// seed z) with zeroes. dk must not be used afterwards. The embedded
// encapsulation key and its hash are not secret and are left intact.
func (dk *DecapsulationKey) Destroy() {
	zeroBytes(dk.dkPKE)
	for i := range dk.z {
		dk.z[i] = 0
	}
}
