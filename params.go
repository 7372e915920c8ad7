// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// n is the ring degree shared by every parameter set: polynomials live in
// Z_q[x]/(x^n+1).
const n = 256

// q is the ring modulus, fixed across parameter sets: q ≡ 1 (mod n) but
// not (mod 2n), so mod q there is a primitive n-th root of unity (ζ=17)
// and no primitive 2n-th root; the NTT therefore splits R_q into n/2
// quadratic factors (see ntt.go). q = 13*2^8 + 1.
const q = 3329

// messageSize is the length in bytes of a KEM message/shared-secret seed:
// one bit per ring coefficient.
const messageSize = 32

// seedSize is the length in bytes of the ρ/σ seeds and of the implicit
// rejection value z.
const seedSize = 32

// Parameters is the tuple P = (n, q, k, η₁, η₂, du, dv) fixing one named
// security level. n and q are shared by every level and are not part of
// this struct; Level names the level for diagnostics and error messages.
type Parameters struct {
	Level int // target security level in bits: 128, 192, or 256
	K     int // module rank
	Eta1  int // CBD parameter for secrets and encryption blinding
	Eta2  int // CBD parameter for ciphertext noise
	DU    int // compression depth of the ciphertext's u component
	DV    int // compression depth of the ciphertext's v component
}

// L1, L3 and L5 are the three named parameter sets, targeting 128, 192
// and 256-bit security respectively.
var (
	L1 = Parameters{Level: 128, K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4}
	L3 = Parameters{Level: 192, K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4}
	L5 = Parameters{Level: 256, K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5}
)

// String returns the canonical name of the parameter set's security
// level: L1, L3, or L5.
func (p Parameters) String() string {
	switch p.Level {
	case 128:
		return "L1"
	case 192:
		return "L3"
	case 256:
		return "L5"
	default:
		return "unknown"
	}
}

// ParametersForLevel returns the named parameter set targeting the given
// security level (128, 192, or 256 bits). It returns a Configuration
// error for any other level.
func ParametersForLevel(bits int) (Parameters, error) {
	switch bits {
	case 128:
		return L1, nil
	case 192:
		return L3, nil
	case 256:
		return L5, nil
	default:
		return Parameters{}, configError("unknown security level %d; want 128, 192, or 256", bits)
	}
}

// polySize is the packed byte length of a single Poly: n coefficients at
// 12 bits each.
const polySize = 12 * n / 8

// polyVecSize is the packed byte length of a PolyVec_k.
func (p Parameters) polyVecSize() int {
	return p.K * polySize
}

// compressedUSize is the byte length of the compressed u component of a
// ciphertext: k polys compressed to DU bits each.
func (p Parameters) compressedUSize() int {
	return p.K * compressedPolySize(p.DU)
}

// compressedVSize is the byte length of the compressed v component of a
// ciphertext.
func (p Parameters) compressedVSize() int {
	return compressedPolySize(p.DV)
}

// compressedPolySize returns ⌈n*d/8⌉, the packed length of a Poly whose
// coefficients have been compressed to d bits.
func compressedPolySize(d int) int {
	return (n*d + 7) / 8
}

// EncapsulationKeySize returns the byte length of a packed encapsulation
// (public) key: k packed Polys for t̂ plus the 32-byte seed ρ.
func (p Parameters) EncapsulationKeySize() int {
	return p.polyVecSize() + seedSize
}

// DecapsulationKeySize returns the byte length of a packed decapsulation
// (secret) key: k packed Polys for ŝ, the packed encapsulation key, a
// 32-byte hash of it, and the 32-byte implicit-rejection seed z.
func (p Parameters) DecapsulationKeySize() int {
	return p.polyVecSize() + p.EncapsulationKeySize() + seedSize + seedSize
}

// CiphertextSize returns the byte length of a ciphertext: compressed u
// plus compressed v.
func (p Parameters) CiphertextSize() int {
	return p.compressedUSize() + p.compressedVSize()
}

// SharedKeySize is the byte length of the shared secret produced by
// Encapsulate/Decapsulate, fixed across parameter sets.
const SharedKeySize = 32

// SeedSize is the byte length of the seed consumed by NewKeyFromSeed.
const SeedSize = seedSize + seedSize
