// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clwe implements a module-lattice key encapsulation mechanism in
// the Kyber/ML-KEM family: ring arithmetic over Z_q[x]/(x^n+1) via a
// Number-Theoretic Transform, a module-LWE encryption layer on top of it,
// and a Fujisaki-Okamoto transform turning the CPA-secure encryption into
// a CCA-secure KEM with implicit rejection.
//
// Three named parameter sets are provided, L1, L3 and L5, targeting 128,
// 192 and 256-bit security respectively. All three share n=256 and
// q=3329; they differ in module rank k, noise parameters η₁/η₂, and
// ciphertext compression depths du/dv. See Parameters and
// ParametersForLevel.
//
// The wire layout here is self-consistent but intentionally not bit-exact
// with any published standard; callers needing ML-KEM interoperability
// should use a dedicated implementation of that standard instead.
package clwe
