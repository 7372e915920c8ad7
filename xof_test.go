// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGDeterministic(t *testing.T) {
	in := []byte("fixed input")
	a1, b1 := g(in, []byte{tagGKeyGen})
	a2, b2 := g(in, []byte{tagGKeyGen})
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
}

func TestGDomainSeparated(t *testing.T) {
	in := []byte("fixed input")
	a1, b1 := g(in, []byte{tagGKeyGen})
	a2, b2 := g(in, []byte{tagGEncaps})
	require.NotEqual(t, a1, a2)
	require.NotEqual(t, b1, b2)
}

func TestHHashDeterministic(t *testing.T) {
	in := []byte("some bytes")
	require.Equal(t, hHash(in), hHash(in))
}

func TestKDFDeterministic(t *testing.T) {
	kBar := make([]byte, 32)
	hc := make([]byte, 32)
	require.Equal(t, kdf(kBar, hc), kdf(kBar, hc))
}

func TestKDFVariesWithInput(t *testing.T) {
	kBar1 := make([]byte, 32)
	kBar2 := make([]byte, 32)
	kBar2[0] = 1
	hc := make([]byte, 32)
	require.NotEqual(t, kdf(kBar1, hc), kdf(kBar2, hc))
}

func TestPRFNonceVaries(t *testing.T) {
	seed := make([]byte, 32)
	require.NotEqual(t, prf(seed, 0, 32), prf(seed, 1, 32))
}
