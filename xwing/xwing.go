// Package xwing implements a hybrid key encapsulation method combining
// X25519 with this module's L3 (192-bit) module-LWE KEM and SHA3-256,
// following the generic X-Wing combiner construction
// (draft-connolly-cfrg-xwing-kem) with the ML-KEM component replaced by
// clwe.L3.
package xwing

import (
	"bytes"
	"crypto/ecdh"
	"crypto/rand"
	"errors"

	"github.com/cryptopix-dev/cryptopix-clwe"
	"golang.org/x/crypto/sha3"
)

var params = clwe.L3

var (
	CiphertextSize       = params.CiphertextSize() + 32
	EncapsulationKeySize = params.EncapsulationKeySize() + 32
)

const (
	SharedKeySize = 32
	SeedSize      = 32
)

// A DecapsulationKey is the secret key used to decapsulate a shared key from a
// ciphertext. It includes various precomputed values.
type DecapsulationKey struct {
	sk  [SeedSize]byte
	skM *clwe.DecapsulationKey
	skX *ecdh.PrivateKey
	pk  []byte
}

// Bytes returns the decapsulation key as a 32-byte seed.
func (dk *DecapsulationKey) Bytes() []byte {
	return bytes.Clone(dk.sk[:])
}

// EncapsulationKey returns the public encapsulation key necessary to produce
// ciphertexts.
func (dk *DecapsulationKey) EncapsulationKey() []byte {
	return bytes.Clone(dk.pk)
}

// GenerateKey generates a new decapsulation key, drawing random bytes from
// crypto/rand. The decapsulation key must be kept secret.
func GenerateKey() (*DecapsulationKey, error) {
	sk := make([]byte, SeedSize)
	if _, err := rand.Read(sk); err != nil {
		return nil, err
	}
	return NewKeyFromSeed(sk)
}

// NewKeyFromSeed deterministically generates a decapsulation key from a 32-byte
// seed. The seed must be uniformly random.
func NewKeyFromSeed(sk []byte) (*DecapsulationKey, error) {
	if len(sk) != SeedSize {
		return nil, errors.New("xwing: invalid seed length")
	}

	s := sha3.NewShake256()
	s.Write(sk)
	expanded := make([]byte, clwe.SeedSize+32)
	if _, err := s.Read(expanded); err != nil {
		return nil, err
	}

	skM, err := clwe.NewKeyFromSeed(params, expanded[:clwe.SeedSize])
	if err != nil {
		return nil, err
	}
	pkM := skM.EncapsulationKey()

	skX := expanded[clwe.SeedSize:]
	x, err := ecdh.X25519().NewPrivateKey(skX)
	if err != nil {
		return nil, err
	}
	pkX := x.PublicKey().Bytes()

	dk := &DecapsulationKey{}
	copy(dk.sk[:], sk)
	dk.skM = skM
	dk.skX = x
	dk.pk = append(pkM, pkX...)
	return dk, nil
}

const xwingLabel = (`` +
	`\./` +
	`/^\`)

func combiner(ssM, ssX, ctX, pkX []byte) []byte {
	h := sha3.New256()
	h.Write(ssM)
	h.Write(ssX)
	h.Write(ctX)
	h.Write(pkX)
	h.Write([]byte(xwingLabel))
	return h.Sum(nil)
}

// Encapsulate generates a shared key and an associated ciphertext from an
// encapsulation key, drawing random bytes from crypto/rand.
// If the encapsulation key is not valid, Encapsulate returns an error.
//
// The shared key must be kept secret.
func Encapsulate(encapsulationKey []byte) (ciphertext, sharedKey []byte, err error) {
	if len(encapsulationKey) != EncapsulationKeySize {
		return nil, nil, errors.New("xwing: invalid encapsulation key size")
	}

	mSize := params.EncapsulationKeySize()
	pkM := encapsulationKey[:mSize]
	pkX := encapsulationKey[mSize:]

	ephemeralKey, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	peerKey, err := ecdh.X25519().NewPublicKey(pkX)
	if err != nil {
		return nil, nil, err
	}
	ctX := ephemeralKey.PublicKey().Bytes()
	ssX, err := ephemeralKey.ECDH(peerKey)
	if err != nil {
		return nil, nil, err
	}

	ctM, ssM, err := clwe.Encapsulate(params, pkM, rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	ss := combiner(ssM, ssX, ctX, pkX)
	ct := append(ctM, ctX...)
	return ct, ss, nil
}

// Decapsulate generates a shared key from a ciphertext and a decapsulation key.
// If the ciphertext has the wrong length, or its X25519 part is rejected by
// ECDH, Decapsulate returns an error. A ciphertext of the right length whose
// clwe part was altered is not an error: implicit rejection yields an
// unrelated shared key instead.
//
// The shared key must be kept secret.
func Decapsulate(dk *DecapsulationKey, ciphertext []byte) (sharedKey []byte, err error) {
	if len(ciphertext) != CiphertextSize {
		return nil, errors.New("xwing: invalid ciphertext length")
	}

	cSize := params.CiphertextSize()
	ctM := ciphertext[:cSize]
	ctX := ciphertext[cSize:]
	pkX := dk.pk[params.EncapsulationKeySize():]

	ssM, err := clwe.Decapsulate(dk.skM, ctM)
	if err != nil {
		return nil, err
	}

	peerKey, err := ecdh.X25519().NewPublicKey(ctX)
	if err != nil {
		return nil, err
	}
	ssX, err := dk.skX.ECDH(peerKey)
	if err != nil {
		return nil, err
	}

	ss := combiner(ssM, ssX, ctX, pkX)
	return ss, nil
}
