package xwing

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	dk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	c, Ke, err := Encapsulate(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	Kd, err := Decapsulate(dk, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(Ke, Kd) {
		t.Errorf("Ke != Kd")
	}

	dk1, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dk.EncapsulationKey(), dk1.EncapsulationKey()) {
		t.Errorf("ek == ek1")
	}
	if bytes.Equal(dk.Bytes(), dk1.Bytes()) {
		t.Errorf("dk == dk1")
	}

	dk2, err := NewKeyFromSeed(dk.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dk.Bytes(), dk2.Bytes()) {
		t.Errorf("dk != dk2")
	}

	c1, Ke1, err := Encapsulate(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(c, c1) {
		t.Errorf("c == c1")
	}
	if bytes.Equal(Ke, Ke1) {
		t.Errorf("Ke == Ke1")
	}
}

var sink byte

func BenchmarkKeyGen(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dk, err := GenerateKey()
		if err != nil {
			b.Fatal(err)
		}
		sink ^= dk.EncapsulationKey()[0]
	}
}

func BenchmarkEncaps(b *testing.B) {
	dk, err := GenerateKey()
	ek := dk.EncapsulationKey()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, K, err := Encapsulate(ek)
		if err != nil {
			b.Fatal(err)
		}
		sink ^= c[0] ^ K[0]
	}
}

func BenchmarkDecaps(b *testing.B) {
	dk, err := GenerateKey()
	if err != nil {
		b.Fatal(err)
	}
	c, _, err := Encapsulate(dk.EncapsulationKey())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		K, err := Decapsulate(dk, c)
		if err != nil {
			b.Fatal(err)
		}
		sink ^= K[0]
	}
}

func TestDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedSize)
	dk1, err := NewKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	dk2, err := NewKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dk1.EncapsulationKey(), dk2.EncapsulationKey()) {
		t.Errorf("same seed produced different encapsulation keys")
	}
}

func TestBadLengths(t *testing.T) {
	dk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Encapsulate(dk.EncapsulationKey()[:EncapsulationKeySize-1]); err == nil {
		t.Errorf("Encapsulate accepted a short encapsulation key")
	}
	c, _, err := Encapsulate(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decapsulate(dk, c[:CiphertextSize-1]); err == nil {
		t.Errorf("Decapsulate accepted a short ciphertext")
	}
}

func TestTamperedCiphertext(t *testing.T) {
	dk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	c, Ke, err := Encapsulate(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	c[0] ^= 1
	Kd, err := Decapsulate(dk, c)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(Ke, Kd) {
		t.Errorf("tampered ciphertext decapsulated to the original shared key")
	}
}
