package bls

import (
	"fmt"

	"github.com/f3rmion/pairing/bls381"
)

// Bytes returns the canonical 32-byte encoding of the signing scalar.
func (sk PrivateKey) Bytes() []byte {
	return sk.s.Bytes()
}

// PrivateKeyFromBytes decodes a signing key produced by
// [PrivateKey.Bytes]. The zero scalar is rejected.
func PrivateKeyFromBytes(data []byte) (PrivateKey, error) {
	s, err := bls381.ScalarFromBytes[bls381.G1](data)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("bls: invalid private key: %w", err)
	}
	if s.IsZero() {
		return PrivateKey{}, fmt.Errorf("bls: zero private key")
	}
	return PrivateKey{s: s}, nil
}

// Bytes returns the 48-byte compressed encoding of the verification key.
func (pk PublicKey) Bytes() []byte {
	return pk.p.BytesCompressed()
}

// PublicKeyFromBytes decodes a compressed verification key, validating
// curve and subgroup membership.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	p, err := bls381.G1FromCompressed(data)
	if err != nil {
		return PublicKey{}, fmt.Errorf("bls: invalid public key: %w", err)
	}
	return PublicKey{p: p}, nil
}

// Equal reports whether pk and other are the same verification key.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.p.Equal(other.p)
}

// Bytes returns the 96-byte compressed encoding of the signature.
func (sig Signature) Bytes() []byte {
	return sig.p.BytesCompressed()
}

// SignatureFromBytes decodes a compressed signature, validating curve and
// subgroup membership.
func SignatureFromBytes(data []byte) (Signature, error) {
	p, err := bls381.G2FromCompressed(data)
	if err != nil {
		return Signature{}, fmt.Errorf("bls: invalid signature: %w", err)
	}
	return Signature{p: p}, nil
}

// Equal reports whether sig and other are the same signature.
func (sig Signature) Equal(other Signature) bool {
	return sig.p.Equal(other.p)
}
