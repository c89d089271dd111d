package bls

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pairing/algebra"
	"github.com/f3rmion/pairing/bls381"
)

// signatureDST is the RFC 9380 ciphersuite tag for hashing messages to G2
// in the minimal-pubkey BLS variant.
var signatureDST = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")

// PrivateKey is a BLS signing key: a nonzero scalar.
type PrivateKey struct {
	s bls381.Scalar[bls381.G1]
}

// PublicKey is a BLS verification key: the signing scalar times the G1
// generator, 48 bytes compressed.
type PublicKey struct {
	p bls381.G1
}

// Signature is a BLS signature: a point in G2, 96 bytes compressed.
type Signature struct {
	p bls381.G2
}

// GenerateKey draws a fresh key pair from the given random source.
func GenerateKey(rng io.Reader) (PrivateKey, PublicKey, error) {
	for {
		s, err := bls381.RandomScalar[bls381.G1](rng)
		if err != nil {
			return PrivateKey{}, PublicKey{}, fmt.Errorf("bls: drawing secret scalar: %w", err)
		}
		if s.IsZero() {
			continue
		}
		return PrivateKey{s: s}, PublicKey{p: bls381.G1Generator().ScalarMul(s)}, nil
	}
}

// PublicKey returns the verification key matching sk.
func (sk PrivateKey) PublicKey() PublicKey {
	return PublicKey{p: bls381.G1Generator().ScalarMul(sk.s)}
}

// Sign signs msg: the signature is sk times the message hashed to G2.
func Sign(sk PrivateKey, msg []byte) (Signature, error) {
	h, err := bls381.HashToG2(msg, signatureDST)
	if err != nil {
		return Signature{}, fmt.Errorf("bls: hashing message: %w", err)
	}
	return Signature{p: h.ScalarMul(bls381.RetagScalar[bls381.G2](sk.s))}, nil
}

// Verify reports whether sig is a valid signature on msg under pk, by
// checking e(pk, H(msg)) == e(g1, sig) as a single combined pairing.
// The identity public key is rejected.
func Verify(pk PublicKey, msg []byte, sig Signature) (bool, error) {
	if pk.p.IsIdentity() {
		return false, nil
	}
	h, err := bls381.HashToG2(msg, signatureDST)
	if err != nil {
		return false, fmt.Errorf("bls: hashing message: %w", err)
	}
	e := bls381.MultiPair(
		[]bls381.G1{pk.p, bls381.G1Generator().Negate()},
		[]bls381.G2{h, sig.p},
	)
	return e.IsIdentity(), nil
}

// AggregateSignatures combines signatures on the same or distinct messages
// into one. At least one signature is required.
func AggregateSignatures(sigs []Signature) (Signature, error) {
	if len(sigs) == 0 {
		return Signature{}, errors.New("bls: no signatures to aggregate")
	}
	points := make([]bls381.G2, len(sigs))
	for i, s := range sigs {
		points[i] = s.p
	}
	return Signature{p: algebra.Sum(points...)}, nil
}

// AggregatePublicKeys combines verification keys for checking a signature
// aggregated over a single common message. At least one key is required.
func AggregatePublicKeys(pks []PublicKey) (PublicKey, error) {
	if len(pks) == 0 {
		return PublicKey{}, errors.New("bls: no public keys to aggregate")
	}
	points := make([]bls381.G1, len(pks))
	for i, pk := range pks {
		points[i] = pk.p
	}
	return PublicKey{p: algebra.Sum(points...)}, nil
}

// VerifyAggregate reports whether sig is a valid aggregate signature by
// pks over the single common message msg.
func VerifyAggregate(pks []PublicKey, msg []byte, sig Signature) (bool, error) {
	agg, err := AggregatePublicKeys(pks)
	if err != nil {
		return false, err
	}
	return Verify(agg, msg, sig)
}

// VerifyBatch reports whether sig is a valid aggregate signature where each
// key in pks signed the message at the same index of msgs, by checking
// ∏ e(pk_i, H(msg_i)) == e(g1, sig).
func VerifyBatch(pks []PublicKey, msgs [][]byte, sig Signature) (bool, error) {
	if len(pks) != len(msgs) {
		return false, fmt.Errorf("bls: %d public keys for %d messages", len(pks), len(msgs))
	}
	if len(pks) == 0 {
		return false, errors.New("bls: empty batch")
	}
	p1s := make([]bls381.G1, 0, len(pks)+1)
	p2s := make([]bls381.G2, 0, len(msgs)+1)
	for i, pk := range pks {
		if pk.p.IsIdentity() {
			return false, nil
		}
		h, err := bls381.HashToG2(msgs[i], signatureDST)
		if err != nil {
			return false, fmt.Errorf("bls: hashing message %d: %w", i, err)
		}
		p1s = append(p1s, pk.p)
		p2s = append(p2s, h)
	}
	p1s = append(p1s, bls381.G1Generator().Negate())
	p2s = append(p2s, sig.p)
	return bls381.MultiPair(p1s, p2s).IsIdentity(), nil
}
