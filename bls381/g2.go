package bls381

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Encoding lengths for G2 points.
const (
	G2BytesCompressed   = bls12381.SizeOfG2AffineCompressed
	G2BytesUncompressed = bls12381.SizeOfG2AffineUncompressed
)

// G2 is a point in the second pairing group: the r-torsion subgroup of the
// twist Y² = X³ + 4(u+1) over Fp².
//
// G2 is an immutable value: every operation returns a fresh point. The zero
// value is the identity element (the point at infinity).
type G2 struct {
	p bls12381.G2Affine
}

// G2Identity returns the identity element of G2.
func G2Identity() G2 {
	return G2{}
}

// G2Generator returns the fixed generator of G2.
func G2Generator() G2 {
	var e G2
	_, _, _, g2 := bls12381.Generators()
	e.p = g2
	return e
}

// G2FromCompressed decodes a 96-byte compressed G2 point. It returns an
// error if data has the wrong length, carries an invalid flag combination,
// does not satisfy the twist equation, or lies outside the r-order
// subgroup.
func G2FromCompressed(data []byte) (G2, error) {
	if len(data) != G2BytesCompressed {
		return G2{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), G2BytesCompressed)
	}
	be, err := fromWireCompressed(data)
	if err != nil {
		return G2{}, err
	}
	var e G2
	if _, err := e.p.SetBytes(be); err != nil {
		return G2{}, fmt.Errorf("bls381: invalid G2 point: %w", err)
	}
	return e, nil
}

// G2FromUncompressed decodes a 192-byte uncompressed G2 point, with the
// same validation as [G2FromCompressed].
func G2FromUncompressed(data []byte) (G2, error) {
	if len(data) != G2BytesUncompressed {
		return G2{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), G2BytesUncompressed)
	}
	be, infinite, err := fromWireUncompressed(data)
	if err != nil {
		return G2{}, err
	}
	if infinite {
		return G2{}, nil
	}
	var e G2
	if _, err := e.p.SetBytes(be); err != nil {
		return G2{}, fmt.Errorf("bls381: invalid G2 point: %w", err)
	}
	return e, nil
}

// HashToG2 hashes msg to a G2 point using the RFC 9380
// simplified-SWU construction, domain-separated by dst.
func HashToG2(msg, dst []byte) (G2, error) {
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return G2{}, err
	}
	return G2{p: p}, nil
}

// Identity returns the identity element. The receiver is only used for
// dispatch and may be the zero value.
func (G2) Identity() G2 {
	return G2{}
}

// Generator returns the group generator. The receiver is only used for
// dispatch and may be the zero value.
func (G2) Generator() G2 {
	return G2Generator()
}

// Add returns the group sum e + b.
func (e G2) Add(b G2) G2 {
	var r G2
	r.p.Add(&e.p, &b.p)
	return r
}

// Sub returns the group difference e - b.
func (e G2) Sub(b G2) G2 {
	var r G2
	r.p.Sub(&e.p, &b.p)
	return r
}

// Negate returns -e.
func (e G2) Negate() G2 {
	var r G2
	r.p.Neg(&e.p)
	return r
}

// ScalarMul returns s·e.
func (e G2) ScalarMul(s Scalar[G2]) G2 {
	var r G2
	r.p.ScalarMultiplication(&e.p, s.bigInt())
	return r
}

// Equal reports whether e and b are the same point, regardless of internal
// coordinate representation.
func (e G2) Equal(b G2) bool {
	return e.p.Equal(&b.p)
}

// IsIdentity reports whether e is the point at infinity.
func (e G2) IsIdentity() bool {
	return e.p.IsInfinity()
}

// BytesCompressed returns the canonical 96-byte compressed encoding:
// little-endian X (c0 then c1), flags in the final byte as in G1.
func (e G2) BytesCompressed() []byte {
	b := e.p.Bytes()
	return toWireCompressed(b[:])
}

// BytesUncompressed returns the canonical 192-byte uncompressed encoding:
// little-endian X then little-endian Y, flags in the final byte.
func (e G2) BytesUncompressed() []byte {
	if e.p.IsInfinity() {
		return wireInfinityUncompressed(G2BytesUncompressed)
	}
	b := e.p.RawBytes()
	return toWireUncompressed(b[:], e.p.Y.LexicographicallyLargest())
}

// String returns a human-readable coordinate representation of e.
func (e G2) String() string {
	return e.p.String()
}
