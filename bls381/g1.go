package bls381

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Encoding lengths for G1 points.
const (
	G1BytesCompressed   = bls12381.SizeOfG1AffineCompressed
	G1BytesUncompressed = bls12381.SizeOfG1AffineUncompressed
)

// G1 is a point in the first pairing group: the r-torsion subgroup of the
// curve Y² = X³ + 4 over Fp.
//
// G1 is an immutable value: every operation returns a fresh point. The zero
// value is the identity element (the point at infinity).
type G1 struct {
	p bls12381.G1Affine
}

// G1Identity returns the identity element of G1.
func G1Identity() G1 {
	return G1{}
}

// G1Generator returns the fixed generator of G1.
func G1Generator() G1 {
	var e G1
	_, _, g1, _ := bls12381.Generators()
	e.p = g1
	return e
}

// G1FromCompressed decodes a 48-byte compressed G1 point. It returns an
// error if data has the wrong length, carries an invalid flag combination,
// does not satisfy the curve equation, or lies outside the r-order
// subgroup.
func G1FromCompressed(data []byte) (G1, error) {
	if len(data) != G1BytesCompressed {
		return G1{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), G1BytesCompressed)
	}
	be, err := fromWireCompressed(data)
	if err != nil {
		return G1{}, err
	}
	var e G1
	if _, err := e.p.SetBytes(be); err != nil {
		return G1{}, fmt.Errorf("bls381: invalid G1 point: %w", err)
	}
	return e, nil
}

// G1FromUncompressed decodes a 96-byte uncompressed G1 point, with the same
// validation as [G1FromCompressed].
func G1FromUncompressed(data []byte) (G1, error) {
	if len(data) != G1BytesUncompressed {
		return G1{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), G1BytesUncompressed)
	}
	be, infinite, err := fromWireUncompressed(data)
	if err != nil {
		return G1{}, err
	}
	if infinite {
		return G1{}, nil
	}
	var e G1
	if _, err := e.p.SetBytes(be); err != nil {
		return G1{}, fmt.Errorf("bls381: invalid G1 point: %w", err)
	}
	return e, nil
}

// HashToG1 hashes msg to a G1 point using the RFC 9380
// simplified-SWU construction, domain-separated by dst.
func HashToG1(msg, dst []byte) (G1, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return G1{}, err
	}
	return G1{p: p}, nil
}

// Identity returns the identity element. The receiver is only used for
// dispatch and may be the zero value.
func (G1) Identity() G1 {
	return G1{}
}

// Generator returns the group generator. The receiver is only used for
// dispatch and may be the zero value.
func (G1) Generator() G1 {
	return G1Generator()
}

// Add returns the group sum e + b.
func (e G1) Add(b G1) G1 {
	var r G1
	r.p.Add(&e.p, &b.p)
	return r
}

// Sub returns the group difference e - b.
func (e G1) Sub(b G1) G1 {
	var r G1
	r.p.Sub(&e.p, &b.p)
	return r
}

// Negate returns -e.
func (e G1) Negate() G1 {
	var r G1
	r.p.Neg(&e.p)
	return r
}

// ScalarMul returns s·e.
func (e G1) ScalarMul(s Scalar[G1]) G1 {
	var r G1
	r.p.ScalarMultiplication(&e.p, s.bigInt())
	return r
}

// Equal reports whether e and b are the same point, regardless of internal
// coordinate representation.
func (e G1) Equal(b G1) bool {
	return e.p.Equal(&b.p)
}

// IsIdentity reports whether e is the point at infinity.
func (e G1) IsIdentity() bool {
	return e.p.IsInfinity()
}

// BytesCompressed returns the canonical 48-byte compressed encoding:
// little-endian X with the infinity and Y-sign flags in the two high bits
// of the final byte.
func (e G1) BytesCompressed() []byte {
	b := e.p.Bytes()
	return toWireCompressed(b[:])
}

// BytesUncompressed returns the canonical 96-byte uncompressed encoding:
// little-endian X then little-endian Y, flags in the final byte.
func (e G1) BytesUncompressed() []byte {
	if e.p.IsInfinity() {
		return wireInfinityUncompressed(G1BytesUncompressed)
	}
	b := e.p.RawBytes()
	return toWireUncompressed(b[:], e.p.Y.LexicographicallyLargest())
}

// String returns a human-readable coordinate representation of e.
func (e G1) String() string {
	return e.p.String()
}
