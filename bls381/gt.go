package bls381

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GtBytes is the length of the canonical Gt encoding. Gt elements live in
// the degree-12 extension field and have a single fixed-length form, so the
// compressed and uncompressed encodings coincide.
const GtBytes = bls12381.SizeOfGT

// Gt is an element of the pairing output group: the r-order subgroup of the
// multiplicative group of Fp¹². All operations are written additively for
// uniformity with the curve groups, so Add is field multiplication and
// ScalarMul is exponentiation.
//
// Gt is an immutable value: every operation returns a fresh element.
// Unlike G1 and G2 the zero value of Gt is not a valid group element;
// obtain the identity with [GtIdentity].
type Gt struct {
	v bls12381.GT
}

var gtGen Gt

func init() {
	_, _, g1, g2 := bls12381.Generators()
	e, err := bls12381.Pair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{g2})
	if err != nil {
		panic("bls381: pairing the curve generators failed: " + err.Error())
	}
	gtGen.v = e
}

// GtIdentity returns the identity element of Gt.
func GtIdentity() Gt {
	var e Gt
	e.v.SetOne()
	return e
}

// GtGenerator returns e(g1, g2), the generator of Gt induced by the curve
// group generators.
func GtGenerator() Gt {
	return gtGen
}

// GtFromBytes decodes a 576-byte Gt element. It returns an error if data
// has the wrong length, is not a valid extension-field element, or lies
// outside the r-order subgroup.
func GtFromBytes(data []byte) (Gt, error) {
	if len(data) != GtBytes {
		return Gt{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), GtBytes)
	}
	var e Gt
	if err := e.v.SetBytes(data); err != nil {
		return Gt{}, fmt.Errorf("bls381: invalid Gt element: %w", err)
	}
	if !e.v.IsInSubGroup() {
		return Gt{}, fmt.Errorf("bls381: Gt element outside the r-order subgroup")
	}
	return e, nil
}

// GtFromCompressed decodes a Gt element; see [GtFromBytes]. Gt has a single
// canonical encoding shared by both forms.
func GtFromCompressed(data []byte) (Gt, error) {
	return GtFromBytes(data)
}

// GtFromUncompressed decodes a Gt element; see [GtFromBytes].
func GtFromUncompressed(data []byte) (Gt, error) {
	return GtFromBytes(data)
}

// Identity returns the identity element. The receiver is only used for
// dispatch and may be the zero value.
func (Gt) Identity() Gt {
	return GtIdentity()
}

// Generator returns the group generator. The receiver is only used for
// dispatch and may be the zero value.
func (Gt) Generator() Gt {
	return gtGen
}

// Add returns the group combination of e and b (multiplication in Fp¹²).
func (e Gt) Add(b Gt) Gt {
	var r Gt
	r.v.Mul(&e.v, &b.v)
	return r
}

// Sub returns the group difference of e and b.
func (e Gt) Sub(b Gt) Gt {
	var inv bls12381.GT
	inv.Inverse(&b.v)
	var r Gt
	r.v.Mul(&e.v, &inv)
	return r
}

// Negate returns the group inverse of e.
func (e Gt) Negate() Gt {
	var r Gt
	r.v.Inverse(&e.v)
	return r
}

// ScalarMul returns s·e (exponentiation in Fp¹²).
func (e Gt) ScalarMul(s Scalar[Gt]) Gt {
	var r Gt
	r.v.Exp(e.v, s.bigInt())
	return r
}

// Equal reports whether e and b represent the same element.
func (e Gt) Equal(b Gt) bool {
	return e.v.Equal(&b.v)
}

// IsIdentity reports whether e is the identity element.
func (e Gt) IsIdentity() bool {
	var one bls12381.GT
	one.SetOne()
	return e.v.Equal(&one)
}

// BytesCompressed returns the canonical 576-byte encoding of e.
func (e Gt) BytesCompressed() []byte {
	b := e.v.Bytes()
	return b[:]
}

// BytesUncompressed returns the canonical 576-byte encoding of e. Gt has a
// single canonical encoding shared by both forms.
func (e Gt) BytesUncompressed() []byte {
	b := e.v.Bytes()
	return b[:]
}

// String returns a human-readable representation of e.
func (e Gt) String() string {
	return e.v.String()
}
