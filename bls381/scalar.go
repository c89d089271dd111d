package bls381

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarBytes is the length of the canonical scalar encoding: a 32-byte
// little-endian integer strictly below the group order r.
const ScalarBytes = fr.Bytes

var (
	// ErrNotInvertible is returned when inverting the zero scalar.
	ErrNotInvertible = errors.New("bls381: zero scalar has no inverse")
	// ErrInvalidLength is returned when a decoder receives input of the
	// wrong size. Short input is rejected, never zero-padded.
	ErrInvalidLength = errors.New("bls381: invalid encoding length")
	// ErrInvalidFlags is returned when the reserved flag bits of a point
	// encoding do not match the requested form.
	ErrInvalidFlags = errors.New("bls381: invalid serialization flags")
)

// Group constrains a scalar's tag to one of the three pairing groups.
// The tag is purely type-level: it prevents, at compile time, a scalar
// meant for one group from weighting a point of another.
type Group interface {
	G1 | G2 | Gt
}

// Scalar is an element of the scalar field Fr, tagged by the group it
// multiplies into. All three groups share the same field of prime order
//
//	r = 0x73eda753299d7d483339d80809a1d805_53bda402fffe5bfeffffffff00000001
//
// so a given integer has the same value and the same encoding under every
// tag; see [RetagScalar].
//
// Scalars are immutable values: every operation returns a fresh scalar and
// leaves its operands untouched. The zero value is the zero scalar.
type Scalar[G Group] struct {
	v fr.Element
}

// NewScalar returns the scalar v mod r.
func NewScalar[G Group](v uint64) Scalar[G] {
	var s Scalar[G]
	s.v.SetUint64(v)
	return s
}

// ScalarFromBytes decodes a canonical 32-byte little-endian scalar.
// It returns an error if data is not exactly [ScalarBytes] long or encodes
// a value greater than or equal to r.
func ScalarFromBytes[G Group](data []byte) (Scalar[G], error) {
	if len(data) != ScalarBytes {
		return Scalar[G]{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), ScalarBytes)
	}
	var buf [ScalarBytes]byte
	copy(buf[:], data)
	v, err := fr.LittleEndian.Element(&buf)
	if err != nil {
		return Scalar[G]{}, fmt.Errorf("bls381: non-canonical scalar: %w", err)
	}
	return Scalar[G]{v: v}, nil
}

// RandomScalar returns a scalar drawn from r's full range using the given
// random source. The source is oversampled so the modular reduction bias
// is negligible.
func RandomScalar[G Group](rng io.Reader) (Scalar[G], error) {
	var buf [ScalarBytes + 16]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar[G]{}, err
	}
	var s Scalar[G]
	s.v.SetBigInt(new(big.Int).SetBytes(buf[:]))
	return s, nil
}

// hashToScalarDST domain-separates scalar hashing from every other use of
// the underlying hash-to-field construction.
var hashToScalarDST = []byte("PAIRING-BLS381-SCALAR-V01")

// HashToScalar hashes the concatenation of data to a scalar using the
// RFC 9380 hash-to-field construction over Fr.
func HashToScalar[G Group](data ...[]byte) (Scalar[G], error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	elems, err := fr.Hash(msg, hashToScalarDST, 1)
	if err != nil {
		return Scalar[G]{}, err
	}
	return Scalar[G]{v: elems[0]}, nil
}

// RetagScalar reinterprets s under another group's tag. The three groups
// share one scalar field, so the value and its encoding are unchanged.
func RetagScalar[To, From Group](s Scalar[From]) Scalar[To] {
	return Scalar[To]{v: s.v}
}

// Order returns the order r of the scalar field as a big-endian byte slice.
func Order() []byte {
	return fr.Modulus().Bytes()
}

// Add returns s + b mod r.
func (s Scalar[G]) Add(b Scalar[G]) Scalar[G] {
	var r Scalar[G]
	r.v.Add(&s.v, &b.v)
	return r
}

// Sub returns s - b mod r.
func (s Scalar[G]) Sub(b Scalar[G]) Scalar[G] {
	var r Scalar[G]
	r.v.Sub(&s.v, &b.v)
	return r
}

// Mul returns s * b mod r.
func (s Scalar[G]) Mul(b Scalar[G]) Scalar[G] {
	var r Scalar[G]
	r.v.Mul(&s.v, &b.v)
	return r
}

// Negate returns -s mod r.
func (s Scalar[G]) Negate() Scalar[G] {
	var r Scalar[G]
	r.v.Neg(&s.v)
	return r
}

// Invert returns s⁻¹ mod r. It returns [ErrNotInvertible] if s is zero,
// as zero has no multiplicative inverse.
func (s Scalar[G]) Invert() (Scalar[G], error) {
	if s.v.IsZero() {
		return Scalar[G]{}, ErrNotInvertible
	}
	var r Scalar[G]
	r.v.Inverse(&s.v)
	return r, nil
}

// Equal reports whether s and b represent the same field value.
func (s Scalar[G]) Equal(b Scalar[G]) bool {
	return s.v.Equal(&b.v)
}

// IsZero reports whether s is the zero scalar.
func (s Scalar[G]) IsZero() bool {
	return s.v.IsZero()
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar[G]) Bytes() []byte {
	var buf [ScalarBytes]byte
	fr.LittleEndian.PutElement(&buf, s.v)
	return buf[:]
}

// String returns the decimal representation of s.
func (s Scalar[G]) String() string {
	return s.v.String()
}

// bigInt returns s as a big.Int in [0, r).
func (s Scalar[G]) bigInt() *big.Int {
	return s.v.BigInt(new(big.Int))
}
