package algebra

import "fmt"

// Scalar is the constraint satisfied by scalar-field element types. Scalars
// are integers modulo the prime order of the group family and act as
// exponents in scalar multiplication.
//
// All arithmetic methods use value semantics: they leave their operands
// untouched and return a fresh scalar. A scalar is safe to copy and to share
// across goroutines.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar[S any] interface {
	// Add returns the sum of the receiver and b.
	Add(b S) S
	// Sub returns the difference of the receiver and b.
	Sub(b S) S
	// Mul returns the product of the receiver and b.
	Mul(b S) S
	// Negate returns the additive inverse of the receiver.
	Negate() S
	// Invert returns the multiplicative inverse of the receiver.
	// It returns an error if the receiver is zero.
	Invert() (S, error)
	// Equal reports whether the receiver and b represent the same value.
	Equal(b S) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
}

// Element is the constraint satisfied by group element types with scalar
// type S, typically points on an elliptic curve. Elements support the group
// law, negation and scalar multiplication.
//
// Like [Scalar], all methods use value semantics.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all elements P.
type Element[S Scalar[S], E any] interface {
	// Identity returns the group's identity element. The receiver is only
	// used for dispatch and may be the zero value.
	Identity() E
	// Generator returns the group's fixed base element. The receiver is
	// only used for dispatch and may be the zero value.
	Generator() E
	// Add returns the group sum of the receiver and b.
	Add(b E) E
	// Sub returns the group difference of the receiver and b.
	Sub(b E) E
	// Negate returns the group inverse of the receiver.
	Negate() E
	// ScalarMul returns s times the receiver.
	ScalarMul(s S) E
	// Equal reports whether the receiver and b represent the same element,
	// regardless of internal representation.
	Equal(b E) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// BytesCompressed returns the canonical compressed encoding.
	BytesCompressed() []byte
	// BytesUncompressed returns the canonical uncompressed encoding.
	BytesUncompressed() []byte
}

// Additive is the subset of [Element] needed to accumulate a sum.
type Additive[E any] interface {
	Identity() E
	Add(b E) E
}

// Pairing is implemented by suites of three groups admitting a bilinear map
// from the first two into the third.
type Pairing[G1El, G2El, GtEl any] interface {
	// Pair computes the bilinear map e(p, q).
	Pair(p G1El, q G2El) GtEl
	// MultiPair computes the product of pairings ∏ e(ps[i], qs[i]).
	// It panics if the slices have different lengths.
	MultiPair(ps []G1El, qs []G2El) GtEl
}

// Sum returns the group sum of elems, or the identity element if elems is
// empty.
func Sum[E Additive[E]](elems ...E) E {
	var e E
	acc := e.Identity()
	for _, el := range elems {
		acc = acc.Add(el)
	}
	return acc
}

// SimultaneousMultiply returns the multi-scalar product
// Σ scalars[i]·points[i], or the identity element for empty inputs.
//
// It panics if the slices have different lengths: a mismatch means the
// caller has lost track of which scalar weights which point, and continuing
// would silently compute over misaligned data.
//
// This is the reference accumulate-and-add form. Implementations are free
// to offer batched alternatives (see bls381.G1MultiExp) as long as they
// agree with this sum.
func SimultaneousMultiply[S Scalar[S], E Element[S, E]](scalars []S, points []E) E {
	if len(scalars) != len(points) {
		panic(fmt.Sprintf("algebra: simultaneous multiply with %d scalars and %d points", len(scalars), len(points)))
	}
	var e E
	acc := e.Identity()
	for i := range points {
		acc = acc.Add(points[i].ScalarMul(scalars[i]))
	}
	return acc
}
