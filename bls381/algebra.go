package bls381

import "github.com/f3rmion/pairing/algebra"

// The bls381 types satisfy the generic algebra constraints, so generic
// helpers such as [algebra.SimultaneousMultiply] and [algebra.Sum] work
// with them directly.
var (
	_ algebra.Scalar[Scalar[G1]] = Scalar[G1]{}
	_ algebra.Scalar[Scalar[G2]] = Scalar[G2]{}
	_ algebra.Scalar[Scalar[Gt]] = Scalar[Gt]{}

	_ algebra.Element[Scalar[G1], G1] = G1{}
	_ algebra.Element[Scalar[G2], G2] = G2{}
	_ algebra.Element[Scalar[Gt], Gt] = Gt{}
)
