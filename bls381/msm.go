package bls381

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1MultiExp computes the multi-scalar product Σ scalars[i]·points[i] in G1
// using the backend's batched multi-exponentiation. It agrees with
// [algebra.SimultaneousMultiply] on all inputs; empty inputs yield the
// identity.
//
// It panics if the slices have different lengths, under the same contract
// as [MultiPair].
func G1MultiExp(scalars []Scalar[G1], points []G1) G1 {
	if len(scalars) != len(points) {
		panic(fmt.Sprintf("bls381: multi-exponentiation with %d scalars and %d G1 points", len(scalars), len(points)))
	}
	if len(points) == 0 {
		return G1{}
	}
	aff := make([]bls12381.G1Affine, len(points))
	ws := make([]fr.Element, len(scalars))
	for i := range points {
		aff[i] = points[i].p
		ws[i] = scalars[i].v
	}
	var r G1
	if _, err := r.p.MultiExp(aff, ws, ecc.MultiExpConfig{}); err != nil {
		panic("bls381: multi-exponentiation failed: " + err.Error())
	}
	return r
}

// G2MultiExp computes the multi-scalar product Σ scalars[i]·points[i] in
// G2; see [G1MultiExp].
func G2MultiExp(scalars []Scalar[G2], points []G2) G2 {
	if len(scalars) != len(points) {
		panic(fmt.Sprintf("bls381: multi-exponentiation with %d scalars and %d G2 points", len(scalars), len(points)))
	}
	if len(points) == 0 {
		return G2{}
	}
	aff := make([]bls12381.G2Affine, len(points))
	ws := make([]fr.Element, len(scalars))
	for i := range points {
		aff[i] = points[i].p
		ws[i] = scalars[i].v
	}
	var r G2
	if _, err := r.p.MultiExp(aff, ws, ecc.MultiExpConfig{}); err != nil {
		panic("bls381: multi-exponentiation failed: " + err.Error())
	}
	return r
}
