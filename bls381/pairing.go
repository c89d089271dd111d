package bls381

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/pairing/algebra"
)

// Pair computes the bilinear map e(p, q). For all scalars a and b,
//
//	Pair(p.ScalarMul(a), q.ScalarMul(b)) == Pair(p, q).ScalarMul(a·b)
//
// and pairing with either identity yields the Gt identity.
func Pair(p G1, q G2) Gt {
	e, err := bls12381.Pair([]bls12381.G1Affine{p.p}, []bls12381.G2Affine{q.p})
	if err != nil {
		// the backend only fails on mismatched slice lengths, which a
		// single pair cannot produce
		panic("bls381: pairing failed: " + err.Error())
	}
	return Gt{v: e}
}

// MultiPair computes the combined pairing ∏ e(ps[i], qs[i]), the Gt sum of
// the pairwise pairings. Empty inputs yield the Gt identity.
//
// It panics if the slices have different lengths: a mismatch means the
// caller has lost track of which points pair together, and continuing would
// silently compute over misaligned data.
func MultiPair(ps []G1, qs []G2) Gt {
	if len(ps) != len(qs) {
		panic(fmt.Sprintf("bls381: multi-pairing with %d G1 points and %d G2 points", len(ps), len(qs)))
	}
	if len(ps) == 0 {
		return GtIdentity()
	}
	aff1 := make([]bls12381.G1Affine, len(ps))
	aff2 := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		aff1[i] = ps[i].p
		aff2[i] = qs[i].p
	}
	e, err := bls12381.Pair(aff1, aff2)
	if err != nil {
		panic("bls381: pairing failed: " + err.Error())
	}
	return Gt{v: e}
}

// Suite bundles the pairing operations of the curve behind
// [algebra.Pairing] for callers generic over pairing families.
type Suite struct{}

// Pair computes the bilinear map; see [Pair].
func (Suite) Pair(p G1, q G2) Gt {
	return Pair(p, q)
}

// MultiPair computes the combined pairing; see [MultiPair].
func (Suite) MultiPair(ps []G1, qs []G2) Gt {
	return MultiPair(ps, qs)
}

var _ algebra.Pairing[G1, G2, Gt] = Suite{}
