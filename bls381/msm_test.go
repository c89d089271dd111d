package bls381

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/pairing/algebra"
)

func TestG1MultiExp(t *testing.T) {
	t.Run("MatchesReferenceSum", func(t *testing.T) {
		var scalars []Scalar[G1]
		var points []G1
		for i := 0; i < 8; i++ {
			s, _ := RandomScalar[G1](rand.Reader)
			p, _ := RandomScalar[G1](rand.Reader)
			scalars = append(scalars, s)
			points = append(points, G1Generator().ScalarMul(p))
		}

		want := algebra.SimultaneousMultiply(scalars, points)
		if !G1MultiExp(scalars, points).Equal(want) {
			t.Error("batched multi-exponentiation disagrees with the reference sum")
		}
	})

	t.Run("EmptyIsIdentity", func(t *testing.T) {
		if !G1MultiExp(nil, nil).IsIdentity() {
			t.Error("empty multi-exponentiation != identity")
		}
	})

	t.Run("MismatchedLengthsPanic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("mismatched lengths did not panic")
			}
		}()
		G1MultiExp(make([]Scalar[G1], 2), make([]G1, 3))
	})
}

func TestG2MultiExp(t *testing.T) {
	t.Run("MatchesReferenceSum", func(t *testing.T) {
		var scalars []Scalar[G2]
		var points []G2
		for i := 0; i < 8; i++ {
			s, _ := RandomScalar[G2](rand.Reader)
			p, _ := RandomScalar[G2](rand.Reader)
			scalars = append(scalars, s)
			points = append(points, G2Generator().ScalarMul(p))
		}

		want := algebra.SimultaneousMultiply(scalars, points)
		if !G2MultiExp(scalars, points).Equal(want) {
			t.Error("batched multi-exponentiation disagrees with the reference sum")
		}
	})

	t.Run("MismatchedLengthsPanic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("mismatched lengths did not panic")
			}
		}()
		G2MultiExp(make([]Scalar[G2], 1), nil)
	})
}
