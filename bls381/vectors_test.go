package bls381

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixed vectors in the little-endian wire serialization, cross-checked
// against other implementations of the format.

func TestScalarVectors(t *testing.T) {
	t.Run("SevenLittleEndian", func(t *testing.T) {
		want := make([]byte, ScalarBytes)
		want[0] = 7
		require.Equal(t, want, NewScalar[G1](7).Bytes())

		decoded, err := ScalarFromBytes[G1](want)
		require.NoError(t, err)
		require.True(t, decoded.Equal(NewScalar[G1](7)))
	})

	t.Run("MinusSeven", func(t *testing.T) {
		// r - 7, little-endian
		want := "faffffff" + "feffffff" + "fe5bfeff" + "02a4bd53" +
			"05d8a109" + "08d83933" + "487d9d29" + "53a7ed73"
		got := hex.EncodeToString(NewScalar[G1](7).Negate().Bytes())
		require.Equal(t, want, got)
	})
}

func TestG1Vectors(t *testing.T) {
	t.Run("SevenTimesGenerator", func(t *testing.T) {
		want := "b7fc7e62705aef542dbcc5d4bce62a7bf22eef1691bef30dac121fb200ca7dc9" +
			"a4403b90da4501cfee1935b9bef32899"
		p := G1Generator().ScalarMul(NewScalar[G1](7))
		require.Equal(t, want, hex.EncodeToString(p.BytesCompressed()))
	})

	t.Run("IdentityCompressed", func(t *testing.T) {
		got := G1Identity().BytesCompressed()
		require.Len(t, got, G1BytesCompressed)
		// the infinity flag on the final byte, every other bit zero
		for i, b := range got[:G1BytesCompressed-1] {
			require.Zerof(t, b, "byte %d nonzero", i)
		}
		require.Equal(t, byte(0x40), got[G1BytesCompressed-1])

		decoded, err := G1FromCompressed(got)
		require.NoError(t, err)
		require.True(t, decoded.IsIdentity())
	})

	t.Run("IdentityUncompressed", func(t *testing.T) {
		got := G1Identity().BytesUncompressed()
		require.Len(t, got, G1BytesUncompressed)
		for i, b := range got[:G1BytesUncompressed-1] {
			require.Zerof(t, b, "byte %d nonzero", i)
		}
		require.Equal(t, byte(0x40), got[G1BytesUncompressed-1])

		decoded, err := G1FromUncompressed(got)
		require.NoError(t, err)
		require.True(t, decoded.IsIdentity())
	})

	t.Run("GeneratorRoundtrip", func(t *testing.T) {
		decoded, err := G1FromCompressed(G1Generator().BytesCompressed())
		require.NoError(t, err)
		require.True(t, decoded.Equal(G1Generator()))
	})
}

func TestG2IdentityVectors(t *testing.T) {
	t.Run("Compressed", func(t *testing.T) {
		got := G2Identity().BytesCompressed()
		require.Len(t, got, G2BytesCompressed)
		for i, b := range got[:G2BytesCompressed-1] {
			require.Zerof(t, b, "byte %d nonzero", i)
		}
		require.Equal(t, byte(0x40), got[G2BytesCompressed-1])

		decoded, err := G2FromCompressed(got)
		require.NoError(t, err)
		require.True(t, decoded.IsIdentity())
	})

	t.Run("Uncompressed", func(t *testing.T) {
		got := G2Identity().BytesUncompressed()
		require.Len(t, got, G2BytesUncompressed)
		require.Equal(t, byte(0x40), got[G2BytesUncompressed-1])

		decoded, err := G2FromUncompressed(got)
		require.NoError(t, err)
		require.True(t, decoded.IsIdentity())
	})
}

func TestEncodingLengths(t *testing.T) {
	require.Equal(t, 32, ScalarBytes)
	require.Equal(t, 48, G1BytesCompressed)
	require.Equal(t, 96, G1BytesUncompressed)
	require.Equal(t, 96, G2BytesCompressed)
	require.Equal(t, 192, G2BytesUncompressed)
	require.Equal(t, 576, GtBytes)
}
