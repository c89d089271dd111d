// Package bls381 implements typed scalar and group-element arithmetic for
// the BLS12-381 pairing family.
//
// The family has three groups of shared prime order r: [G1] and [G2], the
// pairing input groups on the curve and its twist, and [Gt], the output
// group in the Fp¹² extension field. Each group gets its own element type,
// and scalars carry the group they multiply into as a type parameter:
//
//	seven := bls381.NewScalar[bls381.G1](7)
//	p := bls381.G1Generator().ScalarMul(seven)
//
// Passing a G1 point or a G1-tagged scalar where G2 is expected is a
// compile error. The tags exist only in the type system; at runtime a
// scalar is a bare field element and an element a bare point, identically
// encoded across tags (see [RetagScalar]).
//
// # Serialization
//
// Curve points encode as fixed-length little-endian coordinates with two
// reserved flag bits in the high bits of the final byte: one marking the
// point at infinity, set over all-zero coordinate bytes, and one recording
// the sign of the Y coordinate, which selects the square root omitted by
// the compressed form. There is no compression flag; the form is implied by
// the length. Compressed and uncompressed lengths are 48/96 bytes for G1
// and 96/192 for G2 (Fp² coordinates serialize c0 then c1); Gt has a
// single 576-byte form. Scalars encode as canonical 32-byte little-endian
// integers below r.
//
// Decoders validate everything: length, flag combinations, the curve
// equation, and membership in the r-order subgroup. A rejected input yields
// an error, never a silently clamped value.
//
// # Errors and panics
//
// Decoding failures and inverting the zero scalar return errors; all other
// operations are total. Passing slices of different lengths to [MultiPair],
// [G1MultiExp] or [G2MultiExp] is a caller bug and panics.
//
// # Security Considerations
//
// Field and curve arithmetic is delegated to gnark-crypto, which documents
// its own constant-time properties. This package adds no branching on
// secret values beyond the zero check in Invert.
package bls381
