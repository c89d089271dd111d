// Package algebra defines generic constraints for typed group arithmetic
// over pairing-friendly elliptic curves.
//
// This package provides the type-level vocabulary shared by all curve
// implementations:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Element]: Elements of a group (points on an elliptic curve)
//   - [Pairing]: A suite of three groups with a bilinear map between them
//
// # Design Philosophy
//
// The constraints are generic rather than plain interfaces so that group
// membership is checked by the compiler: an element of the first pairing
// group cannot be passed where the second is expected, and a scalar tagged
// for one group cannot weight a point of another. The tags carry no runtime
// state and no runtime cost.
//
// All operations use immutable value semantics. Methods return fresh values
// and never modify their operands, so every scalar and element can be
// copied freely and shared across goroutines without synchronization:
//
//	// Compute a·P + b·Q
//	sum := p.ScalarMul(a).Add(q.ScalarMul(b))
//
// Operations that can fail on well-typed input (decoding, inverting zero)
// return errors. Mismatched-length batch inputs are a caller bug, not a
// data error, and panic instead.
//
// # Implementing a curve
//
// To add a curve family:
//
//  1. Create a scalar type satisfying [Scalar] for each group tag
//  2. Create one element type per group satisfying [Element]
//  3. Implement [Pairing] over the three element types
//
// See the bls381 package for a complete implementation over BLS12-381.
package algebra
