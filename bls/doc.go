// Package bls implements BLS signatures over BLS12-381 as a consumer of
// the typed algebra in the bls381 package.
//
// It uses the minimal-pubkey variant: public keys live in G1 (48 bytes
// compressed), signatures in G2 (96 bytes), and messages are hashed to G2
// with the standard BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO ciphersuite.
// Verification is a single combined pairing check.
//
// Signatures are deterministic, and signatures over the same or distinct
// messages aggregate by group addition; see [AggregateSignatures],
// [VerifyAggregate] and [VerifyBatch].
//
// # Security Considerations
//
// Aggregation over attacker-chosen keys is subject to rogue-key attacks.
// Callers must require a proof of possession for every aggregated public
// key, or use [VerifyBatch] with distinct messages per signer. Identity
// public keys are rejected during verification.
package bls
