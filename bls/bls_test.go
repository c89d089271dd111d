package bls

import (
	"crypto/rand"
	"testing"
)

func TestSignVerify(t *testing.T) {
	sk, pk, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("the quick brown fox")

	sig, err := Sign(sk, msg)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ValidSignature", func(t *testing.T) {
		ok, err := Verify(pk, msg, sig)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Error("valid signature rejected")
		}
	})

	t.Run("WrongMessage", func(t *testing.T) {
		ok, err := Verify(pk, []byte("a different message"), sig)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("signature accepted for the wrong message")
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		_, otherPk, err := GenerateKey(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := Verify(otherPk, msg, sig)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("signature accepted under the wrong key")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again, err := Sign(sk, msg)
		if err != nil {
			t.Fatal(err)
		}
		if !sig.Equal(again) {
			t.Error("signing the same message twice gave different signatures")
		}
	})

	t.Run("DerivedPublicKey", func(t *testing.T) {
		if !sk.PublicKey().Equal(pk) {
			t.Error("derived public key differs from generated one")
		}
	})
}

func TestAggregation(t *testing.T) {
	const n = 4
	msg := []byte("common message")

	sks := make([]PrivateKey, n)
	pks := make([]PublicKey, n)
	sigs := make([]Signature, n)
	for i := 0; i < n; i++ {
		var err error
		sks[i], pks[i], err = GenerateKey(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		sigs[i], err = Sign(sks[i], msg)
		if err != nil {
			t.Fatal(err)
		}
	}

	agg, err := AggregateSignatures(sigs)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("CommonMessage", func(t *testing.T) {
		ok, err := VerifyAggregate(pks, msg, agg)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Error("valid aggregate rejected")
		}
	})

	t.Run("MissingSigner", func(t *testing.T) {
		partial, err := AggregateSignatures(sigs[:n-1])
		if err != nil {
			t.Fatal(err)
		}
		ok, err := VerifyAggregate(pks, msg, partial)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("aggregate missing one signer accepted")
		}
	})

	t.Run("EmptyInputsRejected", func(t *testing.T) {
		if _, err := AggregateSignatures(nil); err == nil {
			t.Error("aggregating no signatures succeeded")
		}
		if _, err := AggregatePublicKeys(nil); err == nil {
			t.Error("aggregating no public keys succeeded")
		}
	})
}

func TestVerifyBatch(t *testing.T) {
	const n = 3

	pks := make([]PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([]Signature, n)
	for i := 0; i < n; i++ {
		sk, pk, err := GenerateKey(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		pks[i] = pk
		msgs[i] = []byte{byte('a' + i)}
		sigs[i], err = Sign(sk, msgs[i])
		if err != nil {
			t.Fatal(err)
		}
	}
	agg, err := AggregateSignatures(sigs)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("DistinctMessages", func(t *testing.T) {
		ok, err := VerifyBatch(pks, msgs, agg)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Error("valid batch rejected")
		}
	})

	t.Run("SwappedMessages", func(t *testing.T) {
		swapped := [][]byte{msgs[1], msgs[0], msgs[2]}
		ok, err := VerifyBatch(pks, swapped, agg)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("batch with swapped messages accepted")
		}
	})

	t.Run("LengthMismatchErrors", func(t *testing.T) {
		if _, err := VerifyBatch(pks, msgs[:n-1], agg); err == nil {
			t.Error("mismatched batch lengths did not error")
		}
	})
}

func TestMarshal(t *testing.T) {
	sk, pk, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(sk, []byte("marshal me"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("PrivateKeyRoundtrip", func(t *testing.T) {
		restored, err := PrivateKeyFromBytes(sk.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.PublicKey().Equal(pk) {
			t.Error("private key roundtrip changed the key")
		}
	})

	t.Run("PublicKeyRoundtrip", func(t *testing.T) {
		restored, err := PublicKeyFromBytes(pk.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(pk) {
			t.Error("public key roundtrip changed the key")
		}
	})

	t.Run("SignatureRoundtrip", func(t *testing.T) {
		restored, err := SignatureFromBytes(sig.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(sig) {
			t.Error("signature roundtrip changed the signature")
		}
	})

	t.Run("RejectTruncated", func(t *testing.T) {
		if _, err := PublicKeyFromBytes(pk.Bytes()[:10]); err == nil {
			t.Error("truncated public key accepted")
		}
		if _, err := SignatureFromBytes(sig.Bytes()[:10]); err == nil {
			t.Error("truncated signature accepted")
		}
		if _, err := PrivateKeyFromBytes(sk.Bytes()[:10]); err == nil {
			t.Error("truncated private key accepted")
		}
	})

	t.Run("RejectZeroPrivateKey", func(t *testing.T) {
		if _, err := PrivateKeyFromBytes(make([]byte, 32)); err == nil {
			t.Error("zero private key accepted")
		}
	})
}
