/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bls12381g2

import (
	"strings"
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
	"github.com/stretchr/testify/require"
)

//nolint:lll
const (
	bbsPubKeyBase58 = "25EEkQtcLKsEzQ6JTo9cg4W7NHpaurn4Wg6LaNPFq6JQXnrP91SDviUz7KrJVMJd76CtAZFsRLYzvgX2JGxo2ccUHtuHk7ELCWwrkBDfrXCFVfqJKDootee9iVaF6NpdJtBE"
	bbsFingerprint  = "zUC7K4ndUaGZgV7Cp2yJy6JtMoUHY6u7tkcSYUvPrEidqBmLCTLmi6d5WvwnUqejscAkERJ3bfjEiSYtdPkRSE8kSa11hFBr4sTgnbZ95SJj19PN2jdvJjyzpSZgxkyyxNnBNnY"
)

func TestFingerprintFromPublicKey(t *testing.T) {
	t.Run("frozen vector", func(t *testing.T) {
		fingerprint, err := FingerprintFromPublicKey(bbsPubKeyBase58)
		require.NoError(t, err)
		require.Equal(t, bbsFingerprint, fingerprint)
		require.True(t, strings.HasPrefix(fingerprint, "zUC7"))
	})

	t.Run("invalid base58", func(t *testing.T) {
		_, err := FingerprintFromPublicKey("0OIl")
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode public key")
	})
}

func TestKeyPair_Fingerprint(t *testing.T) {
	kp, err := New(Options{PublicKeyBase58: bbsPubKeyBase58})
	require.NoError(t, err)

	require.Equal(t, bbsFingerprint, kp.Fingerprint())
}

func TestKeyPair_VerifyFingerprint(t *testing.T) {
	kp, err := New(Options{PublicKeyBase58: bbsPubKeyBase58})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		valid, err := kp.VerifyFingerprint(bbsFingerprint)
		require.NoError(t, err)
		require.True(t, valid)
	})

	t.Run("round trip for generated key", func(t *testing.T) {
		generated, err := Generate(GenerateOptions{})
		require.NoError(t, err)

		valid, err := generated.VerifyFingerprint(generated.Fingerprint())
		require.NoError(t, err)
		require.True(t, valid)
	})

	t.Run("missing multibase prefix", func(t *testing.T) {
		for _, fingerprint := range []string{"", bbsFingerprint[1:], "uAAAA"} {
			valid, err := kp.VerifyFingerprint(fingerprint)
			require.False(t, valid)
			require.Error(t, err)
			require.Contains(t, err.Error(), "leading 'z'")
		}
	})

	t.Run("payload is not base58", func(t *testing.T) {
		valid, err := kp.VerifyFingerprint("z!!!not-base58!!!")
		require.False(t, valid)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode fingerprint")
	})

	t.Run("empty payload", func(t *testing.T) {
		valid, err := kp.VerifyFingerprint("z")
		require.False(t, valid)
		require.Error(t, err)
	})

	t.Run("wrong multicodec tag", func(t *testing.T) {
		// same key bytes tagged as an Ed25519 public key (0xed)
		tagged := append(varint.ToUvarint(0xed), kp.PublicKeyBytes()...)

		valid, err := kp.VerifyFingerprint(base58btc.Encode(tagged))
		require.False(t, valid)
		require.Error(t, err)
		require.Contains(t, err.Error(), "multicodec code 0xed")
	})

	t.Run("tampered key bytes", func(t *testing.T) {
		_, payload, err := multibase.Decode(bbsFingerprint)
		require.NoError(t, err)

		// flip single bytes after the two-byte multicodec tag
		for _, i := range []int{2, 50, len(payload) - 1} {
			tampered := append([]byte(nil), payload...)
			tampered[i] ^= 0x01

			valid, err := kp.VerifyFingerprint(base58btc.Encode(tampered))
			require.False(t, valid)
			require.Error(t, err)
			require.Contains(t, err.Error(), "does not match")
		}
	})

	t.Run("another key's fingerprint", func(t *testing.T) {
		other, err := Generate(GenerateOptions{})
		require.NoError(t, err)

		valid, err := kp.VerifyFingerprint(other.Fingerprint())
		require.False(t, valid)
		require.Error(t, err)
	})
}

func TestFromFingerprint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		kp, err := FromFingerprint(bbsFingerprint)
		require.NoError(t, err)
		require.Equal(t, bbsPubKeyBase58, kp.PublicKeyBase58())

		// recovered key pair is verify-only
		_, err = kp.Signer().Sign([]string{"message"})
		require.ErrorIs(t, err, ErrNoSigningKey)
	})

	t.Run("not multibase", func(t *testing.T) {
		_, err := FromFingerprint("abc")
		require.Error(t, err)
	})

	t.Run("unsupported multicodec code", func(t *testing.T) {
		edTagged := base58btc.Encode(append(varint.ToUvarint(0xed), make([]byte, 32)...))

		_, err := FromFingerprint(edTagged)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported key multicodec code")
	})
}

func TestKeyPair_DIDKey(t *testing.T) {
	kp, err := New(Options{PublicKeyBase58: bbsPubKeyBase58})
	require.NoError(t, err)

	didKey, keyID := kp.DIDKey()
	require.Equal(t, "did:key:"+bbsFingerprint, didKey)
	require.Equal(t, "did:key:"+bbsFingerprint+"#"+bbsFingerprint, keyID)
}
