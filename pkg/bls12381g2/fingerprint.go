/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bls12381g2

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
	"github.com/pkg/errors"
)

// multicodecG2Pub is the multicodec table entry for a BLS12-381 G2 public
// key. source: https://github.com/multiformats/multicodec/blob/master/table.csv.
const multicodecG2Pub = uint64(multicodec.Bls12_381G2Pub)

var base58btc = multibase.MustNewEncoder(multibase.Base58BTC)

// FingerprintFromPublicKey encodes a base58 public key into its fingerprint:
// the multibase base58btc encoding of the multicodec-tagged raw key,
// "z" + base58btc(varint(0xeb) | raw-key-bytes).
func FingerprintFromPublicKey(publicKeyBase58 string) (string, error) {
	pubKey, err := base58.Decode(publicKeyBase58)
	if err != nil {
		return "", errors.Wrap(err, "decode public key")
	}

	return fingerprintFromBytes(pubKey), nil
}

func fingerprintFromBytes(pubKey []byte) string {
	code := varint.ToUvarint(multicodecG2Pub)

	buf := make([]byte, 0, len(code)+len(pubKey))
	buf = append(buf, code...)
	buf = append(buf, pubKey...)

	return base58btc.Encode(buf)
}

// Fingerprint returns the fingerprint of the key pair's own public key.
func (kp *KeyPair) Fingerprint() string {
	return fingerprintFromBytes(kp.publicKey)
}

// VerifyFingerprint checks that fingerprint is well formed and encodes this
// key pair's public key. It never panics: every failure path returns
// valid == false together with an error describing the first check that
// failed, and a valid fingerprint returns (true, nil).
func (kp *KeyPair) VerifyFingerprint(fingerprint string) (bool, error) {
	if !strings.HasPrefix(fingerprint, "z") {
		return false, fmt.Errorf("fingerprint is not multibase base58btc encoded (no leading 'z'): %q", fingerprint)
	}

	_, payload, err := multibase.Decode(fingerprint)
	if err != nil {
		return false, fmt.Errorf("decode fingerprint: %w", err)
	}

	code, n, err := varint.FromUvarint(payload)
	if err != nil {
		return false, fmt.Errorf("decode multicodec header: %w", err)
	}

	if code != multicodecG2Pub {
		return false, fmt.Errorf("fingerprint carries multicodec code 0x%x, want 0x%x", code, multicodecG2Pub)
	}

	if !bytes.Equal(payload[n:], kp.publicKey) {
		return false, fmt.Errorf("fingerprint does not match public key")
	}

	return true, nil
}

// FromFingerprint builds a verify-only KeyPair from a public key fingerprint.
func FromFingerprint(fingerprint string) (*KeyPair, error) {
	if !strings.HasPrefix(fingerprint, "z") {
		return nil, errors.Errorf("not a base58btc multibase fingerprint: %q", fingerprint)
	}

	_, payload, err := multibase.Decode(fingerprint)
	if err != nil {
		return nil, errors.Wrap(err, "decode fingerprint")
	}

	code, n, err := varint.FromUvarint(payload)
	if err != nil {
		return nil, errors.Wrap(err, "decode multicodec header")
	}

	if code != multicodecG2Pub {
		return nil, errors.Errorf("unsupported key multicodec code 0x%x", code)
	}

	return FromPublicKeyBytes(payload[n:])
}

// DIDKey returns the did:key DID and verification method ID derived from the
// public key fingerprint, as per the did:key format spec found at:
// https://w3c-ccg.github.io/did-method-key/#format.
func (kp *KeyPair) DIDKey() (string, string) {
	fingerprint := kp.Fingerprint()
	didKey := fmt.Sprintf("did:key:%s", fingerprint)

	return didKey, fmt.Sprintf("%s#%s", didKey, fingerprint)
}
