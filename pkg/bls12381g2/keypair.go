/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bls12381g2 implements a BLS12-381 G2 key pair for the BBS+
// multi-message signature scheme (https://mattrglobal.github.io/bbs-signatures-spec/).
// A key pair wraps raw key material, exposes base58 accessors and a
// multicodec-tagged public key fingerprint, and hands out single-operation
// Signer/Verifier capabilities backed by the bbs12381g2pub primitive.
package bls12381g2

import (
	"crypto/sha256"

	bbs "github.com/hyperledger/aries-framework-go/component/kmscrypto/crypto/primitive/bbs12381g2pub"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	// KeyType is the verification method type of this key pair.
	KeyType = "Bls12381G2Key2020"

	// PublicKeySize is the length of a compressed G2 public key point.
	PublicKeySize = 96

	// PrivateKeySize is the length of a BLS12-381 Fr scalar.
	PrivateKeySize = 32
)

// Options holds the base58-encoded key material and optional metadata used to
// construct a KeyPair. PrivateKeyBase58 may be left empty for a verify-only
// key pair.
type Options struct {
	ID               string
	Controller       string
	PublicKeyBase58  string
	PrivateKeyBase58 string
}

// GenerateOptions holds the optional metadata and seed used by Generate.
type GenerateOptions struct {
	ID         string
	Controller string

	// Seed makes generation deterministic. Leave nil to draw key material
	// from a secure random source.
	Seed []byte
}

// KeyPair holds BLS12-381 G2 key material for BBS+ signing. A key pair
// carrying only a public key is verify-only. Instances are immutable after
// construction, so a single KeyPair is safe for concurrent use.
type KeyPair struct {
	id         string
	controller string
	publicKey  []byte
	privateKey []byte
}

// New builds a KeyPair from base58-encoded key material.
func New(opts Options) (*KeyPair, error) {
	if opts.PublicKeyBase58 == "" {
		return nil, ErrMissingPublicKey
	}

	pubKey, err := base58.Decode(opts.PublicKeyBase58)
	if err != nil {
		return nil, errors.Wrap(err, "decode public key")
	}

	var privKey []byte

	if opts.PrivateKeyBase58 != "" {
		privKey, err = base58.Decode(opts.PrivateKeyBase58)
		if err != nil {
			return nil, errors.Wrap(err, "decode private key")
		}
	}

	return newKeyPair(opts.ID, opts.Controller, pubKey, privKey)
}

// Generate creates a fresh key pair using the BBS+ primitive. Generation is
// deterministic when a seed is supplied. If no ID is given and a controller
// is, the ID defaults to the controller followed by the key fingerprint as
// fragment.
func Generate(opts GenerateOptions) (*KeyPair, error) {
	pubKey, privKey, err := bbs.GenerateKeyPair(sha256.New, opts.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "generate BBS+ key pair")
	}

	pubKeyBytes, err := pubKey.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal public key")
	}

	privKeyBytes, err := privKey.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal private key")
	}

	kp, err := newKeyPair(opts.ID, opts.Controller, pubKeyBytes, privKeyBytes)
	if err != nil {
		return nil, err
	}

	if kp.id == "" && kp.controller != "" {
		kp.id = kp.controller + "#" + kp.Fingerprint()
	}

	return kp, nil
}

// FromPublicKeyBytes builds a verify-only KeyPair from a raw compressed G2
// point.
func FromPublicKeyBytes(pubKey []byte) (*KeyPair, error) {
	return newKeyPair("", "", pubKey, nil)
}

func newKeyPair(id, controller string, pubKey, privKey []byte) (*KeyPair, error) {
	if len(pubKey) == 0 {
		return nil, ErrMissingPublicKey
	}

	if len(pubKey) != PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize,
			"public key is %d bytes, want %d", len(pubKey), PublicKeySize)
	}

	// the bytes must decode as a G2 point, not merely have the right length
	if _, err := bbs.UnmarshalPublicKey(pubKey); err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}

	if privKey != nil && len(privKey) != PrivateKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize,
			"private key is %d bytes, want %d", len(privKey), PrivateKeySize)
	}

	kp := &KeyPair{
		id:         id,
		controller: controller,
		publicKey:  append([]byte(nil), pubKey...),
	}

	if privKey != nil {
		kp.privateKey = append([]byte(nil), privKey...)
	}

	return kp, nil
}

// ID returns the caller-supplied key identifier.
func (kp *KeyPair) ID() string {
	return kp.id
}

// Controller returns the caller-supplied controller.
func (kp *KeyPair) Controller() string {
	return kp.controller
}

// Type returns the verification method type, always KeyType.
func (kp *KeyPair) Type() string {
	return KeyType
}

// PublicKeyBase58 returns the base58 encoding of the public key.
func (kp *KeyPair) PublicKeyBase58() string {
	return base58.Encode(kp.publicKey)
}

// PrivateKeyBase58 returns the base58 encoding of the private key, or the
// empty string for a verify-only key pair.
func (kp *KeyPair) PrivateKeyBase58() string {
	if kp.privateKey == nil {
		return ""
	}

	return base58.Encode(kp.privateKey)
}

// PublicKeyBytes returns a copy of the raw compressed G2 point.
func (kp *KeyPair) PublicKeyBytes() []byte {
	return append([]byte(nil), kp.publicKey...)
}
