/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bls12381g2

import "errors"

// Errors returned by key pair construction and by the Signer/Verifier
// capabilities. Fingerprint verification does not use these: it reports
// every failure through its returned result.
var (
	// ErrMissingPublicKey is returned when a key pair is constructed without
	// public key material.
	ErrMissingPublicKey = errors.New("public key material is required")

	// ErrInvalidKeySize is returned when decoded key material is not the
	// expected length for the curve point encoding.
	ErrInvalidKeySize = errors.New("invalid key material size")

	// ErrNoSigningKey is returned by a Signer obtained from a key pair that
	// holds no private key. The condition is permanent for that capability.
	ErrNoSigningKey = errors.New("no private key material to sign with")

	// ErrNoVerificationKey is returned by a Verifier obtained from a key pair
	// that holds no public key.
	ErrNoVerificationKey = errors.New("no public key material to verify with")

	// ErrInvalidSignature is returned when signature bytes are structurally
	// invalid, as opposed to well-formed but failing verification.
	ErrInvalidSignature = errors.New("malformed BBS+ signature")
)
