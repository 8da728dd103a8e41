/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bls12381keypair provides a BLS12-381 G2 key pair for BBS+
// multi-message signatures, intended for use with linked-data proof
// signature suites.
//
// Packages for end developer usage
//
// pkg/bls12381g2: The key pair itself: construction from base58 key material,
// seeded or random generation, multicodec/multibase public key fingerprints,
// and the Signer/Verifier capabilities.
// Reference: https://pkg.go.dev/github.com/manicprogrammer/bls12381-key-pair/pkg/bls12381g2
//
// pkg/suite/bbsblssignature2020: Signer and Verifier adapters that plug the
// key pair into the BbsBlsSignature2020 linked-data signature suite.
// Reference: https://pkg.go.dev/github.com/manicprogrammer/bls12381-key-pair/pkg/suite/bbsblssignature2020
package bls12381keypair
