/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbsblssignature2020

import (
	"encoding/base64"

	"github.com/pkg/errors"

	"github.com/manicprogrammer/bls12381-key-pair/pkg/bls12381g2"
)

// Signer signs canonicalized documents using the key pair's BBS+ signing
// capability. The capability is bound when the Signer is created: a
// verify-only key pair yields a Signer whose Sign always fails with
// bls12381g2.ErrNoSigningKey.
type Signer struct {
	signer bls12381g2.Signer
}

// NewSigner returns a Signer bound to kp.
func NewSigner(kp *bls12381g2.KeyPair) *Signer {
	return &Signer{signer: kp.Signer()}
}

// Sign signs the document and returns the raw signature bytes.
func (s *Signer) Sign(doc []byte) ([]byte, error) {
	signatureB64, err := s.signer.Sign(parseMessages(doc))
	if err != nil {
		return nil, err
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return nil, errors.Wrap(err, "decode signature")
	}

	return signature, nil
}

// Alg returns the signature suite algorithm identifier.
func (s *Signer) Alg() string {
	return SignatureType
}
