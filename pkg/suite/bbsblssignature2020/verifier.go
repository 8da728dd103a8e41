/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbsblssignature2020

import (
	"encoding/base64"

	"github.com/hyperledger/aries-framework-go/component/models/signature/api"
	"github.com/pkg/errors"

	"github.com/manicprogrammer/bls12381-key-pair/pkg/bls12381g2"
)

// Verifier verifies BbsBlsSignature2020 proofs against a resolved public
// key.
type Verifier struct{}

// NewVerifier returns a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify will verify a signature.
func (v *Verifier) Verify(pubKeyValue *api.PublicKey, doc, signature []byte) error {
	keyPair, err := bls12381g2.FromPublicKeyBytes(pubKeyValue.Value)
	if err != nil {
		return errors.Wrap(err, "build key pair from resolved public key")
	}

	verified, err := keyPair.Verifier().Verify(parseMessages(doc),
		base64.StdEncoding.EncodeToString(signature))
	if err != nil {
		return err
	}

	if !verified {
		logger.Debugf("BBS+ signature rejected for key %s", keyPair.Fingerprint())

		return errors.New("invalid signature")
	}

	return nil
}
