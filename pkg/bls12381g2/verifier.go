/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bls12381g2

import (
	"encoding/base64"

	bbs "github.com/hyperledger/aries-framework-go/component/kmscrypto/crypto/primitive/bbs12381g2pub"
	"github.com/pkg/errors"
)

// signatureSize is the length of a BBS+ signature: a compressed G1 point
// followed by two Fr scalars (48 + 32 + 32).
const signatureSize = 112

// sigVerificationFailed is the bbs12381g2pub result for a well-formed
// signature that does not verify. Anything else the primitive returns is a
// structural failure.
const sigVerificationFailed = "invalid BLS12-381 signature"

// Verifier checks a BBS+ signature against an ordered sequence of
// statements. The statements must match what was signed in count and order.
type Verifier interface {
	// Verify reports whether signatureBase64 is a valid signature over
	// messages. A well-formed signature that does not verify yields
	// (false, nil); structurally invalid input yields an error.
	Verify(messages []string, signatureBase64 string) (bool, error)
}

// Verifier returns the verification capability bound to this key pair.
func (kp *KeyPair) Verifier() Verifier {
	if len(kp.publicKey) == 0 {
		return unusableVerifier{}
	}

	return &bbsVerifier{
		publicKey: kp.publicKey,
		bbs:       bbs.New(),
	}
}

type bbsVerifier struct {
	publicKey []byte
	bbs       *bbs.BBSG2Pub
}

func (v *bbsVerifier) Verify(messages []string, signatureBase64 string) (bool, error) {
	signature, err := base64.StdEncoding.DecodeString(signatureBase64)
	if err != nil {
		return false, errors.Wrap(err, "decode signature")
	}

	if len(signature) != signatureSize {
		return false, errors.Wrapf(ErrInvalidSignature,
			"signature is %d bytes, want %d", len(signature), signatureSize)
	}

	err = v.bbs.Verify(messagesBytes(messages), signature, v.publicKey)

	switch {
	case err == nil:
		return true, nil
	case err.Error() == sigVerificationFailed:
		return false, nil
	default:
		return false, errors.Wrap(ErrInvalidSignature, err.Error())
	}
}

type unusableVerifier struct{}

func (unusableVerifier) Verify([]string, string) (bool, error) {
	return false, ErrNoVerificationKey
}
