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

// Signer signs an ordered sequence of statements under a single BBS+
// signature. A single statement is a one-element sequence. The statement
// order is part of what is signed.
type Signer interface {
	// Sign signs messages and returns the signature as standard base64 text.
	Sign(messages []string) (string, error)
}

// Signer returns the signing capability bound to this key pair. A key pair
// holding no private key yields a capability that permanently fails with
// ErrNoSigningKey, regardless of input.
func (kp *KeyPair) Signer() Signer {
	if kp.privateKey == nil {
		return unusableSigner{}
	}

	return &bbsSigner{
		privateKey: kp.privateKey,
		bbs:        bbs.New(),
	}
}

type bbsSigner struct {
	privateKey []byte
	bbs        *bbs.BBSG2Pub
}

func (s *bbsSigner) Sign(messages []string) (string, error) {
	signature, err := s.bbs.Sign(messagesBytes(messages), s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "sign messages")
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// unusableSigner is handed out by key pairs that cannot sign. The failure is
// fixed at the time Signer() was called, not re-checked per operation.
type unusableSigner struct{}

func (unusableSigner) Sign([]string) (string, error) {
	return "", ErrNoSigningKey
}

func messagesBytes(messages []string) [][]byte {
	out := make([][]byte, len(messages))

	for i := range messages {
		out[i] = []byte(messages[i])
	}

	return out
}
