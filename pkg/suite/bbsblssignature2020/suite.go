/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbsblssignature2020 adapts a bls12381g2 key pair to the
// BbsBlsSignature2020 signature suite
// (https://w3c-ccg.github.io/ldp-bbs2020) of the Linked Data Proofs
// framework. The framework owns document canonicalization; the adapters here
// receive the canonicalized document as newline-delimited statements and
// sign/verify each statement as a discrete BBS+ message.
package bbsblssignature2020

import (
	"strings"

	"github.com/hyperledger/aries-framework-go/component/log"
)

// SignatureType is the BbsBlsSignature2020 proof type string.
const SignatureType = "BbsBlsSignature2020"

var logger = log.New("bls12381-key-pair/suite")

// parseMessages splits a canonicalized document into the discrete statements
// covered by a BBS+ signature, one per non-empty line.
func parseMessages(doc []byte) []string {
	lines := strings.Split(string(doc), "\n")
	messages := make([]string, 0, len(lines))

	for i := range lines {
		if lines[i] != "" {
			messages = append(messages, lines[i])
		}
	}

	return messages
}
