// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptography

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
)

// SignData - hex signature of data using keys derived from passphrase
func SignData(data []byte, passphrase string) string {
	return SignDataWithPrivateKey(data, KeysFromPassphrase(passphrase).PrivateKey)
}

// SignDataWithPrivateKey - hex signature of data
func SignDataWithPrivateKey(data []byte, privateKey ed25519.PrivateKey) string {
	return hex.EncodeToString(ed25519.Sign(privateKey, data))
}

// VerifyData - check a hex signature against a hex public key
//
// malformed keys or signatures simply fail verification
func VerifyData(data []byte, signature string, publicKey string) bool {
	key, err := PublicKeyFromHex(publicKey)
	if nil != err {
		return false
	}
	sig, err := HexToBytes(signature)
	if nil != err || SignatureSize != len(sig) {
		return false
	}
	return ed25519.Verify(key, data, sig)
}
