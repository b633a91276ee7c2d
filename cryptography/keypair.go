// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptography

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/phaetonhq/phaeton-transactions/fault"
)

// sizes of binary values
const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// Hash - SHA-256 digest
func Hash(data []byte) []byte {
	digest := sha256.Sum256(data)
	return digest[:]
}

// KeysFromPassphrase - deterministic key pair for a passphrase
func KeysFromPassphrase(passphrase string) *KeyPair {
	seed := Hash([]byte(passphrase))
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}
}

// PublicKeyHex - hex encoded public key
func (keyPair *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(keyPair.PublicKey)
}

// Address - address derived from the public key
func (keyPair *KeyPair) Address() string {
	return AddressFromPublicKeyBytes(keyPair.PublicKey)
}

// AddressAndPublicKeyFromPassphrase - convenience for signing
func AddressAndPublicKeyFromPassphrase(passphrase string) (string, string) {
	keyPair := KeysFromPassphrase(passphrase)
	return keyPair.Address(), keyPair.PublicKeyHex()
}

// HexToBytes - decode hex, rejecting odd lengths and non hex characters
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return b, nil
}

// PublicKeyFromHex - decode and check the length of a public key
func PublicKeyFromHex(publicKey string) (ed25519.PublicKey, error) {
	b, err := HexToBytes(publicKey)
	if nil != err {
		return nil, err
	}
	if PublicKeySize != len(b) {
		return nil, fault.ErrInvalidPublicKey
	}
	return ed25519.PublicKey(b), nil
}

// ValidatePublicKey - error if not a 32 byte hex value
func ValidatePublicKey(publicKey string) error {
	_, err := PublicKeyFromHex(publicKey)
	return err
}
