// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

const (
	passphrase = "wagon stock borrow episode laundry kitten salute link globe zero feed marble"
	publicKey  = "c094ebee7ec0c50ebee32918655e089f6e1a604b83bcaa760293c61e0f18ab6f"
	address    = "16313739661670634666P"

	// signature of SHA-256("hello phaeton")
	helloSignature = "2fdc56b603be218aa48cadc70738e69f6f763bd2b3d7da0ba6e7ccc3bcac796a6018928cd274bc2c352d2f9ce8b640132fd65b88feeb2fe6b1c6d9825cf56a09"
)

func TestKeysFromPassphrase(t *testing.T) {
	keyPair := cryptography.KeysFromPassphrase(passphrase)
	assert.Equal(t, publicKey, keyPair.PublicKeyHex(), "wrong public key")
	assert.Equal(t, address, keyPair.Address(), "wrong address")

	a, pk := cryptography.AddressAndPublicKeyFromPassphrase(passphrase)
	assert.Equal(t, address, a, "wrong address")
	assert.Equal(t, publicKey, pk, "wrong public key")
}

func TestAddressFromPublicKey(t *testing.T) {
	a, err := cryptography.AddressFromPublicKey(publicKey)
	assert.Nil(t, err, "valid key")
	assert.Equal(t, address, a, "wrong address")

	_, err = cryptography.AddressFromPublicKey("c094ebee")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short key")

	_, err = cryptography.AddressFromPublicKey("zz")
	assert.Equal(t, fault.ErrInvalidHex, err, "not hex")
}

func TestSignAndVerify(t *testing.T) {
	digest := cryptography.Hash([]byte("hello phaeton"))

	signature := cryptography.SignData(digest, passphrase)
	assert.Equal(t, helloSignature, signature, "ed25519 signatures are deterministic")
	assert.True(t, cryptography.VerifyData(digest, signature, publicKey), "signature should verify")

	other := cryptography.Hash([]byte("hello phaeton!"))
	assert.False(t, cryptography.VerifyData(other, signature, publicKey), "wrong data")
	assert.False(t, cryptography.VerifyData(digest, signature[:64], publicKey), "short signature")
	assert.False(t, cryptography.VerifyData(digest, signature, "00"), "short key")
	assert.False(t, cryptography.VerifyData(digest, "xyz", publicKey), "not hex")
}

func TestTransactionID(t *testing.T) {
	assert.Equal(t, "11724033119285884701", cryptography.TransactionID([]byte("hello phaeton")), "wrong id")
}

func TestValidatePublicKey(t *testing.T) {
	assert.Nil(t, cryptography.ValidatePublicKey(publicKey), "valid key")
	assert.Equal(t, fault.ErrInvalidPublicKey, cryptography.ValidatePublicKey(publicKey+"00"), "long key")
	assert.Equal(t, fault.ErrInvalidHex, cryptography.ValidatePublicKey(publicKey[1:]), "odd length")
}
