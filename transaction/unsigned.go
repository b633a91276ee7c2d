// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Unsigned - a transaction under construction
//
// SenderID and SenderPublicKey are optional; when set they must match
// the identity of the signing passphrase
type Unsigned struct {
	Timestamp          int64
	SenderID           string
	SenderPublicKey    string
	RecipientID        string
	RecipientPublicKey string
	Amount             amount.Amount
	Fee                amount.Amount
	Asset              Asset
}

// Sign - sign with a passphrase and an optional second passphrase
//
// the signature covers the basic bytes, the second signature covers
// the basic bytes followed by the signature and the id is derived
// from all of them
func (u *Unsigned) Sign(passphrase string, secondPassphrase string) (*Transaction, error) {
	if "" == passphrase {
		return nil, fault.ErrMissingPassphrase
	}
	if nil == u.Asset {
		return nil, fault.ErrInvalidAsset
	}

	keyPair := cryptography.KeysFromPassphrase(passphrase)
	address := keyPair.Address()
	publicKey := keyPair.PublicKeyHex()

	if "" != u.SenderID && u.SenderID != address {
		return nil, fault.ErrSenderIdMismatch
	}
	if "" != u.SenderPublicKey && u.SenderPublicKey != publicKey {
		return nil, fault.ErrSenderPublicKeyMismatch
	}

	// a second signature registration is signed by the first key only
	if SecondSignatureType == u.Asset.Type() {
		secondPassphrase = ""
	}

	// votes are addressed to the voter
	recipientID := u.RecipientID
	if VoteType == u.Asset.Type() && "" == recipientID {
		recipientID = address
	}

	e := envelope{
		typ:             u.Asset.Type(),
		timestamp:       u.Timestamp,
		senderPublicKey: publicKey,
		recipientID:     recipientID,
		amount:          u.Amount,
		asset:           u.Asset,
	}
	basic, err := e.pack()
	if nil != err {
		return nil, err
	}

	signature := cryptography.SignDataWithPrivateKey(cryptography.Hash(basic), keyPair.PrivateKey)
	message, err := appendSignatures(basic, signature)
	if nil != err {
		return nil, err
	}

	signSignature := ""
	if "" != secondPassphrase {
		signSignature = cryptography.SignData(cryptography.Hash(message), secondPassphrase)
		message, err = appendSignatures(message, signSignature)
		if nil != err {
			return nil, err
		}
	}

	tx := &Transaction{
		id:                 cryptography.TransactionID(message),
		typ:                u.Asset.Type(),
		timestamp:          u.Timestamp,
		senderPublicKey:    publicKey,
		senderID:           address,
		recipientID:        recipientID,
		recipientPublicKey: u.RecipientPublicKey,
		amount:             u.Amount,
		fee:                u.Fee,
		signature:          signature,
		signSignature:      signSignature,
		signatures:         []string{},
		asset:              u.Asset,
	}
	return tx, nil
}
