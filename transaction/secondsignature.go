// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// SecondSignatureAsset - registers a second public key for the sender
type SecondSignatureAsset struct {
	Signature SecondSignature `json:"signature"`
}

// SecondSignature - the key being registered
type SecondSignature struct {
	TransactionID string `json:"transactionId,omitempty"`
	PublicKey     string `json:"publicKey,omitempty"`
}

var secondSignatureSchema = schema.MustCompile(object{
	"type":     "object",
	"required": list{"signature"},
	"properties": object{
		"signature": object{
			"type":     "object",
			"required": list{"publicKey"},
			"properties": object{
				"publicKey": object{"type": "string", "format": "publicKey"},
			},
		},
	},
})

// Type - second signature registration
func (a *SecondSignatureAsset) Type() Type {
	return SecondSignatureType
}

// Fee - fixed registration fee
func (a *SecondSignatureAsset) Fee() amount.Amount {
	return SecondSignatureFee
}

func (a *SecondSignatureAsset) bytes() ([]byte, error) {
	return cryptography.HexToBytes(a.Signature.PublicKey)
}

func (a *SecondSignatureAsset) validate(tx *Transaction) []*fault.TransactionError {
	errors := assetSchemaErrors(tx, secondSignatureSchema, a)
	errors = append(errors, zeroAmountErrors(tx, "Amount must be zero for second signature registration transaction")...)
	return append(errors, noRecipientErrors(tx)...)
}

// an existing second public key is never replaced
func (a *SecondSignatureAsset) apply(tx *Transaction, store AccountStore) []*fault.TransactionError {
	sender := store.GetOrDefault(tx.senderID).Clone()
	if sender.HasSecondSignature() {
		return []*fault.TransactionError{
			fault.NewTransactionErrorWithValues(fault.AssetKind, "Register second signature only allowed once per account.", tx.id, ".secondPublicKey", sender.SecondPublicKey, nil),
		}
	}
	sender.SecondPublicKey = a.Signature.PublicKey
	sender.SecondSignature = 1
	store.Set(sender.Address, sender)
	return nil
}

func (a *SecondSignatureAsset) undo(tx *Transaction, store AccountStore) []*fault.TransactionError {
	sender := store.GetOrDefault(tx.senderID).Clone()
	sender.SecondPublicKey = ""
	sender.SecondSignature = 0
	store.Set(sender.Address, sender)
	return nil
}

func (a *SecondSignatureAsset) verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	for _, other := range sameSenderAndType(tx, others) {
		errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Register second signature only allowed once per account.", other.id, ".asset.signature"))
	}
	return errors
}

func (a *SecondSignatureAsset) selectors(tx *Transaction) []Selector {
	return nil
}

func (a *SecondSignatureAsset) fromSync(row SyncRow) interface{} {
	publicKey := row.text("s_publicKey")
	if "" == publicKey {
		return nil
	}
	return &SecondSignatureAsset{
		Signature: SecondSignature{
			TransactionID: row.text("t_id"),
			PublicKey:     publicKey,
		},
	}
}
