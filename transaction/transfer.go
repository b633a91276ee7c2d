// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// TransferAsset - optional free text carried by a transfer
type TransferAsset struct {
	Data string `json:"data,omitempty"`
}

var transferSchema = schema.MustCompile(object{
	"type": "object",
	"properties": object{
		"data": object{
			"type":      "string",
			"format":    "transferData",
			"maxLength": schema.MaxTransferDataLength,
		},
	},
})

// Type - transfer
func (a *TransferAsset) Type() Type {
	return TransferType
}

// Fee - fixed transfer fee
func (a *TransferAsset) Fee() amount.Amount {
	return TransferFee
}

func (a *TransferAsset) bytes() ([]byte, error) {
	return []byte(a.Data), nil
}

func (a *TransferAsset) validate(tx *Transaction) []*fault.TransactionError {
	errors := assetSchemaErrors(tx, transferSchema, a)
	if tx.amount.IsZero() || tx.amount.ExceedsMaximum() {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "Amount must be a valid number in string format.", tx.id, ".amount", tx.amount.String(), nil))
	}
	return append(errors, recipientErrors(tx, "`recipientId` must be provided.")...)
}

func (a *TransferAsset) apply(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}

	sender := store.GetOrDefault(tx.senderID).Clone()
	balance, e := debit(tx.id, sender, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}
	sender.Balance = balance
	store.Set(sender.Address, sender)

	recipient := store.GetOrDefault(tx.recipientID).Clone()
	balance, e = credit(tx.id, recipient, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}
	recipient.Balance = balance
	store.Set(recipient.Address, recipient)

	return errors
}

func (a *TransferAsset) undo(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}

	sender := store.GetOrDefault(tx.senderID).Clone()
	balance, e := credit(tx.id, sender, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}
	sender.Balance = balance
	store.Set(sender.Address, sender)

	recipient := store.GetOrDefault(tx.recipientID).Clone()
	balance, e = debit(tx.id, recipient, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}
	recipient.Balance = balance
	store.Set(recipient.Address, recipient)

	return errors
}

func (a *TransferAsset) verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError {
	return nil
}

func (a *TransferAsset) selectors(tx *Transaction) []Selector {
	return []Selector{{Address: tx.recipientID}}
}

func (a *TransferAsset) fromSync(row SyncRow) interface{} {
	data := row.text("tf_data")
	if "" == data {
		return nil
	}
	return &TransferAsset{Data: data}
}
