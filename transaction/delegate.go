// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// DelegateAsset - registers the sender as a delegate under a username
type DelegateAsset struct {
	Delegate Delegate `json:"delegate"`
}

// Delegate - the requested username
type Delegate struct {
	Username string `json:"username,omitempty"`
}

var delegateSchema = schema.MustCompile(object{
	"type":     "object",
	"required": list{"delegate"},
	"properties": object{
		"delegate": object{
			"type":     "object",
			"required": list{"username"},
			"properties": object{
				"username": object{
					"type":      "string",
					"format":    "username",
					"maxLength": schema.MaxUsernameLength,
				},
			},
		},
	},
})

// Type - delegate registration
func (a *DelegateAsset) Type() Type {
	return DelegateType
}

// Fee - fixed registration fee
func (a *DelegateAsset) Fee() amount.Amount {
	return DelegateFee
}

func (a *DelegateAsset) bytes() ([]byte, error) {
	return []byte(a.Delegate.Username), nil
}

func (a *DelegateAsset) validate(tx *Transaction) []*fault.TransactionError {
	errors := assetSchemaErrors(tx, delegateSchema, a)
	errors = append(errors, zeroAmountErrors(tx, "Amount must be zero for delegate registration transaction")...)
	return append(errors, noRecipientErrors(tx)...)
}

func (a *DelegateAsset) apply(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	sender := store.GetOrDefault(tx.senderID).Clone()

	if "" != sender.Username {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "Account is already a delegate.", tx.id, ".asset.delegate.username", sender.Username, nil))
	}
	_, taken := store.Find(func(other *account.Account) bool {
		return "" != other.Username && other.Username == a.Delegate.Username && other.Address != sender.Address
	})
	if taken {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "Username is not unique.", tx.id, ".asset.delegate.username", a.Delegate.Username, nil))
	}
	if 0 != len(errors) {
		return errors
	}

	sender.Username = a.Delegate.Username
	sender.IsDelegate = 1
	store.Set(sender.Address, sender)
	return nil
}

func (a *DelegateAsset) undo(tx *Transaction, store AccountStore) []*fault.TransactionError {
	sender := store.GetOrDefault(tx.senderID).Clone()
	sender.Username = ""
	sender.IsDelegate = 0
	store.Set(sender.Address, sender)
	return nil
}

func (a *DelegateAsset) verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	for _, other := range sameSenderAndType(tx, others) {
		errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Register delegate only allowed once per account.", other.id, ".asset.delegate"))
	}
	for _, other := range others {
		if other.id == tx.id || other.typ != DelegateType || other.senderPublicKey == tx.senderPublicKey {
			continue
		}
		if d, ok := other.asset.(*DelegateAsset); ok && d.Delegate.Username == a.Delegate.Username {
			errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Username is not unique.", other.id, ".asset.delegate.username"))
		}
	}
	return errors
}

func (a *DelegateAsset) selectors(tx *Transaction) []Selector {
	return []Selector{{Username: a.Delegate.Username}}
}

func (a *DelegateAsset) fromSync(row SyncRow) interface{} {
	username := row.text("d_username")
	if "" == username {
		return nil
	}
	return &DelegateAsset{Delegate: Delegate{Username: username}}
}
