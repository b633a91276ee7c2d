// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Prepare - load every account that apply or undo will touch
func (tx *Transaction) Prepare(ctx context.Context, store AccountStore) error {
	selectors := append([]Selector{{Address: tx.senderID}}, tx.asset.selectors(tx)...)
	return store.Cache(ctx, selectors)
}

// Apply - debit the fee and apply the asset to account state
//
// changes are written even when errors are reported; a transaction
// that only lacks multisignatures is reported as pending
func (tx *Transaction) Apply(store AccountStore) *Response {
	sender := store.GetOrDefault(tx.senderID)
	errors := tx.verifySender(sender)

	multisignature := tx.processMultisignatures(sender)
	errors = append(errors, multisignature.Errors...)

	updated := sender.Clone()
	updated.Balance = sender.Balance.Sub(tx.fee)
	if "" == updated.PublicKey {
		updated.PublicKey = tx.senderPublicKey
	}
	store.Set(updated.Address, updated)

	errors = append(errors, tx.asset.apply(tx, store)...)

	if MultisignaturePending == multisignature.Multisignature && fault.OnlyPending(errors) {
		return newPendingResponse(tx.id, errors)
	}
	response := newResponse(tx.id, errors)
	response.Multisignature = multisignature.Multisignature
	return response
}

// Undo - credit the fee and reverse the asset
func (tx *Transaction) Undo(store AccountStore) *Response {
	sender := store.GetOrDefault(tx.senderID)

	errors := []*fault.TransactionError{}
	updated := sender.Clone()
	updated.Balance = sender.Balance.Add(tx.fee)
	if "" == updated.PublicKey {
		updated.PublicKey = tx.senderPublicKey
	}
	if updated.Balance.ExceedsMaximum() {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.BalanceKind, "Invalid balance amount", tx.id, ".balance", sender.Balance.String(), updated.Balance.String()))
	}
	store.Set(updated.Address, updated)

	errors = append(errors, tx.asset.undo(tx, store)...)
	return newResponse(tx.id, errors)
}

// checks of the sender account before any change is made
func (tx *Transaction) verifySender(sender *account.Account) []*fault.TransactionError {
	errors := []*fault.TransactionError{}

	if "" != sender.PublicKey && sender.PublicKey != tx.senderPublicKey {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.SignatureKind, "Invalid sender publicKey", tx.id, ".senderPublicKey", sender.PublicKey, tx.senderPublicKey))
	}
	if !strings.EqualFold(sender.Address, tx.senderID) {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.SignatureKind, "Invalid sender address", tx.id, ".senderId", sender.Address, tx.senderID))
	}
	if e := verifyBalance(tx.id, sender, tx.fee); nil != e {
		errors = append(errors, e)
	}
	if e := tx.verifySecondSignature(sender); nil != e {
		errors = append(errors, e)
	}
	return errors
}

// second signature rules: required exactly when the sender has registered a second key
func (tx *Transaction) verifySecondSignature(sender *account.Account) *fault.TransactionError {
	if !sender.HasSecondSignature() {
		if "" != tx.signSignature {
			return fault.NewTransactionError(fault.SignatureKind, "Sender does not have a secondPublicKey", tx.id, ".signSignature")
		}
		return nil
	}
	if "" == tx.signSignature {
		return fault.NewTransactionError(fault.SignatureKind, "Missing signSignature", tx.id, ".signSignature")
	}
	basic, err := tx.BasicBytes()
	if nil != err {
		return fault.NewTransactionError(fault.SchemaKind, err.Error(), tx.id, "")
	}
	message, err := appendSignatures(basic, tx.signature)
	if nil != err || !cryptography.VerifyData(cryptography.Hash(message), tx.signSignature, sender.SecondPublicKey) {
		return fault.NewTransactionError(fault.SignatureKind, "Failed to validate signature "+tx.signSignature, tx.id, ".signSignature")
	}
	return nil
}

// balance must cover value
func verifyBalance(id string, a *account.Account, value amount.Amount) *fault.TransactionError {
	if !a.Balance.LessThan(value) {
		return nil
	}
	return fault.NewTransactionErrorWithValues(fault.BalanceKind, insufficientBalance(a), id, ".balance", a.Balance.String(), value.String())
}

func insufficientBalance(a *account.Account) string {
	pha, err := a.Balance.PHA()
	if nil != err {
		pha = a.Balance.String()
	}
	return fmt.Sprintf("Account does not have enough PHA: %s, balance: %s", a.Address, pha)
}

// credit with an overflow check, the new value is returned even when too large
func credit(id string, a *account.Account, value amount.Amount) (amount.Amount, *fault.TransactionError) {
	balance := a.Balance.Add(value)
	if balance.ExceedsMaximum() {
		return balance, fault.NewTransactionErrorWithValues(fault.BalanceKind, "Invalid amount", id, ".amount", value.String(), amount.MaxTransactionAmount.String())
	}
	return balance, nil
}

// debit with a balance check, the new value is returned even when negative
func debit(id string, a *account.Account, value amount.Amount) (amount.Amount, *fault.TransactionError) {
	return a.Balance.Sub(value), verifyBalance(id, a, value)
}
