// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// rules shared by several assets

func assetSchemaErrors(tx *Transaction, s *schema.Schema, asset Asset) []*fault.TransactionError {
	return schemaErrors(tx.id, ".asset", s.Validate(asset))
}

func zeroAmountErrors(tx *Transaction, message string) []*fault.TransactionError {
	if tx.amount.IsZero() {
		return nil
	}
	return []*fault.TransactionError{
		fault.NewTransactionErrorWithValues(fault.AssetKind, message, tx.id, ".amount", tx.amount.String(), "0"),
	}
}

func noRecipientErrors(tx *Transaction) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	if "" != tx.recipientID {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "RecipientId is expected to be undefined.", tx.id, ".recipientId", tx.recipientID, ""))
	}
	if "" != tx.recipientPublicKey {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "RecipientPublicKey is expected to be undefined.", tx.id, ".recipientPublicKey", tx.recipientPublicKey, ""))
	}
	return errors
}

// recipient must be present, well formed and agree with its public key
func recipientErrors(tx *Transaction, missing string) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	if "" == tx.recipientID {
		return append(errors, fault.NewTransactionError(fault.AssetKind, missing, tx.id, ".recipientId"))
	}
	if err := account.ValidateAddress(tx.recipientID); nil != err {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, err.Error(), tx.id, ".recipientId", tx.recipientID, nil))
	}
	if "" == tx.recipientPublicKey {
		return errors
	}
	address, err := cryptography.AddressFromPublicKey(tx.recipientPublicKey)
	if nil != err {
		// reported by the envelope schema
		return errors
	}
	if address != tx.recipientID {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "recipientId does not match recipientPublicKey.", tx.id, ".recipientId", tx.recipientID, address))
	}
	return errors
}

// other transactions of the same type from the same sender
func sameSenderAndType(tx *Transaction, others []*Transaction) []*Transaction {
	matched := []*Transaction{}
	for _, other := range others {
		if other.id == tx.id {
			continue
		}
		if other.typ == tx.typ && other.senderPublicKey == tx.senderPublicKey {
			matched = append(matched, other)
		}
	}
	return matched
}
