// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Validate - check the transaction without reference to account state
//
// schema and asset rules are checked first and, if any fail, the
// signature, id, type and fee are not examined
func (tx *Transaction) Validate() *Response {
	errors := tx.validateSchema()
	errors = append(errors, tx.asset.validate(tx)...)
	if 0 != len(errors) {
		return newResponse(tx.id, errors)
	}

	basic, err := tx.BasicBytes()
	if nil != err {
		errors = append(errors, fault.NewTransactionError(fault.SchemaKind, err.Error(), tx.id, ""))
		return newResponse(tx.id, errors)
	}

	if !cryptography.VerifyData(cryptography.Hash(basic), tx.signature, tx.senderPublicKey) {
		errors = append(errors, fault.NewTransactionError(fault.SignatureKind, "Failed to validate signature "+tx.signature, tx.id, ".signature"))
	}

	full, err := appendSignatures(basic, tx.signature, tx.signSignature)
	if nil != err {
		errors = append(errors, fault.NewTransactionError(fault.SchemaKind, err.Error(), tx.id, ".signature"))
	} else if expected := cryptography.TransactionID(full); expected != tx.id {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.SignatureKind, "Invalid transaction id", tx.id, ".id", tx.id, expected))
	}

	if tx.typ != tx.asset.Type() {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.SchemaKind, "Invalid type", tx.id, ".type", tx.typ, tx.asset.Type()))
	}

	if e := tx.validateFee(); nil != e {
		errors = append(errors, e)
	}
	return newResponse(tx.id, errors)
}

// VerifyAgainstOtherTransactions - conflicts with other transactions
// of the same batch
func (tx *Transaction) VerifyAgainstOtherTransactions(others []*Transaction) *Response {
	return newResponse(tx.id, tx.asset.verifyAgainst(tx, others))
}

func (tx *Transaction) validateSchema() []*fault.TransactionError {
	violations := baseSchema.Validate(tx.JSON())
	errors := schemaErrors(tx.id, "", violations)

	for _, v := range violations {
		if ".senderPublicKey" == v.DataPath {
			return errors
		}
	}
	address, err := cryptography.AddressFromPublicKey(tx.senderPublicKey)
	if nil != err {
		return errors
	}
	if !strings.EqualFold(address, tx.senderID) {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.SignatureKind, "`senderId` does not match `senderPublicKey`", tx.id, ".senderId", address, tx.senderID))
	}
	return errors
}

func (tx *Transaction) validateFee() *fault.TransactionError {
	expected := tx.asset.Fee()
	if tx.fee.Equal(expected) {
		return nil
	}
	return fault.NewTransactionErrorWithValues(fault.FeeKind, "Fee must be equal to "+expected.String(), tx.id, ".fee", tx.fee.String(), expected.String())
}
