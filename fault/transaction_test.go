// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phaetonhq/phaeton-transactions/fault"
)

func TestTransactionErrorText(t *testing.T) {
	e := fault.NewTransactionErrorWithValues(fault.FeeKind, "Fee must be equal to 10000000", "1", ".fee", "5", "10000000")
	assert.Equal(t, "FeeError: Fee must be equal to 10000000 [.fee] actual: 5 expected: 10000000", e.Error(), "wrong text")

	e = fault.NewTransactionError(fault.SignatureKind, "Missing signSignature", "1", "")
	assert.Equal(t, "SignatureError: Missing signSignature", e.Error(), "wrong text")
}

func TestTransactionErrorJSON(t *testing.T) {
	e := fault.NewTransactionError(fault.AssetKind, "X is not a delegate.", "17", ".asset.votes")

	buffer, err := json.Marshal(e)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"kind":"SemanticAssetError","message":"X is not a delegate.","id":"17","dataPath":".asset.votes"}`, string(buffer), "wrong JSON")
}

func TestPending(t *testing.T) {
	pending := fault.NewTransactionError(fault.PendingKind, "Missing signatures", "1", ".signatures")
	failure := fault.NewTransactionError(fault.MultisignatureKind, "Encountered duplicate signature in transaction", "1", ".signatures")

	assert.True(t, pending.IsPending(), "pending")
	assert.False(t, failure.IsPending(), "failure is not pending")
	assert.True(t, fault.IsErrPending(pending), "pending as error")
	assert.False(t, fault.IsErrPending(fault.ErrInvalidAsset), "class error is not pending")

	assert.True(t, fault.OnlyPending([]*fault.TransactionError{pending}), "only pending")
	assert.False(t, fault.OnlyPending([]*fault.TransactionError{pending, failure}), "mixed list")
	assert.False(t, fault.OnlyPending(nil), "empty list")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "SchemaError", fault.SchemaKind.String(), "schema")
	assert.Equal(t, "BalanceError", fault.BalanceKind.String(), "balance")
	assert.Equal(t, "PendingSignal", fault.PendingKind.String(), "pending")
	assert.Equal(t, "*unknown*", fault.Kind(99).String(), "unknown")
}
