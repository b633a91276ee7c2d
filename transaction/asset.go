// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"

	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Asset - the type specific part of a transaction
//
// the set of assets is closed, one per Type
type Asset interface {
	// Type - the type tag this asset belongs to
	Type() Type
	// Fee - the fee a transaction carrying this asset must pay
	Fee() amount.Amount

	bytes() ([]byte, error)
	validate(tx *Transaction) []*fault.TransactionError
	apply(tx *Transaction, store AccountStore) []*fault.TransactionError
	undo(tx *Transaction, store AccountStore) []*fault.TransactionError
	verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError
	selectors(tx *Transaction) []Selector
	fromSync(row SyncRow) interface{}
}

// signerGroup - implemented by assets that carry their own signers
type signerGroup interface {
	signers() (publicKeys []string, minimum int)
}

// newAsset - empty asset for a type
func newAsset(t Type) (Asset, error) {
	switch t {
	case TransferType:
		return &TransferAsset{}, nil
	case SecondSignatureType:
		return &SecondSignatureAsset{}, nil
	case DelegateType:
		return &DelegateAsset{}, nil
	case VoteType:
		return &VoteAsset{}, nil
	case MultisignatureType:
		return &MultisignatureAsset{}, nil
	default:
		return nil, fault.ErrUnknownTransactionType
	}
}

// decodeAsset - typed asset from its JSON form
func decodeAsset(t Type, raw json.RawMessage) (Asset, error) {
	asset, err := newAsset(t)
	if nil != err {
		return nil, err
	}
	if 0 == len(raw) || "null" == string(raw) {
		return asset, nil
	}
	err = json.Unmarshal(raw, asset)
	if nil != err {
		return nil, fault.ErrInvalidAsset
	}
	return asset, nil
}
