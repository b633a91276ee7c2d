// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// Type - type tag of a transaction, first byte of its encoding
type Type uint8

// enumerate the transaction types
const (
	TransferType        = Type(0)
	SecondSignatureType = Type(1)
	DelegateType        = Type(2)
	VoteType            = Type(3)
	MultisignatureType  = Type(4)
)

var typeNames = map[Type]string{
	TransferType:        "transfer",
	SecondSignatureType: "secondSignature",
	DelegateType:        "delegate",
	VoteType:            "vote",
	MultisignatureType:  "multisignature",
}

// String - name of the transaction type
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "*unknown*"
}
