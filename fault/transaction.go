// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// Kind - classification of a transaction error
type Kind int

// transaction error classes
const (
	SchemaKind         Kind = iota // structure does not match the declared schema
	AssetKind                      // variant specific rule violation
	SignatureKind                  // signature, second signature, id or sender identity
	FeeKind                        // fee differs from the required fee
	BalanceKind                    // insufficient balance or overflow
	MultisignatureKind             // duplicate, unauthorised or invalid co-signature
	PendingKind                    // not a failure: more signatures are required
)

var kindNames = map[Kind]string{
	SchemaKind:         "SchemaError",
	AssetKind:          "SemanticAssetError",
	SignatureKind:      "SignatureError",
	FeeKind:            "FeeError",
	BalanceKind:        "BalanceError",
	MultisignatureKind: "MultisignatureError",
	PendingKind:        "PendingSignal",
}

// String - name of the error class
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "*unknown*"
}

// MarshalText - JSON form of the error class
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TransactionError - a single reported violation
//
// DataPath is the JSON path of the offending field (e.g. ".asset.votes")
// Actual and Expected are nil when not applicable
type TransactionError struct {
	Kind     Kind        `json:"kind"`
	Message  string      `json:"message"`
	ID       string      `json:"id"`
	DataPath string      `json:"dataPath,omitempty"`
	Actual   interface{} `json:"actual,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewTransactionError - create an error with no actual/expected values
func NewTransactionError(kind Kind, message string, id string, dataPath string) *TransactionError {
	return &TransactionError{
		Kind:     kind,
		Message:  message,
		ID:       id,
		DataPath: dataPath,
	}
}

// NewTransactionErrorWithValues - create an error showing actual and expected values
func NewTransactionErrorWithValues(kind Kind, message string, id string, dataPath string, actual interface{}, expected interface{}) *TransactionError {
	return &TransactionError{
		Kind:     kind,
		Message:  message,
		ID:       id,
		DataPath: dataPath,
		Actual:   actual,
		Expected: expected,
	}
}

// Error - the error interface
func (e *TransactionError) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if "" != e.DataPath {
		s += " [" + e.DataPath + "]"
	}
	if nil != e.Actual || nil != e.Expected {
		s += fmt.Sprintf(" actual: %v expected: %v", e.Actual, e.Expected)
	}
	return s
}

// IsPending - true if the error only signals missing signatures
func (e *TransactionError) IsPending() bool {
	return PendingKind == e.Kind
}

// IsErrPending - check an arbitrary error for the pending signal
func IsErrPending(err error) bool {
	te, ok := err.(*TransactionError)
	return ok && te.IsPending()
}

// OnlyPending - true if the list consists of exactly one pending signal
func OnlyPending(errors []*TransactionError) bool {
	return 1 == len(errors) && errors[0].IsPending()
}
