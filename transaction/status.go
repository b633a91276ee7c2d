// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// MultisignatureStatus - progress of signature collection
//
// the value is returned by every operation that evaluates signatures
// and is held by the caller, the transaction itself keeps no status
type MultisignatureStatus int

// states of signature collection
const (
	MultisignatureUnknown = MultisignatureStatus(iota)
	MultisignatureNone
	MultisignaturePending
	MultisignatureReady
	MultisignatureFail
)

var statusNames = map[MultisignatureStatus]string{
	MultisignatureUnknown: "UNKNOWN",
	MultisignatureNone:    "NONMULTISIGNATURE",
	MultisignaturePending: "PENDING",
	MultisignatureReady:   "READY",
	MultisignatureFail:    "FAIL",
}

// String - state as text
func (m MultisignatureStatus) String() string {
	if s, ok := statusNames[m]; ok {
		return s
	}
	return "*unknown*"
}

// MarshalText - JSON form of a state
func (m MultisignatureStatus) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// IsReady - true if no further signatures are needed
func (m MultisignatureStatus) IsReady() bool {
	return MultisignatureReady == m || MultisignatureNone == m
}

// IsCollecting - true while the longer multisignature residency applies
func (m MultisignatureStatus) IsCollecting() bool {
	return MultisignaturePending == m || MultisignatureReady == m
}
