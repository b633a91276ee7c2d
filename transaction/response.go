// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Status - overall outcome of an operation
type Status int

// possible outcomes
const (
	StatusFail    = Status(0)
	StatusOk      = Status(1)
	StatusPending = Status(2)
)

// String - outcome as text
func (s Status) String() string {
	switch s {
	case StatusFail:
		return "FAIL"
	case StatusOk:
		return "OK"
	case StatusPending:
		return "PENDING"
	default:
		return "*unknown*"
	}
}

// MarshalText - JSON form of an outcome
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Response - result of validate, apply, undo and signature collection
type Response struct {
	ID             string                    `json:"id"`
	Status         Status                    `json:"status"`
	Errors         []*fault.TransactionError `json:"errors"`
	Multisignature MultisignatureStatus      `json:"multisignature"`
}

// OK - true if the operation succeeded
func (r *Response) OK() bool {
	return StatusOk == r.Status
}

// Pending - true if the operation only lacks signatures
func (r *Response) Pending() bool {
	return StatusPending == r.Status
}

// create a response that is OK exactly when there are no errors
func newResponse(id string, errors []*fault.TransactionError) *Response {
	status := StatusOk
	if 0 != len(errors) {
		status = StatusFail
	}
	if nil == errors {
		errors = []*fault.TransactionError{}
	}
	return &Response{
		ID:     id,
		Status: status,
		Errors: errors,
	}
}

// create a pending response
func newPendingResponse(id string, errors []*fault.TransactionError) *Response {
	return &Response{
		ID:             id,
		Status:         StatusPending,
		Errors:         errors,
		Multisignature: MultisignaturePending,
	}
}
