// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// command errors - keep in alphabetic order
const (
	ErrEmptyTransaction = fault.InvalidError("transaction text is empty")
	ErrMissingAmount    = fault.InvalidError("amount is required")
	ErrMissingRecipient = fault.InvalidError("recipient is required")
	ErrMissingUsername  = fault.InvalidError("username is required")
	ErrNoTerminal       = fault.ProcessError("passphrase not set and standard input is not a terminal")
)
