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
	ErrBatchRejected   = fault.ProcessError("batch rejected")
	ErrMissingArgument = fault.InvalidError("missing argument")
	ErrUnknownCommand  = fault.InvalidError("unknown command")
)
