// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/phaetonhq/phaeton-transactions/amount"
)

// fixed fees in beddows
var (
	TransferFee        = amount.New(10000000)
	SecondSignatureFee = amount.New(500000000)
	DelegateFee        = amount.New(2500000000)
	VoteFee            = amount.New(100000000)
	MultisignatureFee  = amount.New(500000000)
)

// pool residency limits
const (
	UnconfirmedTransactionTimeout               = 10800 * time.Second
	UnconfirmedMultisignatureTransactionTimeout = 86400 * time.Second
)

// byte sizes of the fixed part of the encoding
const (
	typeSize        = 1
	timestampSize   = 4
	publicKeySize   = 32
	recipientIDSize = 8
	amountSize      = 8
)

// vote limits
const (
	MinVotesPerTransaction = 1
	MaxVotesPerTransaction = 33
	MaxVotesPerAccount     = 101
)

// multisignature limits
const (
	MultisignatureMinKeysgroup = 1
	MultisignatureMaxKeysgroup = 15
	MultisignatureMinLifetime  = 1
	MultisignatureMaxLifetime  = 72
	MaxSignatures              = 15
)

// vote prefixes
const (
	upvotePrefix   = "+"
	unvotePrefix   = "-"
	additionPrefix = "+"
)

// epoch of timestamps
var EpochTime = time.Date(2016, time.May, 24, 17, 0, 0, 0, time.UTC)
