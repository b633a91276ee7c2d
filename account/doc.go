// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the ledger account record
//
// accounts are keyed by address; an address that has never been seen
// reads as a default record with zero balance
package account
