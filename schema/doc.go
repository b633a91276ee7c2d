// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - JSON schema evaluation with ledger specific formats
//
// schemas are compiled once, at package initialisation of their users,
// and evaluated against any value that encodes to JSON
package schema
