// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - storage for:
// 1. multisignature transactions that are collecting signatures
// 2. validated transactions that are waiting to be included in a block
//
// Entries are dropped by a background process once they exceed their
// residency limit: transactions still collecting signatures stay
// longer than ordinary ones.
package reservoir
