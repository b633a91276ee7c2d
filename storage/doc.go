// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - account state for applying and undoing transactions
//
// Committed accounts live in a LevelDB database split into pools.
// Each pool has a single byte prefix.
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. address  = account address as UTF-8 text (e.g. "16313739661670634666P")
// 3. username = delegate username as UTF-8 text
//
// Pools:
//
//   A ++ address          - account record
//                           data: JSON encoded account.Account
//   U ++ username         - delegate username index
//                           data: address
//
// Working state:
//
// An AccountStore holds a snapshot of the accounts touched by one batch
// of transactions in an in-memory cache.  Reads fall through to the
// database and are kept in the snapshot; writes only change the
// snapshot.  Commit writes every changed account in a single LevelDB
// batch, Rollback drops the snapshot.
package storage
