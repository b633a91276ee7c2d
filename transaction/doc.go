// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed ledger transactions
//
// A transaction is an envelope of common fields plus a type specific
// asset.  Transactions are built as Unsigned values and only become a
// Transaction once signed, or when decoded from JSON carrying an id,
// sender public key and signature.
//
// The basic bytes of a transaction are:
//
//   type            1 byte
//   timestamp       4 bytes  little endian signed
//   senderPublicKey 32 bytes
//   recipientId     8 bytes  little endian address number, zero if absent
//   amount          8 bytes  little endian
//   asset           variable, depends on type
//
// The full bytes append the signature and, when present, the second
// signature.  The id is the first eight bytes of the SHA-256 digest of
// the full bytes read as a little endian number.
//
// Validation, apply and undo never stop at the first problem: every
// violation is collected into a Response.  Apply and undo mutate
// accounts through an AccountStore and leave rollback to the caller.
package transaction
