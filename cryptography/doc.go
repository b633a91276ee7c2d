// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cryptography - hashing, ed25519 keys and signatures,
// address and transaction id derivation
//
// keys are derived from a passphrase: the ed25519 seed is the SHA-256
// digest of the UTF-8 passphrase
//
// an address is the decimal value of the first eight bytes of the
// SHA-256 digest of the public key read as a little endian integer,
// followed by the suffix "P"
package cryptography
