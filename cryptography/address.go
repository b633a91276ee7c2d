// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptography

import (
	"encoding/binary"
	"strconv"
)

// AddressSuffix - final character of every address
const AddressSuffix = "P"

// AddressFromPublicKeyBytes - derive the address for a binary public key
func AddressFromPublicKeyBytes(publicKey []byte) string {
	return strconv.FormatUint(firstEightLE(Hash(publicKey)), 10) + AddressSuffix
}

// AddressFromPublicKey - derive the address for a hex public key
func AddressFromPublicKey(publicKey string) (string, error) {
	key, err := PublicKeyFromHex(publicKey)
	if nil != err {
		return "", err
	}
	return AddressFromPublicKeyBytes(key), nil
}

// TransactionID - decimal id from the full bytes of a signed transaction
func TransactionID(transactionBytes []byte) string {
	return strconv.FormatUint(firstEightLE(Hash(transactionBytes)), 10)
}

func firstEightLE(digest []byte) uint64 {
	return binary.LittleEndian.Uint64(digest[:8])
}
