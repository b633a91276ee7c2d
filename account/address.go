// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strconv"
	"strings"

	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// address length limits including the suffix
const (
	minAddressLength = 2
	maxAddressLength = 22
)

// ValidateAddress - check the textual form of an address
//
// digits must be the canonical base 10 form of a value that fits in
// 64 bits, followed by the address suffix
func ValidateAddress(address string) error {
	_, err := AddressNumber(address)
	return err
}

// AddressNumber - the numeric part of an address
func AddressNumber(address string) (uint64, error) {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return 0, fault.ErrAddressLength
	}
	if !strings.HasSuffix(address, cryptography.AddressSuffix) || strings.Contains(address, ".") {
		return 0, fault.ErrAddressFormat
	}
	digits := address[:len(address)-len(cryptography.AddressSuffix)]
	n, err := strconv.ParseUint(digits, 10, 64)
	if nil != err {
		if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
			return 0, fault.ErrAddressOutOfRange
		}
		return 0, fault.ErrAddressFormat
	}
	if strconv.FormatUint(n, 10) != digits {
		return 0, fault.ErrAddressFormat
	}
	return n, nil
}
