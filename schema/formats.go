// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
)

// limits used by formats
const (
	MaxTransferDataLength = 64
	MaxUsernameLength     = 20
	maxTransactionID      = "18446744073709551615"
)

var (
	signaturePattern       = regexp.MustCompile(`^[a-fA-F0-9]{128}$`)
	usernameCharacters     = regexp.MustCompile(`^[a-z0-9!@$&_.]+$`)
	usernameAddressPattern = regexp.MustCompile(`^[0-9]{1,21}[Pp]$`)
	maxID                  = mustAmount(maxTransactionID)
)

// a format checker built from a string predicate
type stringFormat func(string) bool

func (f stringFormat) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	return f(s)
}

func init() {
	formats := map[string]stringFormat{
		"id":                IsID,
		"address":           IsAddress,
		"amount":            IsAmount,
		"fee":               IsAmount,
		"transferAmount":    IsTransferAmount,
		"nonTransferAmount": IsNonTransferAmount,
		"publicKey":         IsPublicKey,
		"emptyOrPublicKey":  IsEmptyOrPublicKey,
		"signature":         IsSignature,
		"signedPublicKey":   IsSignedPublicKey,
		"additionPublicKey": IsAdditionPublicKey,
		"transferData":      IsTransferData,
		"username":          IsUsername,
	}
	for name, f := range formats {
		gojsonschema.FormatCheckers.Add(name, f)
	}
}

// IsID - decimal digits within 64 bits
func IsID(s string) bool {
	a, err := amount.Parse(s)
	return nil == err && !a.GreaterThan(maxID)
}

// IsAddress - canonical address text
func IsAddress(s string) bool {
	return nil == account.ValidateAddress(s)
}

// IsAmount - digits not exceeding the maximum transaction amount
func IsAmount(s string) bool {
	a, err := amount.Parse(s)
	return nil == err && !a.ExceedsMaximum()
}

// IsTransferAmount - a valid amount greater than zero
func IsTransferAmount(s string) bool {
	a, err := amount.Parse(s)
	return nil == err && !a.IsZero() && !a.ExceedsMaximum()
}

// IsNonTransferAmount - exactly "0"
func IsNonTransferAmount(s string) bool {
	return "0" == s
}

// IsPublicKey - 32 bytes of hex
func IsPublicKey(s string) bool {
	return nil == cryptography.ValidatePublicKey(s)
}

// IsEmptyOrPublicKey - public key or nothing
func IsEmptyOrPublicKey(s string) bool {
	return "" == s || IsPublicKey(s)
}

// IsSignature - 64 bytes of hex
func IsSignature(s string) bool {
	return signaturePattern.MatchString(s)
}

// IsSignedPublicKey - public key prefixed with "+" or "-"
func IsSignedPublicKey(s string) bool {
	if len(s) < 2 {
		return false
	}
	if '+' != s[0] && '-' != s[0] {
		return false
	}
	return IsPublicKey(s[1:])
}

// IsAdditionPublicKey - public key prefixed with "+"
func IsAdditionPublicKey(s string) bool {
	return strings.HasPrefix(s, "+") && IsPublicKey(s[1:])
}

// IsTransferData - short text free of null bytes
func IsTransferData(s string) bool {
	return !strings.ContainsRune(s, 0) && len(s) <= MaxTransferDataLength
}

// IsUsername - lower case delegate name that cannot be mistaken for an address
func IsUsername(s string) bool {
	if strings.ContainsRune(s, 0) {
		return false
	}
	if s != strings.ToLower(strings.TrimSpace(s)) {
		return false
	}
	if usernameAddressPattern.MatchString(s) {
		return false
	}
	return len(s) <= MaxUsernameLength && usernameCharacters.MatchString(s)
}

func mustAmount(s string) amount.Amount {
	a, err := amount.Parse(s)
	if nil != err {
		panic(err)
	}
	return a
}
