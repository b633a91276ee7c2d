// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"encoding/json"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/phaetonhq/phaeton-transactions/fault"
)

// limits
const (
	MaxTransactionAmountText = "9223372036854775807"
	FixedPointText           = "100000000"
	maxDecimalPlaces         = 8
)

// MaxTransactionAmount - largest amount or balance allowed
var MaxTransactionAmount = mustParse(MaxTransactionAmountText)

// FixedPoint - beddows in one PHA
var FixedPoint = mustParse(FixedPointText)

// Zero - zero beddows
var Zero = Amount{}

var bigOne = big.NewInt(1)

var numberString = regexp.MustCompile(`^[0-9]+$`)

// Amount - a non-fractional quantity of beddows
type Amount struct {
	value decimal.Decimal
}

// IsNumberString - true if s consists only of decimal digits
func IsNumberString(s string) bool {
	return numberString.MatchString(s)
}

// Parse - read a non-negative integer string
func Parse(s string) (Amount, error) {
	if !IsNumberString(s) {
		return Zero, fault.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if nil != err {
		return Zero, fault.ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

// ParseSigned - as Parse but also accepts a leading minus sign, used
// when reading stored balances
func ParseSigned(s string) (Amount, error) {
	if strings.HasPrefix(s, "-") {
		a, err := Parse(s[1:])
		if nil != err {
			return Zero, err
		}
		return Zero.Sub(a), nil
	}
	return Parse(s)
}

func mustParse(s string) Amount {
	a, err := Parse(s)
	if nil != err {
		panic(err)
	}
	return a
}

// New - amount from a signed integer
func New(n int64) Amount {
	return Amount{value: decimal.New(n, 0)}
}

// FromUint64 - amount from an unsigned integer
func FromUint64(n uint64) Amount {
	return Amount{value: decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)}
}

// Add - a + b
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Sub - a - b, may become negative
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value)}
}

// Mul - a * b
func (a Amount) Mul(b Amount) Amount {
	return Amount{value: a.value.Mul(b.value)}
}

// Div - a / b truncated towards zero
func (a Amount) Div(b Amount) Amount {
	return Amount{value: a.value.Div(b.value).Truncate(0)}
}

// Cmp - -1, 0 or +1
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// Equal - a == b
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// GreaterThan - a > b
func (a Amount) GreaterThan(b Amount) bool {
	return a.value.GreaterThan(b.value)
}

// LessThan - a < b
func (a Amount) LessThan(b Amount) bool {
	return a.value.LessThan(b.value)
}

// IsZero - a == 0
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative - a < 0
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// ExceedsMaximum - a > MaxTransactionAmount
func (a Amount) ExceedsMaximum() bool {
	return a.value.GreaterThan(MaxTransactionAmount.value)
}

// String - base 10 digits
func (a Amount) String() string {
	return a.value.String()
}

// FixedBytes - little endian two's complement of the integer value in
// exactly size bytes, higher order bytes are discarded
func (a Amount) FixedBytes(size int) []byte {
	buffer := make([]byte, size)
	bi := a.value.BigInt()
	negative := bi.Sign() < 0
	if negative {
		bi.Neg(bi)
		bi.Sub(bi, bigOne)
	}
	be := bi.Bytes()
	for i := 0; i < size && i < len(be); i += 1 {
		buffer[i] = be[len(be)-1-i]
	}
	if negative {
		for i := range buffer {
			buffer[i] = ^buffer[i]
		}
	}
	return buffer
}

// MarshalJSON - amounts are always JSON strings
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value.String())
}

// UnmarshalJSON - accept a digit string or a JSON integer
func (a *Amount) UnmarshalJSON(s []byte) error {
	text := strings.Trim(string(s), `"`)
	v, err := ParseSigned(text)
	if nil != err {
		return err
	}
	*a = v
	return nil
}

// MarshalText - for use as a map key or in text encodings
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalText - inverse of MarshalText
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := ParseSigned(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}

// FromPHA - convert a decimal PHA string into beddows
func FromPHA(pha string) (Amount, error) {
	if strings.Contains(pha, ".") && len(pha[strings.Index(pha, ".")+1:]) > maxDecimalPlaces {
		return Zero, fault.ErrAmountTooManyDecimals
	}
	d, err := decimal.NewFromString(pha)
	if nil != err || d.IsNegative() {
		return Zero, fault.ErrInvalidAmount
	}
	a := Amount{value: d.Mul(FixedPoint.value)}
	if a.ExceedsMaximum() {
		return Zero, fault.ErrAmountOutOfRange
	}
	return a, nil
}

// PHA - convert beddows to a decimal PHA string
func (a Amount) PHA() (string, error) {
	if a.ExceedsMaximum() {
		return "", fault.ErrAmountOutOfRange
	}
	return a.value.Div(FixedPoint.value).String(), nil
}

// BeddowsToPHA - convert beddows text into PHA text
func BeddowsToPHA(beddows string) (string, error) {
	if strings.Contains(beddows, ".") {
		return "", fault.ErrAmountHasDecimalPoint
	}
	a, err := Parse(beddows)
	if nil != err {
		return "", err
	}
	return a.PHA()
}
