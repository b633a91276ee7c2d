// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound           = NotFoundError("account not found")
	ErrAddressFormat             = InvalidError("address format does not match requirements")
	ErrAddressLength             = LengthError("address length does not match requirements")
	ErrAddressOutOfRange         = InvalidError("address out of maximum range")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrAmountHasDecimalPoint     = InvalidError("beddows amount should not have decimal points")
	ErrAmountOutOfRange          = InvalidError("amount out of range")
	ErrAmountTooManyDecimals     = InvalidError("amount has too many decimal points")
	ErrConfigurationNotTable     = InvalidError("configuration file did not return a table")
	ErrDuplicatePublicKey        = ExistsError("duplicated public key")
	ErrInvalidAmount             = InvalidError("amount must be a non-negative integer string")
	ErrInvalidAsset              = RecordError("asset does not match transaction type")
	ErrInvalidHex                = InvalidError("invalid hex string")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPublicKey          = LengthError("public key length differs from the expected 32 bytes")
	ErrInvalidRecipient          = InvalidError("recipient id is not a valid address")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTimestamp          = InvalidError("timestamp out of range")
	ErrInvalidUsername           = InvalidError("username does not match requirements")
	ErrKeysgroupSize             = LengthError("keysgroup size out of range")
	ErrLifetimeOutOfRange        = InvalidError("multisignature lifetime out of range")
	ErrMinimumOutOfRange         = InvalidError("multisignature minimum out of range")
	ErrMissingPassphrase         = InvalidError("passphrase is required")
	ErrMissingSenderPublicKey    = RecordError("senderPublicKey is required to be set before use")
	ErrMissingSignature          = RecordError("signature is required to be set before use")
	ErrMissingTransactionId      = RecordError("id is required to be set before use")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrSenderIdMismatch          = InvalidError("transaction senderId does not match address from passphrase")
	ErrSenderPublicKeyMismatch   = InvalidError("transaction senderPublicKey does not match public key from passphrase")
	ErrTransactionAlreadyExists  = ExistsError("transaction already exists")
	ErrTransactionNotFound       = NotFoundError("transaction not found")
	ErrUnknownTransactionType    = RecordError("unknown transaction type")
	ErrVotesCount                = LengthError("votes count out of range")
	ErrWrongTransactionSignature = InvalidError("signature does not belong to transaction")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
