// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"
	"math"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// fields common to signed and unsigned transactions, in encoding order
type envelope struct {
	typ             Type
	timestamp       int64
	senderPublicKey string
	recipientID     string
	amount          amount.Amount
	asset           Asset
}

// pack the basic bytes
func (e *envelope) pack() ([]byte, error) {
	if e.timestamp < math.MinInt32 || e.timestamp > math.MaxInt32 {
		return nil, fault.ErrInvalidTimestamp
	}
	senderPublicKey, err := cryptography.PublicKeyFromHex(e.senderPublicKey)
	if nil != err {
		return nil, err
	}
	recipient, err := recipientNumber(e.recipientID)
	if nil != err {
		return nil, err
	}
	assetBytes, err := e.asset.bytes()
	if nil != err {
		return nil, err
	}

	message := make([]byte, 0, typeSize+timestampSize+publicKeySize+recipientIDSize+amountSize+len(assetBytes))
	message = append(message, byte(e.typ))
	message = appendUint32(message, uint32(int32(e.timestamp)))
	message = append(message, senderPublicKey...)
	message = appendUint64(message, recipient)
	message = append(message, e.amount.FixedBytes(amountSize)...)
	return append(message, assetBytes...), nil
}

// append the signatures that are present
func appendSignatures(message []byte, signatures ...string) ([]byte, error) {
	for _, s := range signatures {
		if "" == s {
			continue
		}
		b, err := cryptography.HexToBytes(s)
		if nil != err {
			return nil, err
		}
		message = append(message, b...)
	}
	return message, nil
}

// numeric part of a recipient address, zero if there is no recipient
func recipientNumber(recipientID string) (uint64, error) {
	if "" == recipientID {
		return 0, nil
	}
	n, err := account.AddressNumber(recipientID)
	if nil != err {
		return 0, fault.ErrInvalidRecipient
	}
	return n, nil
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

func (tx *Transaction) envelope() *envelope {
	return &envelope{
		typ:             tx.typ,
		timestamp:       tx.timestamp,
		senderPublicKey: tx.senderPublicKey,
		recipientID:     tx.recipientID,
		amount:          tx.amount,
		asset:           tx.asset,
	}
}

// BasicBytes - the signed part of the transaction
func (tx *Transaction) BasicBytes() ([]byte, error) {
	return tx.envelope().pack()
}

// Bytes - basic bytes followed by the signature and second signature
func (tx *Transaction) Bytes() ([]byte, error) {
	basic, err := tx.BasicBytes()
	if nil != err {
		return nil, err
	}
	return appendSignatures(basic, tx.signature, tx.signSignature)
}
