// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// Transaction - a signed transaction
//
// identity and signature fields are fixed at construction; only the
// multisignature list and the bookkeeping fields change afterwards
type Transaction struct {
	id                 string
	typ                Type
	timestamp          int64
	senderPublicKey    string
	senderID           string
	recipientID        string
	recipientPublicKey string
	amount             amount.Amount
	fee                amount.Amount
	signature          string
	signSignature      string
	signatures         []string
	asset              Asset

	// bookkeeping, not part of the signed bytes
	BlockID       string
	Height        *int64
	Confirmations *int64
	Relays        *int64
	ReceivedAt    *time.Time
}

// New - create a transaction from its JSON form
//
// an unparsable amount reads as zero and an unparsable fee as the fee
// required by the asset; the sender id is derived from the sender
// public key when absent
func New(j *JSON) (*Transaction, error) {
	if "" == j.ID {
		return nil, fault.ErrMissingTransactionId
	}
	if "" == j.SenderPublicKey {
		return nil, fault.ErrMissingSenderPublicKey
	}
	if "" == j.Signature {
		return nil, fault.ErrMissingSignature
	}

	asset, err := decodeAsset(j.Type, j.Asset)
	if nil != err {
		return nil, err
	}

	value, err := amount.Parse(string(j.Amount))
	if nil != err {
		value = amount.Zero
	}
	fee, err := amount.Parse(string(j.Fee))
	if nil != err {
		fee = asset.Fee()
	}

	senderID := j.SenderID
	if "" == senderID {
		senderID, err = cryptography.AddressFromPublicKey(j.SenderPublicKey)
		if nil != err {
			return nil, err
		}
	}

	tx := &Transaction{
		id:                 j.ID,
		typ:                j.Type,
		timestamp:          j.Timestamp,
		senderPublicKey:    j.SenderPublicKey,
		senderID:           senderID,
		recipientID:        j.RecipientID,
		recipientPublicKey: j.RecipientPublicKey,
		amount:             value,
		fee:                fee,
		signature:          j.Signature,
		signSignature:      j.SignSignature,
		signatures:         append([]string{}, j.Signatures...),
		asset:              asset,
		BlockID:            j.BlockID,
		Height:             j.Height,
		Confirmations:      j.Confirmations,
		Relays:             j.Relays,
		ReceivedAt:         j.ReceivedAt,
	}
	return tx, nil
}

// ID - transaction id
func (tx *Transaction) ID() string {
	return tx.id
}

// Type - type tag as received
func (tx *Transaction) Type() Type {
	return tx.typ
}

// Timestamp - seconds since EpochTime
func (tx *Transaction) Timestamp() int64 {
	return tx.timestamp
}

// SenderPublicKey - hex public key of the signer
func (tx *Transaction) SenderPublicKey() string {
	return tx.senderPublicKey
}

// SenderID - address of the sender
func (tx *Transaction) SenderID() string {
	return tx.senderID
}

// RecipientID - address of the recipient, empty if none
func (tx *Transaction) RecipientID() string {
	return tx.recipientID
}

// RecipientPublicKey - optional public key of the recipient
func (tx *Transaction) RecipientPublicKey() string {
	return tx.recipientPublicKey
}

// Amount - beddows moved by the transaction
func (tx *Transaction) Amount() amount.Amount {
	return tx.amount
}

// Fee - beddows paid by the sender
func (tx *Transaction) Fee() amount.Amount {
	return tx.fee
}

// Signature - hex signature of the sender
func (tx *Transaction) Signature() string {
	return tx.signature
}

// SignSignature - hex second signature, empty if none
func (tx *Transaction) SignSignature() string {
	return tx.signSignature
}

// Signatures - copy of the collected multisignatures
func (tx *Transaction) Signatures() []string {
	return append([]string{}, tx.signatures...)
}

// Asset - the type specific part
func (tx *Transaction) Asset() Asset {
	return tx.asset
}

// InitialMultisignatureStatus - status before any signature evaluation
func (tx *Transaction) InitialMultisignatureStatus() MultisignatureStatus {
	if _, ok := tx.asset.(signerGroup); ok {
		return MultisignaturePending
	}
	return MultisignatureUnknown
}

// IsExpired - true once the transaction has stayed in a pool too long
//
// the receipt time is set to now on the first call if it is not known
func (tx *Transaction) IsExpired(status MultisignatureStatus, now time.Time) bool {
	if nil == tx.ReceivedAt {
		t := now
		tx.ReceivedAt = &t
	}
	timeout := UnconfirmedTransactionTimeout
	if status.IsCollecting() {
		timeout = UnconfirmedMultisignatureTransactionTimeout
	}
	elapsed := now.Unix() - tx.ReceivedAt.Unix()
	return elapsed > int64(timeout/time.Second)
}
