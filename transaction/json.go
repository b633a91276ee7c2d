// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"
	"strings"
	"time"
)

// JSON - the wire and storage form of a transaction
type JSON struct {
	ID                 string          `json:"id"`
	BlockID            string          `json:"blockId,omitempty"`
	Height             *int64          `json:"height,omitempty"`
	Relays             *int64          `json:"relays,omitempty"`
	Confirmations      *int64          `json:"confirmations,omitempty"`
	Amount             Number          `json:"amount"`
	Fee                Number          `json:"fee"`
	Type               Type            `json:"type"`
	Timestamp          int64           `json:"timestamp"`
	SenderPublicKey    string          `json:"senderPublicKey"`
	SenderID           string          `json:"senderId"`
	RecipientID        string          `json:"recipientId"`
	RecipientPublicKey string          `json:"recipientPublicKey,omitempty"`
	Signature          string          `json:"signature"`
	SignSignature      string          `json:"signSignature,omitempty"`
	Signatures         []string        `json:"signatures"`
	Asset              json.RawMessage `json:"asset"`
	ReceivedAt         *time.Time      `json:"receivedAt,omitempty"`
}

// Number - amount text that may arrive as a JSON string or number
type Number string

// MarshalJSON - always a string
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// UnmarshalJSON - accept a string or a bare number
func (n *Number) UnmarshalJSON(s []byte) error {
	text := string(s)
	if strings.HasPrefix(text, `"`) {
		var str string
		err := json.Unmarshal(s, &str)
		if nil != err {
			return err
		}
		*n = Number(str)
		return nil
	}
	if "null" == text {
		*n = ""
		return nil
	}
	*n = Number(text)
	return nil
}

// FromJSON - decode a transaction from its JSON text
func FromJSON(data []byte) (*Transaction, error) {
	var j JSON
	err := json.Unmarshal(data, &j)
	if nil != err {
		return nil, err
	}
	return New(&j)
}

// JSON - the JSON projection of a transaction
func (tx *Transaction) JSON() *JSON {
	asset, err := json.Marshal(tx.asset)
	if nil != err {
		asset = json.RawMessage("{}")
	}
	return &JSON{
		ID:                 tx.id,
		BlockID:            tx.BlockID,
		Height:             tx.Height,
		Relays:             tx.Relays,
		Confirmations:      tx.Confirmations,
		Amount:             Number(tx.amount.String()),
		Fee:                Number(tx.fee.String()),
		Type:               tx.typ,
		Timestamp:          tx.timestamp,
		SenderPublicKey:    tx.senderPublicKey,
		SenderID:           tx.senderID,
		RecipientID:        tx.recipientID,
		RecipientPublicKey: tx.recipientPublicKey,
		Signature:          tx.signature,
		SignSignature:      tx.signSignature,
		Signatures:         tx.Signatures(),
		Asset:              asset,
		ReceivedAt:         tx.ReceivedAt,
	}
}

// MarshalJSON - encode using the JSON projection
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.JSON())
}

// UnmarshalJSON - decode into an existing value
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	t, err := FromJSON(data)
	if nil != err {
		return err
	}
	*tx = *t
	return nil
}
