// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SyncRow - a flat database row of the legacy storage format
//
// keys are prefixed by table: t_ transaction, b_ block, m_ multisignature,
// tf_ transfer, s_ signature, d_ delegate, v_ vote
type SyncRow map[string]interface{}

// FromSync - map a legacy row to the JSON form
func FromSync(row SyncRow) (*JSON, error) {
	t, err := row.integer("t_type")
	if nil != err {
		return nil, err
	}
	asset, err := newAsset(Type(t))
	if nil != err {
		return nil, err
	}
	timestamp, err := row.integer("t_timestamp")
	if nil != err {
		return nil, err
	}

	blockID := row.text("b_id")
	if "" == blockID {
		blockID = row.text("t_blockId")
	}

	j := &JSON{
		ID:                 row.text("t_id"),
		BlockID:            blockID,
		Type:               Type(t),
		Timestamp:          timestamp,
		SenderPublicKey:    row.text("t_senderPublicKey"),
		SenderID:           row.text("t_senderId"),
		RecipientID:        row.text("t_recipientId"),
		RecipientPublicKey: row.text("m_recipientPublicKey"),
		Amount:             Number(row.text("t_amount")),
		Fee:                Number(row.text("t_fee")),
		Signature:          row.text("t_signature"),
		SignSignature:      row.text("t_signSignature"),
		Signatures:         row.list("t_signatures"),
		Asset:              json.RawMessage("{}"),
	}

	if _, ok := row["b_height"]; ok {
		height, err := row.integer("b_height")
		if nil != err {
			return nil, err
		}
		j.Height = &height
	}

	confirmations := int64(0)
	if _, ok := row["confirmations"]; ok {
		confirmations, err = row.integer("confirmations")
		if nil != err {
			return nil, err
		}
	}
	j.Confirmations = &confirmations

	if a := asset.fromSync(row); nil != a {
		j.Asset, err = json.Marshal(a)
		if nil != err {
			return nil, err
		}
	}
	return j, nil
}

// text value of a column, empty if absent or null
func (row SyncRow) text(key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// integer value of a column held as text or a number
func (row SyncRow) integer(key string) (int64, error) {
	switch v := row[key].(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	default:
		return strconv.ParseInt(row.text(key), 10, 64)
	}
}

// comma separated list, or a list already split
func (row SyncRow) list(key string) []string {
	switch v := row[key].(type) {
	case []string:
		return append([]string{}, v...)
	case []interface{}:
		l := make([]string, 0, len(v))
		for _, item := range v {
			l = append(l, fmt.Sprint(item))
		}
		return l
	}
	s := row.text(key)
	if "" == s {
		return []string{}
	}
	return strings.Split(s, ",")
}
