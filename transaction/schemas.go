// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"math"

	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

type object = map[string]interface{}
type list = []interface{}

// common fields of every transaction
var baseSchema = schema.MustCompile(object{
	"type": "object",
	"required": list{
		"id", "type", "amount", "fee", "senderPublicKey",
		"timestamp", "asset", "signature",
	},
	"properties": object{
		"id":              object{"type": "string", "format": "id"},
		"blockId":         object{"type": "string", "format": "id"},
		"height":          object{"type": "integer", "minimum": 0},
		"confirmations":   object{"type": "integer", "minimum": 0},
		"amount":          object{"type": "string", "format": "amount"},
		"fee":             object{"type": "string", "format": "fee"},
		"type":            object{"type": "integer", "minimum": 0},
		"timestamp":       object{"type": "integer", "minimum": math.MinInt32, "maximum": math.MaxInt32},
		"senderId":        object{"type": "string", "format": "address"},
		"senderPublicKey": object{"type": "string", "format": "publicKey"},
		"recipientId":     object{"type": "string"},
		"recipientPublicKey": object{
			"type":   "string",
			"format": "emptyOrPublicKey",
		},
		"signature":     object{"type": "string", "format": "signature"},
		"signSignature": object{"type": "string", "format": "signature"},
		"signatures": object{
			"type":        "array",
			"uniqueItems": true,
			"minItems":    0,
			"maxItems":    MaxSignatures,
			"items":       object{"type": "string", "format": "signature"},
		},
		"asset":      object{"type": "object"},
		"receivedAt": object{"type": "string", "format": "date-time"},
	},
})

// convert schema violations of the envelope
func schemaErrors(id string, prefix string, violations []schema.Violation) []*fault.TransactionError {
	errors := make([]*fault.TransactionError, 0, len(violations))
	for _, v := range violations {
		e := fault.NewTransactionError(fault.SchemaKind, v.Message, id, prefix+v.DataPath)
		e.Actual = v.Value
		errors = append(errors, e)
	}
	return errors
}
