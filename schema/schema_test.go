// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phaetonhq/phaeton-transactions/schema"
)

const publicKey = "c094ebee7ec0c50ebee32918655e089f6e1a604b83bcaa760293c61e0f18ab6f"

var voteSchema = schema.MustCompile(map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"votes"},
	"properties": map[string]interface{}{
		"votes": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"maxItems": 2,
			"items": map[string]interface{}{
				"type":   "string",
				"format": "signedPublicKey",
			},
		},
		"username": map[string]interface{}{
			"type":   "string",
			"format": "username",
		},
	},
})

func TestValidDocument(t *testing.T) {
	v := map[string]interface{}{
		"votes":    []string{"+" + publicKey},
		"username": "genesis_1",
	}
	assert.Empty(t, voteSchema.Validate(v), "should be valid")
}

func TestViolations(t *testing.T) {
	v := map[string]interface{}{
		"votes": []string{publicKey, "-" + publicKey, "+" + publicKey},
	}
	violations := voteSchema.Validate(v)
	assert.Equal(t, 2, len(violations), "violations: %v", violations)

	assert.Equal(t, ".votes", violations[0].DataPath, "array length")
	assert.Equal(t, "array_max_items", violations[0].Keyword, "wrong keyword")

	assert.Equal(t, ".votes.0", violations[1].DataPath, "unsigned key")
	assert.Equal(t, "format", violations[1].Keyword, "wrong keyword")
	assert.Equal(t, publicKey, violations[1].Value, "wrong value")
}

func TestRequired(t *testing.T) {
	violations := voteSchema.Validate(struct{}{})
	assert.Equal(t, 1, len(violations), "one violation")
	assert.Equal(t, ".votes", violations[0].DataPath, "missing property path")
	assert.Equal(t, "required", violations[0].Keyword, "wrong keyword")
}

func TestFormats(t *testing.T) {
	assert.True(t, schema.IsID("18446744073709551615"), "maximum id")
	assert.False(t, schema.IsID("18446744073709551616"), "id too large")
	assert.False(t, schema.IsID("12a"), "id not digits")

	assert.True(t, schema.IsAddress("16313739661670634666P"), "address")
	assert.False(t, schema.IsAddress("16313739661670634666"), "address without suffix")

	assert.True(t, schema.IsAmount("0"), "zero amount")
	assert.True(t, schema.IsAmount("9223372036854775807"), "maximum amount")
	assert.False(t, schema.IsAmount("9223372036854775808"), "amount too large")

	assert.False(t, schema.IsTransferAmount("0"), "zero transfer")
	assert.True(t, schema.IsTransferAmount("1"), "one beddows transfer")
	assert.True(t, schema.IsNonTransferAmount("0"), "zero")
	assert.False(t, schema.IsNonTransferAmount("00"), "not canonical zero")

	assert.True(t, schema.IsPublicKey(publicKey), "public key")
	assert.False(t, schema.IsPublicKey(publicKey[2:]), "short public key")
	assert.True(t, schema.IsEmptyOrPublicKey(""), "empty public key")

	assert.True(t, schema.IsSignature(strings.Repeat("ab", 64)), "signature")
	assert.False(t, schema.IsSignature(strings.Repeat("ab", 63)), "short signature")

	assert.True(t, schema.IsSignedPublicKey("-"+publicKey), "unvote")
	assert.False(t, schema.IsSignedPublicKey("*"+publicKey), "bad prefix")
	assert.True(t, schema.IsAdditionPublicKey("+"+publicKey), "addition")
	assert.False(t, schema.IsAdditionPublicKey("-"+publicKey), "removal is not addition")

	assert.True(t, schema.IsTransferData("hello"), "data")
	assert.False(t, schema.IsTransferData("a\x00b"), "null byte")
	assert.False(t, schema.IsTransferData(strings.Repeat("x", 65)), "data too long")

	assert.True(t, schema.IsUsername("genesis_1"), "username")
	assert.False(t, schema.IsUsername("Genesis"), "upper case")
	assert.False(t, schema.IsUsername("1234P"), "looks like an address")
	assert.False(t, schema.IsUsername("a b"), "space")
	assert.False(t, schema.IsUsername(strings.Repeat("a", 21)), "too long")
}
