// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// MultisignatureAsset - registers the sender as a multisignature account
type MultisignatureAsset struct {
	Multisignature Multisignature `json:"multisignature"`
}

// Multisignature - members, each prefixed "+", and the signature threshold
type Multisignature struct {
	Min       int      `json:"min"`
	Lifetime  int      `json:"lifetime"`
	Keysgroup []string `json:"keysgroup,omitempty"`
}

var multisignatureSchema = schema.MustCompile(object{
	"type":     "object",
	"required": list{"multisignature"},
	"properties": object{
		"multisignature": object{
			"type":     "object",
			"required": list{"min", "lifetime", "keysgroup"},
			"properties": object{
				"min": object{
					"type":    "integer",
					"minimum": MultisignatureMinKeysgroup,
					"maximum": MultisignatureMaxKeysgroup,
				},
				"lifetime": object{
					"type":    "integer",
					"minimum": MultisignatureMinLifetime,
					"maximum": MultisignatureMaxLifetime,
				},
				"keysgroup": object{
					"type":        "array",
					"uniqueItems": true,
					"minItems":    MultisignatureMinKeysgroup,
					"maxItems":    MultisignatureMaxKeysgroup,
					"items":       object{"type": "string", "format": "additionPublicKey"},
				},
			},
		},
	},
})

// Type - multisignature registration
func (a *MultisignatureAsset) Type() Type {
	return MultisignatureType
}

// Fee - the base fee for the sender and for each member
func (a *MultisignatureAsset) Fee() amount.Amount {
	return MultisignatureFee.Mul(amount.New(int64(len(a.Multisignature.Keysgroup) + 1)))
}

func (a *MultisignatureAsset) bytes() ([]byte, error) {
	m := a.Multisignature
	if m.Min < 0 || m.Min > 255 || m.Lifetime < 0 || m.Lifetime > 255 {
		return nil, fault.ErrInvalidAsset
	}
	message := []byte{byte(m.Min), byte(m.Lifetime)}
	return append(message, strings.Join(m.Keysgroup, "")...), nil
}

// member keys without the prefix
func (a *MultisignatureAsset) members() []string {
	keys := make([]string, 0, len(a.Multisignature.Keysgroup))
	for _, k := range a.Multisignature.Keysgroup {
		keys = append(keys, strings.TrimPrefix(k, additionPrefix))
	}
	return keys
}

// the registration is authorised by the members it names
func (a *MultisignatureAsset) signers() ([]string, int) {
	return a.members(), a.Multisignature.Min
}

func (a *MultisignatureAsset) validate(tx *Transaction) []*fault.TransactionError {
	errors := assetSchemaErrors(tx, multisignatureSchema, a)
	errors = append(errors, zeroAmountErrors(tx, "Amount must be zero for multisignature registration transaction")...)
	if 0 != len(errors) {
		return errors
	}

	if a.Multisignature.Min > len(a.Multisignature.Keysgroup) {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, "Invalid multisignature min. Must be less than or equal to keysgroup size", tx.id, ".asset.multisignature.min", a.Multisignature.Min, len(a.Multisignature.Keysgroup)))
	}
	return append(errors, noRecipientErrors(tx)...)
}

func (a *MultisignatureAsset) apply(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	sender := store.GetOrDefault(tx.senderID).Clone()

	if sender.IsMultisignature() {
		errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Register multisignature only allowed once per account.", tx.id, ".signatures"))
	}
	if containsString(a.Multisignature.Keysgroup, additionPrefix+sender.PublicKey) {
		errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Invalid multisignature keysgroup. Can not contain sender", tx.id, ".signatures"))
	}
	if 0 != len(errors) {
		return errors
	}

	sender.MembersPublicKeys = a.members()
	sender.MultiMin = a.Multisignature.Min
	sender.MultiLifetime = a.Multisignature.Lifetime
	store.Set(sender.Address, sender)

	// member accounts are created as needed and learn their public key
	for _, publicKey := range sender.MembersPublicKeys {
		address, err := cryptography.AddressFromPublicKey(publicKey)
		if nil != err {
			errors = append(errors, fault.NewTransactionErrorWithValues(fault.AssetKind, err.Error(), tx.id, ".asset.multisignature.keysgroup", publicKey, nil))
			continue
		}
		member := store.GetOrDefault(address).Clone()
		if "" == member.PublicKey {
			member.PublicKey = publicKey
		}
		store.Set(member.Address, member)
	}
	return errors
}

func (a *MultisignatureAsset) undo(tx *Transaction, store AccountStore) []*fault.TransactionError {
	sender := store.GetOrDefault(tx.senderID).Clone()
	sender.MembersPublicKeys = nil
	sender.MultiMin = 0
	sender.MultiLifetime = 0
	store.Set(sender.Address, sender)
	return nil
}

func (a *MultisignatureAsset) verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	for _, other := range sameSenderAndType(tx, others) {
		errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Register multisignature only allowed once per account.", other.id, ".asset.multisignature"))
	}
	return errors
}

func (a *MultisignatureAsset) selectors(tx *Transaction) []Selector {
	selectors := make([]Selector, 0, len(a.Multisignature.Keysgroup))
	for _, publicKey := range a.members() {
		address, err := cryptography.AddressFromPublicKey(publicKey)
		if nil != err {
			continue
		}
		selectors = append(selectors, Selector{Address: address})
	}
	return selectors
}

func (a *MultisignatureAsset) fromSync(row SyncRow) interface{} {
	keysgroup := row.list("m_keysgroup")
	if 0 == len(keysgroup) {
		return nil
	}
	asset := &MultisignatureAsset{
		Multisignature: Multisignature{
			Keysgroup: keysgroup,
		},
	}
	if min, err := row.integer("m_min"); nil == err {
		asset.Multisignature.Min = int(min)
	}
	if lifetime, err := row.integer("m_lifetime"); nil == err {
		asset.Multisignature.Lifetime = int(lifetime)
	}
	return asset
}
