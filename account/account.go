// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/phaetonhq/phaeton-transactions/amount"
)

// Account - state held for one address
type Account struct {
	Address                  string        `json:"address"`
	Balance                  amount.Amount `json:"balance"`
	PublicKey                string        `json:"publicKey,omitempty"`
	SecondPublicKey          string        `json:"secondPublicKey,omitempty"`
	SecondSignature          int           `json:"secondSignature"`
	MembersPublicKeys        []string      `json:"membersPublicKeys,omitempty"`
	MultiMin                 int           `json:"multiMin"`
	MultiLifetime            int           `json:"multiLifetime"`
	VotedDelegatesPublicKeys []string      `json:"votedDelegatesPublicKeys,omitempty"`
	Username                 string        `json:"username,omitempty"`
	IsDelegate               int           `json:"isDelegate"`
}

// Default - the account record of an address never seen before
func Default(address string) *Account {
	return &Account{
		Address: address,
		Balance: amount.Zero,
	}
}

// Clone - deep copy so that the store's copy cannot be changed
// through a returned pointer
func (a *Account) Clone() *Account {
	c := *a
	c.MembersPublicKeys = cloneStrings(a.MembersPublicKeys)
	c.VotedDelegatesPublicKeys = cloneStrings(a.VotedDelegatesPublicKeys)
	return &c
}

// IsMultisignature - true if a members group is registered
func (a *Account) IsMultisignature() bool {
	return 0 != len(a.MembersPublicKeys)
}

// IsMember - true if publicKey is in the members group
func (a *Account) IsMember(publicKey string) bool {
	return contains(a.MembersPublicKeys, publicKey)
}

// HasVoted - true if publicKey is among the voted delegates
func (a *Account) HasVoted(publicKey string) bool {
	return contains(a.VotedDelegatesPublicKeys, publicKey)
}

// HasSecondSignature - true if a second public key is registered
func (a *Account) HasSecondSignature() bool {
	return "" != a.SecondPublicKey
}

func cloneStrings(s []string) []string {
	if nil == s {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
