// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// builders return unsigned transactions timestamped now with the
// required fee; callers may adjust any field before signing

// NewTransfer - send value to a recipient with optional data
func NewTransfer(recipientID string, value amount.Amount, data string) (*Unsigned, error) {
	if nil != account.ValidateAddress(recipientID) {
		return nil, fault.ErrInvalidRecipient
	}
	if value.IsZero() || value.ExceedsMaximum() {
		return nil, fault.ErrAmountOutOfRange
	}
	if !schema.IsTransferData(data) {
		return nil, fault.ErrInvalidAsset
	}
	asset := &TransferAsset{Data: data}
	return newUnsigned(recipientID, value, asset), nil
}

// NewSecondSignature - register the key of a second passphrase
func NewSecondSignature(secondPassphrase string) (*Unsigned, error) {
	if "" == secondPassphrase {
		return nil, fault.ErrMissingPassphrase
	}
	asset := &SecondSignatureAsset{
		Signature: SecondSignature{
			PublicKey: cryptography.KeysFromPassphrase(secondPassphrase).PublicKeyHex(),
		},
	}
	return newUnsigned("", amount.Zero, asset), nil
}

// NewDelegate - register as a delegate
func NewDelegate(username string) (*Unsigned, error) {
	if !schema.IsUsername(username) || "" == username {
		return nil, fault.ErrInvalidUsername
	}
	asset := &DelegateAsset{Delegate: Delegate{Username: username}}
	return newUnsigned("", amount.Zero, asset), nil
}

// NewVote - vote for and remove votes from delegates
//
// the recipient of a vote is the voter and is filled in by Sign
func NewVote(votes []string, unvotes []string) (*Unsigned, error) {
	n := len(votes) + len(unvotes)
	if n < MinVotesPerTransaction || n > MaxVotesPerTransaction {
		return nil, fault.ErrVotesCount
	}
	all := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i, publicKey := range append(append([]string{}, votes...), unvotes...) {
		if err := cryptography.ValidatePublicKey(publicKey); nil != err {
			return nil, err
		}
		if _, ok := seen[publicKey]; ok {
			return nil, fault.ErrDuplicatePublicKey
		}
		seen[publicKey] = struct{}{}
		if i < len(votes) {
			all = append(all, upvotePrefix+publicKey)
		} else {
			all = append(all, unvotePrefix+publicKey)
		}
	}
	return newUnsigned("", amount.Zero, &VoteAsset{Votes: all}), nil
}

// NewMultisignature - register a group of members of whom min must sign
func NewMultisignature(keysgroup []string, min int, lifetime int) (*Unsigned, error) {
	if len(keysgroup) < MultisignatureMinKeysgroup || len(keysgroup) > MultisignatureMaxKeysgroup {
		return nil, fault.ErrKeysgroupSize
	}
	if min < MultisignatureMinKeysgroup || min > len(keysgroup) {
		return nil, fault.ErrMinimumOutOfRange
	}
	if lifetime < MultisignatureMinLifetime || lifetime > MultisignatureMaxLifetime {
		return nil, fault.ErrLifetimeOutOfRange
	}
	group := make([]string, 0, len(keysgroup))
	for _, publicKey := range keysgroup {
		if err := cryptography.ValidatePublicKey(publicKey); nil != err {
			return nil, err
		}
		if containsString(group, additionPrefix+publicKey) {
			return nil, fault.ErrDuplicatePublicKey
		}
		group = append(group, additionPrefix+publicKey)
	}
	asset := &MultisignatureAsset{
		Multisignature: Multisignature{
			Min:       min,
			Lifetime:  lifetime,
			Keysgroup: group,
		},
	}
	return newUnsigned("", amount.Zero, asset), nil
}

func newUnsigned(recipientID string, value amount.Amount, asset Asset) *Unsigned {
	return &Unsigned{
		Timestamp:   TimeWithOffset(time.Now(), 0),
		RecipientID: recipientID,
		Amount:      value,
		Fee:         asset.Fee(),
		Asset:       asset,
	}
}
