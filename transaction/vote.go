// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"
	"strings"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/schema"
)

// VoteAsset - votes prefixed "+" to vote for and "-" to remove a vote
type VoteAsset struct {
	Votes []string `json:"votes,omitempty"`
}

var voteSchema = schema.MustCompile(object{
	"type":     "object",
	"required": list{"votes"},
	"properties": object{
		"votes": object{
			"type":     "array",
			"minItems": MinVotesPerTransaction,
			"maxItems": MaxVotesPerTransaction,
			"items":    object{"type": "string", "format": "signedPublicKey"},
		},
	},
})

// Type - vote
func (a *VoteAsset) Type() Type {
	return VoteType
}

// Fee - fixed vote fee
func (a *VoteAsset) Fee() amount.Amount {
	return VoteFee
}

func (a *VoteAsset) bytes() ([]byte, error) {
	return []byte(strings.Join(a.Votes, "")), nil
}

// public keys without the prefix
func (a *VoteAsset) publicKeys() []string {
	keys := make([]string, 0, len(a.Votes))
	for _, v := range a.Votes {
		keys = append(keys, unprefixed(v))
	}
	return keys
}

// split into keys voted for and keys unvoted
func (a *VoteAsset) split() (upvotes []string, unvotes []string) {
	for _, v := range a.Votes {
		if strings.HasPrefix(v, upvotePrefix) {
			upvotes = append(upvotes, unprefixed(v))
		} else if strings.HasPrefix(v, unvotePrefix) {
			unvotes = append(unvotes, unprefixed(v))
		}
	}
	return
}

func unprefixed(vote string) string {
	if "" == vote {
		return vote
	}
	return vote[1:]
}

func (a *VoteAsset) validate(tx *Transaction) []*fault.TransactionError {
	errors := assetSchemaErrors(tx, voteSchema, a)

	// a key may appear only once whatever its prefix
	seen := make(map[string]struct{}, len(a.Votes))
	for _, key := range a.publicKeys() {
		if _, ok := seen[key]; ok {
			errors = append(errors, fault.NewTransactionErrorWithValues(fault.SchemaKind, "should NOT have duplicate public keys", tx.id, ".asset.votes", key, nil))
			break
		}
		seen[key] = struct{}{}
	}

	errors = append(errors, zeroAmountErrors(tx, "Amount must be zero for vote transaction")...)
	return append(errors, recipientErrors(tx, "RecipientId must be set for vote transaction")...)
}

func (a *VoteAsset) apply(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	sender := store.GetOrDefault(tx.senderID).Clone()

	balance, e := debit(tx.id, sender, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}

	upvotes, unvotes := a.split()
	for _, key := range upvotes {
		delegate, found := store.Find(func(other *account.Account) bool {
			return key == other.PublicKey
		})
		if !found || "" == delegate.Username {
			errors = append(errors, fault.NewTransactionError(fault.AssetKind, key+" is not a delegate.", tx.id, ".asset.votes"))
		}
	}

	for _, key := range upvotes {
		if sender.HasVoted(key) {
			errors = append(errors, fault.NewTransactionError(fault.AssetKind, key+" is already voted.", tx.id, ".asset.votes"))
		}
	}
	for _, key := range unvotes {
		if !sender.HasVoted(key) {
			errors = append(errors, fault.NewTransactionError(fault.AssetKind, key+" is not voted.", tx.id, ".asset.votes"))
		}
	}

	voted := mergeVotes(sender.VotedDelegatesPublicKeys, upvotes, unvotes)
	if e := voteLimitError(tx.id, voted); nil != e {
		errors = append(errors, e)
	}

	sender.Balance = balance
	sender.VotedDelegatesPublicKeys = voted
	store.Set(sender.Address, sender)
	return errors
}

// the original votes are restored: unvotes are added back and upvotes removed
func (a *VoteAsset) undo(tx *Transaction, store AccountStore) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	sender := store.GetOrDefault(tx.senderID).Clone()

	balance, e := credit(tx.id, sender, tx.amount)
	if nil != e {
		errors = append(errors, e)
	}

	upvotes, unvotes := a.split()
	voted := mergeVotes(sender.VotedDelegatesPublicKeys, unvotes, upvotes)
	if e := voteLimitError(tx.id, voted); nil != e {
		errors = append(errors, e)
	}

	sender.Balance = balance
	sender.VotedDelegatesPublicKeys = voted
	store.Set(sender.Address, sender)
	return errors
}

// original plus added, less removed
func mergeVotes(original []string, added []string, removed []string) []string {
	voted := make([]string, 0, len(original)+len(added))
	for _, key := range append(append([]string{}, original...), added...) {
		if !containsString(removed, key) {
			voted = append(voted, key)
		}
	}
	return voted
}

func voteLimitError(id string, voted []string) *fault.TransactionError {
	if len(voted) <= MaxVotesPerAccount {
		return nil
	}
	message := fmt.Sprintf("Vote cannot exceed %d but has %d.", MaxVotesPerAccount, len(voted))
	return fault.NewTransactionErrorWithValues(fault.AssetKind, message, id, ".asset.votes", len(voted), MaxVotesPerAccount)
}

func (a *VoteAsset) verifyAgainst(tx *Transaction, others []*Transaction) []*fault.TransactionError {
	errors := []*fault.TransactionError{}
	keys := a.publicKeys()
	for _, other := range sameSenderAndType(tx, others) {
		otherVotes, ok := other.asset.(*VoteAsset)
		if !ok {
			continue
		}
		conflicts := []string{}
		for _, key := range otherVotes.publicKeys() {
			if containsString(keys, key) {
				conflicts = append(conflicts, key)
			}
		}
		if 0 != len(conflicts) {
			errors = append(errors, fault.NewTransactionError(fault.AssetKind, "Transaction includes conflicting votes: "+strings.Join(conflicts, ","), tx.id, ".asset.votes"))
		}
	}
	return errors
}

func (a *VoteAsset) selectors(tx *Transaction) []Selector {
	selectors := make([]Selector, 0, len(a.Votes))
	for _, key := range a.publicKeys() {
		selectors = append(selectors, Selector{PublicKey: key})
	}
	return selectors
}

func (a *VoteAsset) fromSync(row SyncRow) interface{} {
	votes := row.list("v_votes")
	if 0 == len(votes) {
		return nil
	}
	return &VoteAsset{Votes: votes}
}
