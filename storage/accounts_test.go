// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/fixtures"
	"github.com/phaetonhq/phaeton-transactions/storage"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

func TestGetMissingAccount(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	_, err := s.Get(fixtures.Sender.Address)
	assert.Equal(t, fault.ErrAccountNotFound, err, "wrong error")

	a := s.GetOrDefault(fixtures.Sender.Address)
	assert.Equal(t, fixtures.Sender.Address, a.Address, "wrong address")
	assert.True(t, a.Balance.IsZero(), "default balance")
}

func TestReturnedAccountsAreCopies(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	a := account.Default(fixtures.Sender.Address)
	a.Balance = amount.New(1000)
	a.VotedDelegatesPublicKeys = []string{fixtures.Delegate.PublicKey}
	s.Set(a.Address, a)

	a.Balance = amount.New(1)

	b, err := s.Get(fixtures.Sender.Address)
	assert.Nil(t, err, "get")
	assert.Equal(t, "1000", b.Balance.String(), "set did not copy")

	b.VotedDelegatesPublicKeys[0] = "changed"

	c, err := s.Get(fixtures.Sender.Address)
	assert.Nil(t, err, "get")
	assert.Equal(t, fixtures.Delegate.PublicKey, c.VotedDelegatesPublicKeys[0], "get did not copy")
}

func TestCommitAndRollback(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	a := account.Default(fixtures.Sender.Address)
	a.Balance = amount.New(100000000)
	a.PublicKey = fixtures.Sender.PublicKey
	s.Set(a.Address, a)

	err := s.Commit()
	assert.Nil(t, err, "commit")

	b := account.Default(fixtures.Recipient.Address)
	b.Balance = amount.New(5)
	s.Set(b.Address, b)
	s.Rollback()

	// a fresh store sees only committed state
	fresh := storage.NewAccountStore(db)

	stored, err := fresh.Get(fixtures.Sender.Address)
	assert.Nil(t, err, "committed account")
	assert.Equal(t, "100000000", stored.Balance.String(), "wrong balance")
	assert.Equal(t, fixtures.Sender.PublicKey, stored.PublicKey, "wrong public key")

	_, err = fresh.Get(fixtures.Recipient.Address)
	assert.Equal(t, fault.ErrAccountNotFound, err, "rolled back account was stored")

	_, err = s.Get(fixtures.Recipient.Address)
	assert.Equal(t, fault.ErrAccountNotFound, err, "rollback did not clear snapshot")
}

func TestCacheBySelectors(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	d := account.Default(fixtures.Delegate.Address)
	d.PublicKey = fixtures.Delegate.PublicKey
	d.Username = "delegate_one"
	d.IsDelegate = 1
	s.Set(d.Address, d)

	r := account.Default(fixtures.Recipient.Address)
	r.Balance = amount.New(7)
	s.Set(r.Address, r)

	err := s.Commit()
	assert.Nil(t, err, "commit")

	selectors := []transaction.Selector{
		{Username: "delegate_one"},
		{PublicKey: fixtures.Recipient.PublicKey},
		{Address: fixtures.Alpha.Address},
		{Username: "nobody"},
	}
	err = s.Cache(context.Background(), selectors)
	assert.Nil(t, err, "cache")

	found, ok := s.Find(func(a *account.Account) bool {
		return "delegate_one" == a.Username
	})
	assert.True(t, ok, "username not found")
	assert.Equal(t, fixtures.Delegate.Address, found.Address, "wrong delegate")

	got, err := s.Get(fixtures.Recipient.Address)
	assert.Nil(t, err, "recipient")
	assert.Equal(t, "7", got.Balance.String(), "wrong balance")
}

func TestCacheCancelled(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Cache(ctx, []transaction.Selector{{Address: fixtures.Sender.Address}})
	assert.Equal(t, context.Canceled, err, "wrong error")
}

func TestFindPrefersSnapshot(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	d := account.Default(fixtures.Delegate.Address)
	d.Username = "delegate_one"
	s.Set(d.Address, d)
	assert.Nil(t, s.Commit(), "commit")

	// the uncommitted removal hides the stored username
	d.Username = ""
	s.Set(d.Address, d)

	_, ok := s.Find(func(a *account.Account) bool {
		return "delegate_one" == a.Username
	})
	assert.False(t, ok, "found stale database record")

	s.Rollback()

	_, ok = s.Find(func(a *account.Account) bool {
		return "delegate_one" == a.Username
	})
	assert.True(t, ok, "database record not found")
}

func TestUsernameIndexFollowsChanges(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := storage.NewAccountStore(db)

	d := account.Default(fixtures.Delegate.Address)
	d.Username = "delegate_one"
	s.Set(d.Address, d)
	assert.Nil(t, s.Commit(), "commit")

	d.Username = ""
	s.Set(d.Address, d)
	assert.Nil(t, s.Commit(), "commit")

	fresh := storage.NewAccountStore(db)
	err := fresh.Cache(context.Background(), []transaction.Selector{{Username: "delegate_one"}})
	assert.Nil(t, err, "cache")

	_, ok := fresh.Find(func(a *account.Account) bool {
		return "delegate_one" == a.Username
	})
	assert.False(t, ok, "username still present")
}
