// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// AccountStore - account gateway over the accounts database
//
// implements transaction.AccountStore; all accounts handed out are
// copies so changes only take effect through Set
type AccountStore struct {
	sync.Mutex
	log       *logger.L
	database  *leveldb.DB
	accounts  *PoolHandle
	usernames *PoolHandle
	snapshot  *snapshot
}

// check interface
var _ transaction.AccountStore = (*AccountStore)(nil)

// NewAccountStore - create a store with an empty snapshot
func NewAccountStore(database *leveldb.DB) *AccountStore {
	return &AccountStore{
		log:       logger.New("storage"),
		database:  database,
		accounts:  newPoolHandle(database, accountPrefix),
		usernames: newPoolHandle(database, usernamePrefix),
		snapshot:  newSnapshot(),
	}
}

// Cache - load the selected accounts into the snapshot
//
// selectors that match no stored account are ignored
func (s *AccountStore) Cache(ctx context.Context, selectors []transaction.Selector) error {
	s.Lock()
	defer s.Unlock()

	for _, selector := range selectors {
		if err := ctx.Err(); nil != err {
			return err
		}

		address, err := s.resolve(selector)
		if nil != err {
			return err
		}
		if "" == address {
			continue
		}

		if _, err := s.load(address); nil != err && fault.ErrAccountNotFound != err {
			return err
		}
	}

	s.log.Debugf("cached: %d  snapshot: %d", len(selectors), s.snapshot.count())
	return nil
}

// turn a selector into an address
func (s *AccountStore) resolve(selector transaction.Selector) (string, error) {
	switch {
	case "" != selector.Address:
		return selector.Address, nil

	case "" != selector.PublicKey:
		address, err := cryptography.AddressFromPublicKey(selector.PublicKey)
		if nil != err {
			s.log.Warnf("invalid selector public key: %q", selector.PublicKey)
			return "", nil
		}
		return address, nil

	case "" != selector.Username:
		value, err := s.usernames.get([]byte(selector.Username))
		if nil != err {
			return "", err
		}
		return string(value), nil

	default:
		return "", nil
	}
}

// fetch an account into the snapshot
func (s *AccountStore) load(address string) (*account.Account, error) {
	if data, ok := s.snapshot.get(address); ok {
		return data.account, nil
	}

	value, err := s.accounts.get([]byte(address))
	if nil != err {
		s.log.Errorf("read account: %s  error: %s", address, err)
		return nil, err
	}
	if nil == value {
		return nil, fault.ErrAccountNotFound
	}

	a := &account.Account{}
	err = json.Unmarshal(value, a)
	if nil != err {
		s.log.Errorf("decode account: %s  error: %s", address, err)
		return nil, err
	}

	s.snapshot.set(address, cacheData{
		op:        opLoad,
		address:   address,
		account:   a,
		committed: a.Username,
	})
	return a, nil
}

// Get - an existing account
func (s *AccountStore) Get(address string) (*account.Account, error) {
	s.Lock()
	defer s.Unlock()

	a, err := s.load(address)
	if nil != err {
		return nil, err
	}
	return a.Clone(), nil
}

// GetOrDefault - an existing account or a zero balance account
func (s *AccountStore) GetOrDefault(address string) *account.Account {
	s.Lock()
	defer s.Unlock()

	a, err := s.load(address)
	if nil != err {
		return account.Default(address)
	}
	return a.Clone()
}

// Set - replace the snapshot copy of an account
func (s *AccountStore) Set(address string, a *account.Account) {
	s.Lock()
	defer s.Unlock()

	committed := ""
	if data, ok := s.snapshot.get(address); ok {
		committed = data.committed
	} else if stored, err := s.load(address); nil == err {
		committed = stored.Username
	}

	s.snapshot.set(address, cacheData{
		op:        opPut,
		address:   address,
		account:   a.Clone(),
		committed: committed,
	})
}

// Find - first account satisfying the predicate
//
// the snapshot is searched before the database; database records
// shadowed by the snapshot are skipped
func (s *AccountStore) Find(predicate func(*account.Account) bool) (*account.Account, bool) {
	s.Lock()
	defer s.Unlock()

	for _, data := range s.snapshot.entries() {
		if predicate(data.account) {
			return data.account.Clone(), true
		}
	}

	var found *account.Account
	err := s.accounts.each(func(e element) bool {
		if _, ok := s.snapshot.get(string(e.key)); ok {
			return true
		}
		a := &account.Account{}
		if err := json.Unmarshal(e.value, a); nil != err {
			s.log.Errorf("decode account: %s  error: %s", e.key, err)
			return true
		}
		if predicate(a) {
			found = a
			return false
		}
		return true
	})
	if nil != err {
		s.log.Errorf("find error: %s", err)
		return nil, false
	}

	return found, nil != found
}

// Commit - write all changed accounts and clear the snapshot
func (s *AccountStore) Commit() error {
	s.Lock()
	defer s.Unlock()

	batch := new(leveldb.Batch)
	changed := 0

	for _, data := range s.snapshot.entries() {
		if opPut != data.op {
			continue
		}

		a := data.account
		value, err := json.Marshal(a)
		if nil != err {
			return err
		}
		s.accounts.put(batch, []byte(data.address), value)

		if data.committed != a.Username {
			if "" != data.committed {
				s.usernames.remove(batch, []byte(data.committed))
			}
			if "" != a.Username {
				s.usernames.put(batch, []byte(a.Username), []byte(data.address))
			}
		}
		changed += 1
	}

	err := s.database.Write(batch, nil)
	if nil != err {
		s.log.Criticalf("commit of %d accounts failed: %s", changed, err)
		return err
	}

	s.log.Infof("committed: %d accounts", changed)
	s.snapshot.clear()
	return nil
}

// Rollback - discard every change since the last commit
func (s *AccountStore) Rollback() {
	s.Lock()
	defer s.Unlock()

	s.log.Debugf("rollback: %d entries", s.snapshot.count())
	s.snapshot.clear()
}
