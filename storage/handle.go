// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// the pools of the accounts database
const (
	accountPrefix  = 'A'
	usernamePrefix = 'U'
)

// PoolHandle - one prefixed key range of the database
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// a binary data item
type element struct {
	key   []byte
	value []byte
}

func newPoolHandle(database *leveldb.DB, prefix byte) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix:   prefix,
		limit:    limit,
		database: database,
	}
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) get(key []byte) ([]byte, error) {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// queue a put in a batch
func (p *PoolHandle) put(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// queue a delete in a batch
func (p *PoolHandle) remove(batch *leveldb.Batch, key []byte) {
	batch.Delete(p.prefixKey(key))
}

// call f for every element of the pool until it returns false
func (p *PoolHandle) each(f func(e element) bool) error {
	r := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := p.database.NewIterator(&r, nil)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		// copy as the iterator reuses its buffers
		e := element{
			key:   append([]byte{}, key[1:]...),
			value: append([]byte{}, value...),
		}
		if !f(e) {
			break
		}
	}
	return iter.Error()
}
