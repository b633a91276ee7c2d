// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"

	cache "github.com/patrickmn/go-cache"

	"github.com/phaetonhq/phaeton-transactions/account"
)

// snapshot operations
const (
	opLoad = iota // read from the database, unchanged
	opPut         // changed, must be written on commit
)

type cacheData struct {
	op        int
	address   string
	account   *account.Account
	committed string // username stored in the database when loaded
}

// snapshot - working copies of the accounts of one batch
//
// entries never expire, they are removed by clear
type snapshot struct {
	cache *cache.Cache
}

func newSnapshot() *snapshot {
	return &snapshot{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *snapshot) get(address string) (cacheData, bool) {
	obj, found := s.cache.Get(address)
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (s *snapshot) set(address string, data cacheData) {
	s.cache.Set(address, data, cache.NoExpiration)
}

// all entries ordered by address
func (s *snapshot) entries() []cacheData {
	items := s.cache.Items()
	addresses := make([]string, 0, len(items))
	for address := range items {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	result := make([]cacheData, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, items[address].Object.(cacheData))
	}
	return result
}

func (s *snapshot) count() int {
	return s.cache.ItemCount()
}

func (s *snapshot) clear() {
	s.cache.Flush()
}
