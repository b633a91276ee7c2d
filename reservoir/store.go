// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sort"
	"time"

	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// Store - validate a transaction and add it to the pool
//
// the account store supplies the sender's multisignature group; a
// transaction that fails validation or whose signatures are invalid
// is not pooled and its response is returned
func Store(tx *transaction.Transaction, store transaction.AccountStore) (*transaction.Response, error) {
	response := tx.Validate()
	if !response.OK() {
		return response, nil
	}

	multisignature := tx.ProcessMultisignatures(store)
	if transaction.StatusFail == multisignature.Status {
		return multisignature, nil
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil, fault.ErrNotInitialised
	}

	if _, ok := globalData.entries[tx.ID()]; ok {
		globalData.log.Debugf("duplicate transaction: %s", tx.ID())
		return nil, fault.ErrTransactionAlreadyExists
	}

	// stamps the receipt time
	tx.IsExpired(multisignature.Multisignature, time.Now())

	globalData.entries[tx.ID()] = &entry{
		tx:       tx,
		status:   multisignature.Multisignature,
		received: *tx.ReceivedAt,
	}
	globalData.log.Infof("stored: %s  type: %s  status: %s", tx.ID(), tx.Type(), multisignature.Multisignature)

	return multisignature, nil
}

// AddSignature - add a co-signature to a pooled transaction
func AddSignature(signature *transaction.SignatureObject, store transaction.AccountStore) (*transaction.Response, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil, fault.ErrNotInitialised
	}

	e, ok := globalData.entries[signature.TransactionID]
	if !ok {
		return nil, fault.ErrTransactionNotFound
	}

	response := e.tx.AddMultisignature(store, signature)
	if transaction.StatusFail == response.Status {
		globalData.log.Warnf("signature rejected: %s  errors: %d", signature.TransactionID, len(response.Errors))
		return response, nil
	}

	e.status = response.Multisignature
	globalData.log.Infof("signature added: %s  status: %s", signature.TransactionID, e.status)

	return response, nil
}

// Get - a pooled transaction and its collection state
func Get(id string) (*transaction.Transaction, transaction.MultisignatureStatus, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	e, ok := globalData.entries[id]
	if !ok {
		return nil, transaction.MultisignatureUnknown, false
	}
	return e.tx, e.status, true
}

// Remove - drop transactions, e.g. after they are included in a block
func Remove(ids ...string) {
	globalData.Lock()
	defer globalData.Unlock()

	for _, id := range ids {
		delete(globalData.entries, id)
	}
}

// Ready - transactions that need no further signatures
//
// ordered by receipt time then id
func Ready() []*transaction.Transaction {
	globalData.RLock()
	defer globalData.RUnlock()

	ready := make([]*entry, 0, len(globalData.entries))
	for _, e := range globalData.entries {
		if e.status.IsReady() {
			ready = append(ready, e)
		}
	}

	sort.Slice(ready, func(i, j int) bool {
		if ready[i].received.Equal(ready[j].received) {
			return ready[i].tx.ID() < ready[j].tx.ID()
		}
		return ready[i].received.Before(ready[j].received)
	})

	txs := make([]*transaction.Transaction, len(ready))
	for i, e := range ready {
		txs[i] = e.tx
	}
	return txs
}
