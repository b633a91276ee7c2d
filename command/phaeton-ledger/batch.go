// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/phaetonhq/phaeton-transactions/storage"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// read a JSON array of transactions
func readTransactions(fileName string) ([]*transaction.Transaction, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	txs := []*transaction.Transaction{}
	err = json.Unmarshal(b, &txs)
	if nil != err {
		return nil, err
	}
	return txs, nil
}

// read a JSON array of co-signatures
func readSignatures(fileName string) ([]*transaction.SignatureObject, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	signatures := []*transaction.SignatureObject{}
	err = json.Unmarshal(b, &signatures)
	if nil != err {
		return nil, err
	}
	return signatures, nil
}

// apply a batch as one unit
//
// every transaction is validated against its account state and the
// rest of the batch; the store is committed only if all succeed
func applyBatch(ctx context.Context, log *logger.L, store *storage.AccountStore, txs []*transaction.Transaction) ([]*transaction.Response, error) {
	responses := make([]*transaction.Response, 0, len(txs))
	failed := 0

	for i, tx := range txs {
		if err := tx.Prepare(ctx, store); nil != err {
			store.Rollback()
			return nil, err
		}

		response := tx.Validate()
		if response.OK() {
			others := make([]*transaction.Transaction, 0, len(txs)-1)
			others = append(others, txs[:i]...)
			others = append(others, txs[i+1:]...)
			response = tx.VerifyAgainstOtherTransactions(others)
		}
		if response.OK() {
			response = tx.Apply(store)
		}

		if !response.OK() {
			log.Warnf("apply: %s  status: %s  errors: %d", tx.ID(), response.Status, len(response.Errors))
			failed += 1
		}
		responses = append(responses, response)
	}

	if 0 != failed {
		store.Rollback()
		return responses, ErrBatchRejected
	}

	log.Infof("applied: %d transactions", len(txs))
	return responses, store.Commit()
}

// undo a batch in reverse order as one unit
func undoBatch(ctx context.Context, log *logger.L, store *storage.AccountStore, txs []*transaction.Transaction) ([]*transaction.Response, error) {
	responses := make([]*transaction.Response, len(txs))
	failed := 0

	for i := len(txs) - 1; i >= 0; i -= 1 {
		tx := txs[i]
		if err := tx.Prepare(ctx, store); nil != err {
			store.Rollback()
			return nil, err
		}

		response := tx.Undo(store)
		if !response.OK() {
			log.Warnf("undo: %s  errors: %d", tx.ID(), len(response.Errors))
			failed += 1
		}
		responses[i] = response
	}

	if 0 != failed {
		store.Rollback()
		return responses, ErrBatchRejected
	}

	log.Infof("undone: %d transactions", len(txs))
	return responses, store.Commit()
}
