// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fixtures"
	"github.com/phaetonhq/phaeton-transactions/storage"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// configure for testing
func setup(t *testing.T) (*storage.AccountStore, *logger.L, func()) {
	fixtures.SetupTestLogger()

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}

	store := storage.NewAccountStore(db)

	sender := account.Default(fixtures.Sender.Address)
	sender.Balance = amount.New(1000000000)
	store.Set(sender.Address, sender)
	err = store.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	return store, logger.New("main"), func() {
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

func transfer(t *testing.T, beddows int64) *transaction.Transaction {
	u, err := transaction.NewTransfer(fixtures.Recipient.Address, amount.New(beddows), "")
	if nil != err {
		t.Fatalf("builder error: %s", err)
	}
	tx, err := u.Sign(fixtures.Sender.Passphrase, "")
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return tx
}

func balance(store *storage.AccountStore, address string) string {
	return store.GetOrDefault(address).Balance.String()
}

func TestApplyAndUndoBatch(t *testing.T) {
	store, log, teardown := setup(t)
	defer teardown()

	txs := []*transaction.Transaction{
		transfer(t, 100000000),
		transfer(t, 200000000),
	}

	responses, err := applyBatch(context.Background(), log, store, txs)
	assert.Nil(t, err, "apply")
	assert.Equal(t, 2, len(responses), "wrong response count")
	for i, r := range responses {
		assert.True(t, r.OK(), "%d: errors: %v", i, r.Errors)
	}

	assert.Equal(t, "680000000", balance(store, fixtures.Sender.Address), "wrong sender balance")
	assert.Equal(t, "300000000", balance(store, fixtures.Recipient.Address), "wrong recipient balance")

	responses, err = undoBatch(context.Background(), log, store, txs)
	assert.Nil(t, err, "undo")
	assert.Equal(t, txs[0].ID(), responses[0].ID, "responses out of order")

	assert.Equal(t, "1000000000", balance(store, fixtures.Sender.Address), "sender not restored")
	assert.Equal(t, "0", balance(store, fixtures.Recipient.Address), "recipient not restored")
}

func TestApplyBatchRejected(t *testing.T) {
	store, log, teardown := setup(t)
	defer teardown()

	txs := []*transaction.Transaction{
		transfer(t, 100000000),
		transfer(t, 2000000000),
	}

	responses, err := applyBatch(context.Background(), log, store, txs)
	assert.Equal(t, ErrBatchRejected, err, "wrong error")
	assert.True(t, responses[0].OK(), "first transfer failed")
	assert.False(t, responses[1].OK(), "overdraft accepted")

	assert.Equal(t, "1000000000", balance(store, fixtures.Sender.Address), "rejected batch changed balance")
	assert.Equal(t, "0", balance(store, fixtures.Recipient.Address), "rejected batch changed balance")
}

func TestApplyBatchConflict(t *testing.T) {
	store, log, teardown := setup(t)
	defer teardown()

	txs := []*transaction.Transaction{}
	for _, second := range []string{"first second", "other second"} {
		u, err := transaction.NewSecondSignature(second)
		require.NoError(t, err, "builder")
		tx, err := u.Sign(fixtures.Sender.Passphrase, "")
		require.NoError(t, err, "sign")
		txs = append(txs, tx)
	}

	responses, err := applyBatch(context.Background(), log, store, txs)
	assert.Equal(t, ErrBatchRejected, err, "conflict accepted")
	assert.False(t, responses[0].OK(), "conflict accepted")
	assert.False(t, responses[1].OK(), "conflict accepted")

	a := store.GetOrDefault(fixtures.Sender.Address)
	assert.False(t, a.HasSecondSignature(), "second signature registered")
}

func TestFillPool(t *testing.T) {
	store, _, teardown := setup(t)
	defer teardown()

	u, err := transaction.NewMultisignature([]string{fixtures.Alpha.PublicKey, fixtures.Beta.PublicKey}, 2, 1)
	require.NoError(t, err, "builder")
	registration, err := u.Sign(fixtures.Sender.Passphrase, "")
	require.NoError(t, err, "sign")

	signatures := []*transaction.SignatureObject{}
	for _, id := range []fixtures.Identity{fixtures.Alpha, fixtures.Beta} {
		s, err := transaction.CreateSignatureObject(registration, id.Passphrase)
		require.NoError(t, err, "co-sign")
		signatures = append(signatures, s)
	}

	plain := transfer(t, 1)
	txs := []*transaction.Transaction{registration, plain}

	result, err := fillPool(context.Background(), store, time.Hour, txs, signatures)
	assert.Nil(t, err, "fill pool")
	assert.Equal(t, 4, len(result.Responses), "wrong response count")
	assert.True(t, result.Responses[0].Pending(), "registration not pending")
	assert.True(t, result.Responses[3].OK(), "registration not complete")
	assert.Equal(t, 0, result.Collecting, "still collecting")
	assert.ElementsMatch(t, []string{registration.ID(), plain.ID()}, result.Ready, "wrong ready list")
}

func TestReadTransactions(t *testing.T) {
	dir, err := ioutil.TempDir("", "phaeton-ledger")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	txs := []*transaction.Transaction{transfer(t, 5)}
	b, err := json.Marshal(txs)
	require.NoError(t, err, "encode")

	fileName := filepath.Join(dir, "batch.json")
	err = ioutil.WriteFile(fileName, b, 0600)
	require.NoError(t, err, "write")

	actual, err := readTransactions(fileName)
	assert.Nil(t, err, "read")
	assert.Equal(t, 1, len(actual), "wrong count")
	assert.Equal(t, txs[0].ID(), actual[0].ID(), "wrong transaction")

	_, err = readTransactions(filepath.Join(dir, "missing.json"))
	assert.NotNil(t, err, "missing file accepted")
}
