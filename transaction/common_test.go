// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/fixtures"
	"github.com/phaetonhq/phaeton-transactions/storage"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// fixed values of the reference transfer
const (
	transferTimestamp = 12345
	transferAmount    = 50000000

	transferBasicBytes = "0039300000" +
		"c094ebee7ec0c50ebee32918655e089f6e1a604b83bcaa760293c61e0f18ab6f" +
		"aacdcfe43500681a" +
		"80f0fa0200000000"
	transferSignature = "de5a43184fcceb95fad4b3969daeb90390797b6ff1efb7a325644a8bf8cb5f7b" +
		"c9fcab97d8a2ef40a2133a785365b203555b5f44e8cf1e239755862f7da21f04"
	transferID = "4929104417428056846"

	// with a second signature by fixtures.Second
	transferSignSignature = "eae1865aa87eaa0385e52f32f655a47328799d8dba70f9469cf7c8098b1dd902" +
		"2d88dd17240f7a7aaf3653511b8822f7c0a164632490e10d0731a92d9b228a0d"
	transferSecondID = "9980303463650916851"
)

// configure for testing
func setup(t *testing.T) (*storage.AccountStore, func()) {
	fixtures.SetupTestLogger()

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}

	return storage.NewAccountStore(db), func() {
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

// store an account with a balance
func fund(store transaction.AccountStore, id fixtures.Identity, beddows int64) *account.Account {
	a := account.Default(id.Address)
	a.Balance = amount.New(beddows)
	store.Set(a.Address, a)
	return a
}

// current state of an account
func balanceOf(store transaction.AccountStore, address string) string {
	return store.GetOrDefault(address).Balance.String()
}

// the reference transfer from fixtures.Sender to fixtures.Recipient
func referenceTransfer() *transaction.Unsigned {
	return &transaction.Unsigned{
		Timestamp:   transferTimestamp,
		RecipientID: fixtures.Recipient.Address,
		Amount:      amount.New(transferAmount),
		Fee:         transaction.TransferFee,
		Asset:       &transaction.TransferAsset{},
	}
}

func signed(t *testing.T, u *transaction.Unsigned, passphrase string, secondPassphrase string) *transaction.Transaction {
	tx, err := u.Sign(passphrase, secondPassphrase)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return tx
}

// errors of one kind
func errorsOfKind(errors []*fault.TransactionError, kind fault.Kind) []*fault.TransactionError {
	result := []*fault.TransactionError{}
	for _, e := range errors {
		if kind == e.Kind {
			result = append(result, e)
		}
	}
	return result
}

// true if any error has the message
func hasMessage(errors []*fault.TransactionError, message string) bool {
	for _, e := range errors {
		if message == e.Message {
			return true
		}
	}
	return false
}
