// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/reservoir"
	"github.com/phaetonhq/phaeton-transactions/storage"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                    (h)      - display this message\n\n")
		fmt.Printf("  version                 (v)      - display version string\n\n")
		fmt.Printf("  apply FILE              (a)      - apply a JSON array of transactions as one batch\n\n")
		fmt.Printf("  undo FILE               (u)      - undo a JSON array of transactions in reverse order\n\n")
		fmt.Printf("  account ADDRESS...      (acc)    - show committed account state\n\n")
		fmt.Printf("  pool FILE [SIGNATURES]  (p)      - load transactions into the unconfirmed pool\n")
		fmt.Printf("                                     and add co-signatures, then show what is ready\n\n")

	default:
		return false
	}
	return true
}

// configuration command handler
//
// commands that need the configuration and open the database
func processCommand(log *logger.L, w io.Writer, configuration *Configuration, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "apply", "a", "undo", "u":
		if 1 != len(arguments) {
			return ErrMissingArgument
		}
		txs, err := readTransactions(arguments[0])
		if nil != err {
			return err
		}

		db, err := storage.Open(configuration.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}
		defer db.Close()

		store := storage.NewAccountStore(db)
		ctx := context.Background()

		var responses []*transaction.Response
		if "apply" == command || "a" == command {
			responses, err = applyBatch(ctx, log, store, txs)
		} else {
			responses, err = undoBatch(ctx, log, store, txs)
		}
		if nil != responses {
			printJson(w, responses)
		}
		return err

	case "account", "acc":
		if 0 == len(arguments) {
			return ErrMissingArgument
		}

		db, err := storage.Open(configuration.Database.Name, storage.ReadOnly)
		if nil != err {
			return err
		}
		defer db.Close()

		store := storage.NewAccountStore(db)
		accounts := make([]*account.Account, 0, len(arguments))
		for _, address := range arguments {
			err := account.ValidateAddress(address)
			if nil != err {
				return err
			}
			accounts = append(accounts, store.GetOrDefault(address))
		}
		return printJson(w, accounts)

	case "pool", "p":
		if len(arguments) < 1 || len(arguments) > 2 {
			return ErrMissingArgument
		}

		txs, err := readTransactions(arguments[0])
		if nil != err {
			return err
		}
		signatures := []*transaction.SignatureObject{}
		if 2 == len(arguments) {
			signatures, err = readSignatures(arguments[1])
			if nil != err {
				return err
			}
		}

		db, err := storage.Open(configuration.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}
		defer db.Close()

		interval := time.Duration(configuration.Reservoir.ExpiryInterval) * time.Second
		result, err := fillPool(context.Background(), storage.NewAccountStore(db), interval, txs, signatures)
		if nil != err {
			return err
		}
		return printJson(w, result)

	default:
		return ErrUnknownCommand
	}
}

type poolResult struct {
	Responses  []*transaction.Response `json:"responses"`
	Collecting int                     `json:"collecting"`
	Ready      []string                `json:"ready"`
}

// run transactions and co-signatures through the pool
func fillPool(ctx context.Context, store *storage.AccountStore, interval time.Duration, txs []*transaction.Transaction, signatures []*transaction.SignatureObject) (*poolResult, error) {
	err := reservoir.Initialise(interval)
	if nil != err {
		return nil, err
	}
	defer reservoir.Finalise()

	// the pool only reads account state
	defer store.Rollback()

	result := &poolResult{
		Responses: make([]*transaction.Response, 0, len(txs)+len(signatures)),
		Ready:     []string{},
	}

	for _, tx := range txs {
		err := tx.Prepare(ctx, store)
		if nil != err {
			return nil, err
		}
		response, err := reservoir.Store(tx, store)
		if nil != err {
			return nil, err
		}
		result.Responses = append(result.Responses, response)
	}

	for _, signature := range signatures {
		response, err := reservoir.AddSignature(signature, store)
		if nil != err {
			return nil, err
		}
		result.Responses = append(result.Responses, response)
	}

	result.Collecting, _ = reservoir.ReadCounters()
	for _, tx := range reservoir.Ready() {
		result.Ready = append(result.Ready, tx.ID())
	}

	return result, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
