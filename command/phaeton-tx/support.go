// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/phaetonhq/phaeton-transactions/transaction"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// the signing passphrase from the flag or the terminal
func getPassphrase(m *metadata) (string, error) {
	if "" != m.passphrase {
		return m.passphrase, nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprintf(m.e, "passphrase: ")
	b, err := terminal.ReadPassword(fd)
	fmt.Fprintf(m.e, "\n")
	if nil != err {
		return "", err
	}

	m.passphrase = strings.TrimSpace(string(b))
	return m.passphrase, nil
}

// read a transaction from text or from the reader when text is "-"
func readTransaction(text string, r io.Reader) (*transaction.Transaction, error) {
	if "-" == text {
		b, err := ioutil.ReadAll(r)
		if nil != err {
			return nil, err
		}
		text = string(b)
	}

	text = strings.TrimSpace(text)
	if "" == text {
		return nil, ErrEmptyTransaction
	}

	return transaction.FromJSON([]byte(text))
}

// apply the timestamp offset then sign and print
func signAndPrint(m *metadata, u *transaction.Unsigned) error {
	if 0 != m.offset {
		u.Timestamp = transaction.TimeWithOffset(time.Now(), m.offset)
	}

	passphrase, err := getPassphrase(m)
	if nil != err {
		return err
	}

	tx, err := u.Sign(passphrase, m.secondPassphrase)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", tx.ID())
		fmt.Fprintf(m.e, "sender: %s\n", tx.SenderID())
	}

	return printJson(m.w, tx)
}
