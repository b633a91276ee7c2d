// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/phaetonhq/phaeton-transactions/transaction"
)

type bytesResult struct {
	ID     string `json:"id"`
	Basic  string `json:"basic"`
	Signed string `json:"signed"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("transaction"), m.r)
	if nil != err {
		return err
	}

	passphrase, err := getPassphrase(m)
	if nil != err {
		return err
	}

	signature, err := transaction.CreateSignatureObject(tx, passphrase)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %s\n", tx.ID())
		fmt.Fprintf(m.e, "member: %s\n", signature.PublicKey)
	}

	return printJson(m.w, signature)
}

func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("transaction"), m.r)
	if nil != err {
		return err
	}

	response := tx.Validate()

	if m.verbose {
		fmt.Fprintf(m.e, "errors: %d\n", len(response.Errors))
	}

	return printJson(m.w, response)
}

func runBytes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("transaction"), m.r)
	if nil != err {
		return err
	}

	basic, err := tx.BasicBytes()
	if nil != err {
		return err
	}
	signed, err := tx.Bytes()
	if nil != err {
		return err
	}

	return printJson(m.w, bytesResult{
		ID:     tx.ID(),
		Basic:  hex.EncodeToString(basic),
		Signed: hex.EncodeToString(signed),
	})
}
