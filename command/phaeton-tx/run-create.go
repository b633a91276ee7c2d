// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/phaetonhq/phaeton-transactions/amount"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recipient := strings.TrimSpace(c.String("recipient"))
	if "" == recipient {
		return ErrMissingRecipient
	}
	pha := strings.TrimSpace(c.String("amount"))
	if "" == pha {
		return ErrMissingAmount
	}

	value, err := amount.FromPHA(pha)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "beddows: %s\n", value)
	}

	u, err := transaction.NewTransfer(recipient, value, c.String("data"))
	if nil != err {
		return err
	}
	return signAndPrint(m, u)
}

func runSecondSignature(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	u, err := transaction.NewSecondSignature(c.String("new-passphrase"))
	if nil != err {
		return err
	}
	return signAndPrint(m, u)
}

func runDelegate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	username := strings.TrimSpace(c.String("username"))
	if "" == username {
		return ErrMissingUsername
	}

	u, err := transaction.NewDelegate(username)
	if nil != err {
		return err
	}
	return signAndPrint(m, u)
}

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	u, err := transaction.NewVote(c.StringSlice("vote"), c.StringSlice("unvote"))
	if nil != err {
		return err
	}
	return signAndPrint(m, u)
}

func runMultisignature(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	u, err := transaction.NewMultisignature(c.StringSlice("member"), c.Int("min"), c.Int("lifetime"))
	if nil != err {
		return err
	}
	return signAndPrint(m, u)
}
