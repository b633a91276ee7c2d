// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/phaetonhq/phaeton-transactions/cryptography"
)

type accountResult struct {
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	passphrase, err := getPassphrase(m)
	if nil != err {
		return err
	}

	address, publicKey := cryptography.AddressAndPublicKeyFromPassphrase(passphrase)

	return printJson(m.w, accountResult{
		PublicKey: publicKey,
		Address:   address,
	})
}
