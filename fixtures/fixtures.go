// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test data and a file logger for tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Identity - a passphrase with its derived public key and address
type Identity struct {
	Passphrase string
	PublicKey  string
	Address    string
}

// fixed identities
var (
	Sender = Identity{
		Passphrase: "wagon stock borrow episode laundry kitten salute link globe zero feed marble",
		PublicKey:  "c094ebee7ec0c50ebee32918655e089f6e1a604b83bcaa760293c61e0f18ab6f",
		Address:    "16313739661670634666P",
	}
	Second = Identity{
		Passphrase: "second secret passphrase",
		PublicKey:  "8a7c2743b8601ff52c5bf615a8e977565326e828e7b79a6999e64bfc5c2b3859",
		Address:    "13882096605995916402P",
	}
	Alpha = Identity{
		Passphrase: "alpha member passphrase",
		PublicKey:  "167923971985f0bff9deba4a8c85539a93cac7a44076351d7531b4d10de0bf52",
		Address:    "10823185942486612136P",
	}
	Beta = Identity{
		Passphrase: "beta member passphrase",
		PublicKey:  "bed9491da18a4e04de69a49da3f21f72f38dd1bd5cc07ecc2ac9527d8c8c4b57",
		Address:    "5790291865352817482P",
	}
	Gamma = Identity{
		Passphrase: "gamma member passphrase",
		PublicKey:  "6eb1c004aae2827cb36162c3fbe22801d65fda5f3041a30ca887af7078732fc6",
		Address:    "17900083911643368039P",
	}
	Delegate = Identity{
		Passphrase: "delegate one passphrase",
		PublicKey:  "570ff656d73b163276d424c34a58d99332dae186582abf7ec6de7474ad106b87",
		Address:    "4234569626331138317P",
	}
	Recipient = Identity{
		Passphrase: "recipient passphrase",
		PublicKey:  "500249be0ea63c9a07904729fad67d6ea50d3a063b31a593b6dfbaca30debd3d",
		Address:    "1902771074036125098P",
	}
)

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
