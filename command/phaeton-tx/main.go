// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"
)

type metadata struct {
	passphrase       string
	secondPassphrase string
	offset           time.Duration
	verbose          bool
	r                io.Reader
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "phaeton-tx"
	app.Usage = "create, sign and check Phaeton transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "passphrase, p",
			Value:  "",
			Usage:  " signing `PASSPHRASE` [prompt if not set]",
			EnvVar: "PHAETON_PASSPHRASE",
		},
		cli.StringFlag{
			Name:   "second-passphrase, s",
			Value:  "",
			Usage:  " second `PASSPHRASE` of an account with a second signature",
			EnvVar: "PHAETON_SECOND_PASSPHRASE",
		},
		cli.IntFlag{
			Name:  "offset, o",
			Value: 0,
			Usage: " timestamp offset in `SECONDS` from now",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "account",
			Usage:     "show the public key and address of a passphrase",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runAccount,
		},
		{
			Name:      "transfer",
			Usage:     "send PHA to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount in `PHA`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " optional `TEXT` stored with the transfer",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "second-signature",
			Usage:     "register a second passphrase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "new-passphrase, n",
					Value: "",
					Usage: "*second `PASSPHRASE` to register",
				},
			},
			Action: runSecondSignature,
		},
		{
			Name:      "delegate",
			Usage:     "register as a delegate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "*delegate `NAME`",
				},
			},
			Action: runDelegate,
		},
		{
			Name:      "vote",
			Usage:     "vote for or remove votes from delegates",
			ArgsUsage: "\n   (+ = at least one)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "vote, y",
					Usage: "+delegate `PUBLICKEY` to vote for",
				},
				cli.StringSliceFlag{
					Name:  "unvote, n",
					Usage: "+delegate `PUBLICKEY` to remove a vote from",
				},
			},
			Action: runVote,
		},
		{
			Name:      "multisignature",
			Usage:     "register a multisignature group",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "member, k",
					Usage: "*member `PUBLICKEY`, repeat for each member",
				},
				cli.IntFlag{
					Name:  "min, m",
					Value: 0,
					Usage: "*signatures required `COUNT`",
				},
				cli.IntFlag{
					Name:  "lifetime, l",
					Value: 24,
					Usage: " signature collection `HOURS`",
				},
			},
			Action: runMultisignature,
		},
		{
			Name:      "sign",
			Usage:     "co-sign a transaction as a multisignature member",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "-",
					Usage: "*transaction `JSON` or - for standard input",
				},
			},
			Action: runSign,
		},
		{
			Name:      "validate",
			Usage:     "check the structure, fee and signatures of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "-",
					Usage: "*transaction `JSON` or - for standard input",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "bytes",
			Usage:     "show the canonical bytes of a transaction as hex",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "-",
					Usage: "*transaction `JSON` or - for standard input",
				},
			},
			Action: runBytes,
		},
		{
			Name:  "version",
			Usage: "display phaeton-tx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				passphrase:       c.GlobalString("passphrase"),
				secondPassphrase: c.GlobalString("second-passphrase"),
				offset:           time.Duration(c.GlobalInt("offset")) * time.Second,
				verbose:          c.GlobalBool("verbose"),
				r:                os.Stdin,
				e:                c.App.ErrWriter,
				w:                c.App.Writer,
			},
		}
		return nil
	}

	return app
}
