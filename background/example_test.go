// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/phaetonhq/phaeton-transactions/background"
)

type sweeper struct {
	rounds int
}

func (s *sweeper) Run(args interface{}, shutdown <-chan struct{}) {

	fmt.Printf("initialise\n")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		s.rounds += 1
		time.Sleep(time.Millisecond)
	}

	fmt.Printf("finalise\n")
}

func Example() {
	p := background.Start(background.Processes{&sweeper{}}, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	// Output:
	// initialise
	// finalise
}
