// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"
)

// expiry loop
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	globalData := args.(*globalDataType)

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop

		case <-time.After(state.interval):
			globalData.Lock()
			n := globalData.expire(time.Now())
			globalData.Unlock()

			if 0 != n {
				log.Infof("expired: %d", n)
			}
		}
	}

	log.Info("stopped")
}

// drop expired entries, the caller must hold the lock
func (g *globalDataType) expire(now time.Time) int {
	n := 0
	for id, e := range g.entries {
		if e.tx.IsExpired(e.status, now) {
			g.log.Debugf("expired: %s  status: %s", id, e.status)
			delete(g.entries, id)
			n += 1
		}
	}
	return n
}
