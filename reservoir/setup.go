// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/phaetonhq/phaeton-transactions/background"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// DefaultExpiryInterval - time between expiry scans
const DefaultExpiryInterval = time.Minute

// globals
type globalDataType struct {
	sync.RWMutex
	log     *logger.L
	enabled bool

	// indexed by transaction id
	entries map[string]*entry

	expiry     expiryData
	background *background.T
}

// one pooled transaction and its signature collection state
type entry struct {
	tx       *transaction.Transaction
	status   transaction.MultisignatureStatus
	received time.Time
}

// expiry background
type expiryData struct {
	log      *logger.L
	interval time.Duration
}

// global storage
var globalData globalDataType

// Initialise - create the pool and start the expiry process
func Initialise(expiryInterval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.enabled {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("reservoir")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.entries = make(map[string]*entry)

	if expiryInterval <= 0 {
		expiryInterval = DefaultExpiryInterval
	}
	globalData.expiry.interval = expiryInterval
	globalData.expiry.log = logger.New("reservoir-expiry")
	if nil == globalData.expiry.log {
		return fault.ErrInvalidLoggerChannel
	}

	globalData.enabled = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.expiry,
	}

	globalData.background = background.Start(processes, &globalData)

	return nil
}

// Finalise - stop the expiry process and drop all entries
func Finalise() error {
	globalData.Lock()
	if !globalData.enabled {
		globalData.Unlock()
		return fault.ErrNotInitialised
	}
	globalData.log.Info("shutting down…")
	globalData.enabled = false
	globalData.Unlock()

	// the expiry loop takes the lock so stop it unlocked
	globalData.background.Stop()

	globalData.Lock()
	globalData.entries = nil
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.Unlock()

	return nil
}

// ReadCounters - number of entries collecting signatures and ready for a block
func ReadCounters() (int, int) {
	globalData.RLock()
	defer globalData.RUnlock()

	collecting := 0
	ready := 0
	for _, e := range globalData.entries {
		if e.status.IsReady() {
			ready += 1
		} else {
			collecting += 1
		}
	}
	return collecting, ready
}
