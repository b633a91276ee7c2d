// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived loops until told to stop
package background

// Process - a long lived loop
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels of one process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle of a started set of processes
type T struct {
	s []shutdown
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		register.s[i] = shutdown{
			shutdown: make(chan struct{}),
			finished: make(chan struct{}),
		}
		go func(p Process, s shutdown) {
			defer close(s.finished)
			p.Run(args, s.shutdown)
		}(p, register.s[i])
	}
	return register
}

// Stop - signal every process and wait for all of them to return
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}

	for _, s := range t.s {
		<-s.finished
	}
}
