// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"

	"github.com/phaetonhq/phaeton-transactions/account"
)

// Selector - identifies an account to load before apply or undo
//
// exactly one field is expected to be set
type Selector struct {
	Address   string
	PublicKey string
	Username  string
}

// AccountStore - access to one consistent snapshot of account state
//
// Get fails with fault.ErrAccountNotFound for an unknown address;
// GetOrDefault returns account.Default(address) instead.  Writes are
// visible to later reads on the same store.  A store is used by one
// batch at a time.
type AccountStore interface {
	Get(address string) (*account.Account, error)
	GetOrDefault(address string) *account.Account
	Set(address string, a *account.Account)
	Find(predicate func(*account.Account) bool) (*account.Account, bool)
	Cache(ctx context.Context, selectors []Selector) error
}
