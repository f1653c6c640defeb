// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasury - the fixed protocol revenue account
//
// collects the mint fees and the platform share of every sale and
// subscription; set once from configuration, no further logic
package treasury

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/payment"
)

// globals
var globalData struct {
	sync.RWMutex
	log     *logger.L
	account *account.Account

	// set once during initialise
	initialised bool
}

// Initialise - set the treasury account
func Initialise(treasuryAccount *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == treasuryAccount {
		return fault.MissingParameters
	}

	globalData.log = logger.New("treasury")
	globalData.log.Infof("treasury account: %s", treasuryAccount)

	globalData.account = treasuryAccount
	globalData.initialised = true
	return nil
}

// Finalise - clear the treasury account
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Flush()
	globalData.account = nil
	globalData.initialised = false
	return nil
}

// Account - the configured treasury account
func Account() *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.account
}

// Balance - accumulated protocol revenue
func Balance() uint64 {
	return payment.Balance(Account())
}
