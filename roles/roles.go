// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package roles - capability role membership
//
// every other ledger component consults this registry as its first
// precondition; a failed gate aborts the whole requested operation
// before any state is touched
package roles

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/storage"
)

// role membership marker
var present = []byte{0x01}

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the role registry
//
// the initial administrator from the configuration is granted Admin
// so that a fresh database has at least one account able to grant
// further roles; this is idempotent
func Initialise(initialAdmin *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("roles")
	globalData.log.Info("starting…")

	if nil != initialAdmin {
		key := roleKey(Admin, initialAdmin)
		if !storage.Pool.Roles.Has(key) {
			globalData.log.Infof("bootstrap admin: %s", initialAdmin)
			storage.Pool.Roles.Put(key, present)
		}
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the role registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// compose the pool key: role byte ‖ packed account
func roleKey(role Role, acc *account.Account) []byte {
	key := make([]byte, 1, 1+len(acc.Bytes()))
	key[0] = byte(role)
	return append(key, acc.Bytes()...)
}

// Has - check role membership, pure query with no side effects
func Has(role Role, acc *account.Account) bool {
	if !role.IsValid() || nil == acc {
		return false
	}
	return storage.Pool.Roles.Has(roleKey(role, acc))
}

// Grant - add a role to an account
//
// the caller must hold Admin
func Grant(caller *account.Account, role Role, acc *account.Account) error {
	if !Has(Admin, caller) {
		return fault.NotRoleHolder
	}
	if !role.IsValid() {
		return fault.InvalidRole
	}

	globalData.log.Infof("grant: %s to: %s", role, acc)
	storage.Pool.Roles.Put(roleKey(role, acc), present)
	return nil
}

// Revoke - remove a role from an account
//
// the caller must hold Admin; an admin revoking their own Admin role
// is denied so a sole administrator cannot lock the system by a
// single action
func Revoke(caller *account.Account, role Role, acc *account.Account) error {
	if !Has(Admin, caller) {
		return fault.NotRoleHolder
	}
	if !role.IsValid() {
		return fault.InvalidRole
	}
	if Admin == role && bytes.Equal(caller.Bytes(), acc.Bytes()) {
		return fault.SelfRevocation
	}

	globalData.log.Infof("revoke: %s from: %s", role, acc)
	storage.Pool.Roles.Delete(roleKey(role, acc))
	return nil
}
