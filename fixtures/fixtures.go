// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test environment setup
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/market"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/storage"
	"github.com/bitmark-inc/datamarkd/subscription"
	"github.com/bitmark-inc/datamarkd/treasury"
)

// key pairs for the fixed test participants
var (
	Admin    *account.PrivateKey
	Treasury *account.PrivateKey

	testDir string
)

// Setup - bring up logging, storage and every ledger component
// backed by a fresh temporary database
func Setup(name string) error {
	var err error
	testDir, err = ioutil.TempDir("", "datamarkd-"+name)
	if nil != err {
		return err
	}

	err = logger.Initialise(logger.Configuration{
		Directory: testDir,
		File:      name + ".log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		return err
	}

	err = storage.Initialise(filepath.Join(testDir, name), false)
	if nil != err {
		return err
	}

	_, Admin, err = account.MakeAccount(true)
	if nil != err {
		return err
	}
	_, Treasury, err = account.MakeAccount(true)
	if nil != err {
		return err
	}

	err = roles.Initialise(Admin.Account())
	if nil != err {
		return err
	}
	err = treasury.Initialise(Treasury.Account())
	if nil != err {
		return err
	}
	err = asset.Initialise()
	if nil != err {
		return err
	}
	err = market.Initialise()
	if nil != err {
		return err
	}
	return subscription.Initialise()
}

// Teardown - shut everything down and remove the database
func Teardown() {
	subscription.Finalise()
	market.Finalise()
	asset.Finalise()
	treasury.Finalise()
	roles.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testDir)
}

// NewKeyPair - a fresh account with no roles
func NewKeyPair() (*account.Account, *account.PrivateKey, error) {
	return account.MakeAccount(true)
}

// NewParticipant - a fresh account already granted a role
func NewParticipant(role roles.Role) (*account.PrivateKey, error) {
	_, private, err := account.MakeAccount(true)
	if nil != err {
		return nil, err
	}
	err = roles.Grant(Admin.Account(), role, private.Account())
	if nil != err {
		return nil, err
	}
	return private, nil
}
