// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/command/datamark-cli/configuration"
	"github.com/bitmark-inc/datamarkd/command/datamark-cli/rpccalls"
	"github.com/bitmark-inc/datamarkd/roles"
)

// identity is required, but not empty
func checkName(name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("identity cannot be blank")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return "", fmt.Errorf("identity cannot contain spaces")
	}
	return name, nil
}

// connect is required.
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fmt.Errorf("connect cannot be blank")
	}

	// XXX: We should not need to have port connected
	s := strings.Split(connect, ":")
	if len(s) < 2 {
		return "", fmt.Errorf("connect %q is not valid: missing port", connect)
	}

	return connect, nil
}

// description is required, but not empty
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description cannot be blank")
	}
	return description, nil
}

// role name must parse to a valid role
func checkRole(name string) (roles.Role, error) {
	var role roles.Role
	err := role.UnmarshalText([]byte(name))
	if nil != err {
		return roles.Nothing, err
	}
	if !role.IsValid() {
		return roles.Nothing, fmt.Errorf("role cannot be blank")
	}
	return role, nil
}

// category name must parse to a valid category
func checkCategory(name string) (asset.Category, error) {
	var category asset.Category
	err := category.UnmarshalText([]byte(name))
	if nil != err {
		return asset.Nothing, err
	}
	if !category.IsValid() {
		return asset.Nothing, fmt.Errorf("category cannot be blank")
	}
	return category, nil
}

// asset id must be present
func checkAssetId(assetId uint64) (uint64, error) {
	if 0 == assetId {
		return 0, fmt.Errorf("asset id cannot be zero")
	}
	return assetId, nil
}

// resolve a name to an account: an identity from the configuration
// file or a direct base58 account string
func checkAccount(m *metadata, name string) (*account.Account, error) {
	if "" == name {
		return nil, fmt.Errorf("account cannot be blank")
	}

	acc, err := m.config.Account(name)
	if nil == err {
		return acc, nil
	}

	return account.AccountFromBase58(name)
}

// check if file exists
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// connect to the first configured datamarkd
func connectClient(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, fmt.Errorf("no connections configured")
	}
	return rpccalls.NewClient(m.testnet, m.config.Connections[0], m.verbose, m.e)
}

// resolve the identity flag (or default) to a decrypted private key
func identityPrivate(c *cli.Context, m *metadata) (*configuration.Private, error) {

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	return m.config.Private(password, name)
}
