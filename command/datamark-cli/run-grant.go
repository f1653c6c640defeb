// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runGrant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	role, err := checkRole(c.String("role"))
	if nil != err {
		return err
	}

	holder, err := checkAccount(m, c.String("holder"))
	if nil != err {
		return err
	}

	admin, err := identityPrivate(c, m)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GrantRole(admin.PrivateKey, role, holder)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
