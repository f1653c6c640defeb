// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("owner")
	if "" == name {
		name = c.GlobalString("identity")
	}
	if "" == name {
		name = m.config.DefaultIdentity
	}

	owner, err := checkAccount(m, name)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
