// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reference := c.String("reference")
	if "" == reference {
		return fmt.Errorf("reference cannot be blank")
	}

	category, err := checkCategory(c.String("category"))
	if nil != err {
		return err
	}

	payment := c.Uint64("payment")

	owner, err := identityPrivate(c, m)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.MintAsset(owner.PrivateKey, reference, category, payment)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
