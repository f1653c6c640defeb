// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.Uint64("asset"))
	if nil != err {
		return err
	}

	payment := c.Uint64("payment")

	buyer, err := identityPrivate(c, m)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PurchaseAsset(buyer.PrivateKey, assetId, payment)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
