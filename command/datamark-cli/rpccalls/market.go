// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/marketplace"
	"github.com/bitmark-inc/datamarkd/util"
)

// ListAsset - post or update the sale price of an owned asset
func (client *Client) ListAsset(owner *account.PrivateKey, assetId uint64, price uint64) (*marketplace.ListReply, error) {

	arguments := marketplace.ListArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
		Price:   price,
	}
	arguments.Signature = owner.Sign(
		auth.Pack("Market.List",
			util.ToVarint64(assetId),
			util.ToVarint64(price)))

	client.printJson("Market.List request", arguments)

	var reply marketplace.ListReply
	err := client.client.Call("Market.List", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Market.List reply", reply)

	return &reply, nil
}

// PurchaseAsset - buy a listed asset, signed by the buyer
func (client *Client) PurchaseAsset(buyer *account.PrivateKey, assetId uint64, payment uint64) (*marketplace.PurchaseReply, error) {

	arguments := marketplace.PurchaseArguments{
		Buyer:   buyer.Account(),
		AssetId: assetId,
		Payment: payment,
	}
	arguments.Signature = buyer.Sign(
		auth.Pack("Market.Purchase",
			util.ToVarint64(assetId),
			util.ToVarint64(payment)))

	client.printJson("Market.Purchase request", arguments)

	var reply marketplace.PurchaseReply
	err := client.client.Call("Market.Purchase", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Market.Purchase reply", reply)

	return &reply, nil
}
