// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/subscriptions"
	"github.com/bitmark-inc/datamarkd/util"
)

// Subscribe - open a time-bound subscription to an asset
func (client *Client) Subscribe(subscriber *account.PrivateKey, assetId uint64, payment uint64) (*subscriptions.CreateReply, error) {

	arguments := subscriptions.CreateArguments{
		Subscriber: subscriber.Account(),
		AssetId:    assetId,
		Payment:    payment,
	}
	arguments.Signature = subscriber.Sign(
		auth.Pack("Subscription.Create",
			util.ToVarint64(assetId),
			util.ToVarint64(payment)))

	client.printJson("Subscription.Create request", arguments)

	var reply subscriptions.CreateReply
	err := client.client.Call("Subscription.Create", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Subscription.Create reply", reply)

	return &reply, nil
}

// AccessAsset - read an asset's external reference under a live subscription
func (client *Client) AccessAsset(subscriber *account.PrivateKey, assetId uint64) (*subscriptions.AccessReply, error) {

	arguments := subscriptions.AccessArguments{
		Subscriber: subscriber.Account(),
		AssetId:    assetId,
	}
	arguments.Signature = subscriber.Sign(
		auth.Pack("Subscription.Access",
			util.ToVarint64(assetId)))

	client.printJson("Subscription.Access request", arguments)

	var reply subscriptions.AccessReply
	err := client.client.Call("Subscription.Access", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Subscription.Access reply", reply)

	return &reply, nil
}
