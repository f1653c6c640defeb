// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/rpc/assets"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/util"
)

// MintAsset - register a new data asset, signed by its owner
func (client *Client) MintAsset(owner *account.PrivateKey, reference string, category asset.Category, payment uint64) (*assets.MintReply, error) {

	arguments := assets.MintArguments{
		Owner:     owner.Account(),
		Reference: reference,
		Category:  category,
		Payment:   payment,
	}
	arguments.Signature = owner.Sign(
		auth.Pack("Asset.Mint",
			[]byte(reference),
			[]byte(category.String()),
			util.ToVarint64(payment)))

	client.printJson("Asset.Mint request", arguments)

	var reply assets.MintReply
	err := client.client.Call("Asset.Mint", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Asset.Mint reply", reply)

	return &reply, nil
}

// GetAsset - fetch the public metadata of an asset
func (client *Client) GetAsset(assetId uint64) (*assets.GetReply, error) {

	arguments := assets.GetArguments{
		AssetId: assetId,
	}

	client.printJson("Asset.Get request", arguments)

	var reply assets.GetReply
	err := client.client.Call("Asset.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Asset.Get reply", reply)

	return &reply, nil
}
