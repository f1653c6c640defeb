// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/marketplace"
	"github.com/bitmark-inc/datamarkd/util"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("rpc-marketplace"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

func TestMarketListAndPurchase(t *testing.T) {
	m := marketplace.New(
		logger.New("test-rpc-marketplace"),
		func(_ mode.Mode) bool { return true },
		func() bool { return true },
	)

	seller, err := fixtures.NewParticipant(roles.DataProvider)
	assert.Nil(t, err, "participant setup failed")
	buyer, err := fixtures.NewParticipant(roles.Consumer)
	assert.Nil(t, err, "participant setup failed")

	assetId, err := asset.Mint(seller.Account(), "hdfs://cluster/set1", asset.Public, constants.MintFee)
	assert.Nil(t, err, "mint failed")

	list := marketplace.ListArguments{
		Owner:   seller.Account(),
		AssetId: assetId,
		Price:   300,
	}
	list.Signature = seller.Sign(auth.Pack(
		"Market.List",
		util.ToVarint64(list.AssetId),
		util.ToVarint64(list.Price)))

	var listReply marketplace.ListReply
	err = m.List(&list, &listReply)
	assert.Nil(t, err, "list failed")
	assert.True(t, listReply.Listed, "wrong listed flag")

	purchase := marketplace.PurchaseArguments{
		Buyer:   buyer.Account(),
		AssetId: assetId,
		Payment: 300,
	}
	purchase.Signature = buyer.Sign(auth.Pack(
		"Market.Purchase",
		util.ToVarint64(purchase.AssetId),
		util.ToVarint64(purchase.Payment)))

	var purchaseReply marketplace.PurchaseReply
	err = m.Purchase(&purchase, &purchaseReply)
	assert.Nil(t, err, "purchase failed")
	assert.Equal(t, buyer.Account().String(), purchaseReply.Owner.String(), "wrong new owner")

	record, err := asset.Get(assetId)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, buyer.Account().String(), record.Owner.String(), "ownership not transferred")
}
