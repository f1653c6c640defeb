// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/market"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/rpc/assets"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/util"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("rpc-assets"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

func newAsset() *assets.Asset {
	return assets.New(
		logger.New("test-rpc-assets"),
		func(_ mode.Mode) bool { return true },
		func() bool { return true },
	)
}

func TestAssetMintAndGet(t *testing.T) {
	a := newAsset()

	provider, err := fixtures.NewParticipant(roles.DataProvider)
	assert.Nil(t, err, "participant setup failed")

	mint := assets.MintArguments{
		Owner:     provider.Account(),
		Reference: "ipfs://QmData1",
		Category:  asset.Private,
		Payment:   constants.MintFee,
	}
	mint.Signature = provider.Sign(auth.Pack(
		"Asset.Mint",
		[]byte(mint.Reference),
		[]byte(mint.Category.String()),
		util.ToVarint64(mint.Payment)))

	var mintReply assets.MintReply
	err = a.Mint(&mint, &mintReply)
	assert.Nil(t, err, "mint failed")
	assert.True(t, mintReply.AssetId > 0, "wrong asset id")

	var getReply assets.GetReply
	err = a.Get(&assets.GetArguments{AssetId: mintReply.AssetId}, &getReply)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, provider.Account().String(), getReply.Owner.String(), "wrong owner")
	assert.Equal(t, asset.Private, getReply.Category, "wrong category")
	assert.False(t, getReply.Listed, "unlisted asset shows a listing")

	// the reply must not leak the protected reference
	err = market.ListForSale(provider.Account(), mintReply.AssetId, 750)
	assert.Nil(t, err, "list failed")

	getReply = assets.GetReply{}
	err = a.Get(&assets.GetArguments{AssetId: mintReply.AssetId}, &getReply)
	assert.Nil(t, err, "get failed")
	assert.True(t, getReply.Listed, "listing missing")
	assert.Equal(t, uint64(750), getReply.Price, "wrong price")
}

func TestAssetMintBadSignature(t *testing.T) {
	a := newAsset()

	provider, err := fixtures.NewParticipant(roles.DataProvider)
	assert.Nil(t, err, "participant setup failed")

	mint := assets.MintArguments{
		Owner:     provider.Account(),
		Reference: "ipfs://QmData2",
		Category:  asset.Public,
		Payment:   constants.MintFee,
	}
	// signature over a different payment value
	mint.Signature = provider.Sign(auth.Pack(
		"Asset.Mint",
		[]byte(mint.Reference),
		[]byte(mint.Category.String()),
		util.ToVarint64(constants.MintFee+1)))

	var reply assets.MintReply
	err = a.Mint(&mint, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "tampered mint accepted")
}

func TestAssetGetMissing(t *testing.T) {
	a := newAsset()

	var reply assets.GetReply
	err := a.Get(&assets.GetArguments{AssetId: 424242}, &reply)
	assert.Equal(t, fault.AssetNotFound, err, "missing asset found")
}
