// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/market"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/ratelimit"
	"github.com/bitmark-inc/datamarkd/util"
)

// Asset - type for the RPC
type Asset struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	rateLimitAsset = 200
	rateBurstAsset = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Asset {
	return &Asset{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAsset, rateBurstAsset),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// MintArguments - signed arguments to register a data asset
type MintArguments struct {
	Owner     *account.Account  `json:"owner"`
	Reference string            `json:"reference"`
	Category  asset.Category    `json:"category"`
	Payment   uint64            `json:"payment"`
	Signature account.Signature `json:"signature"`
}

// MintReply - the allocated asset id
type MintReply struct {
	AssetId uint64 `json:"assetId"`
}

// Mint - RPC to register a new data asset
func (a *Asset) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Owner {
		return fault.MissingParameters
	}
	if !arguments.Category.IsValid() {
		return fault.InvalidCategory
	}

	a.Log.Infof("Asset.Mint: %+v", arguments)

	err := auth.Verify(arguments.Owner, arguments.Signature, a.IsTestingChain(),
		"Asset.Mint",
		[]byte(arguments.Reference),
		[]byte(arguments.Category.String()),
		util.ToVarint64(arguments.Payment))
	if nil != err {
		return err
	}

	assetId, err := asset.Mint(arguments.Owner, arguments.Reference, arguments.Category, arguments.Payment)
	if nil != err {
		return err
	}

	reply.AssetId = assetId
	return nil
}

// GetArguments - arguments to fetch asset metadata
type GetArguments struct {
	AssetId uint64 `json:"assetId"`
}

// GetReply - public metadata of an asset
//
// the external reference is not included here, it is only released
// to the owner or through a live subscription
type GetReply struct {
	AssetId  uint64           `json:"assetId"`
	Owner    *account.Account `json:"owner"`
	Category asset.Category   `json:"category"`
	Listed   bool             `json:"listed"`
	Price    uint64           `json:"price,omitempty"`
}

// Get - RPC to fetch the public metadata of an asset
func (a *Asset) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	record, err := asset.Get(arguments.AssetId)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	reply.Owner = record.Owner
	reply.Category = record.Category

	listing, err := market.GetListing(arguments.AssetId)
	if nil == err {
		reply.Listed = true
		reply.Price = listing.Price
	}

	return nil
}
