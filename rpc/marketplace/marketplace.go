// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/market"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/ratelimit"
	"github.com/bitmark-inc/datamarkd/util"
)

// Market - type for the RPC
type Market struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Market {
	return &Market{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// ListArguments - signed arguments to post a sale price
type ListArguments struct {
	Owner     *account.Account  `json:"owner"`
	AssetId   uint64            `json:"assetId"`
	Price     uint64            `json:"price"`
	Signature account.Signature `json:"signature"`
}

// ListReply - result of a listing
type ListReply struct {
	Listed bool `json:"listed"`
}

// List - RPC to post or update the sale price of an owned asset
func (m *Market) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if !m.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.List: %+v", arguments)

	err := auth.Verify(arguments.Owner, arguments.Signature, m.IsTestingChain(),
		"Market.List",
		util.ToVarint64(arguments.AssetId),
		util.ToVarint64(arguments.Price))
	if nil != err {
		return err
	}

	err = market.ListForSale(arguments.Owner, arguments.AssetId, arguments.Price)
	if nil != err {
		return err
	}

	reply.Listed = true
	return nil
}

// PurchaseArguments - signed arguments to buy a listed asset
type PurchaseArguments struct {
	Buyer     *account.Account  `json:"buyer"`
	AssetId   uint64            `json:"assetId"`
	Payment   uint64            `json:"payment"`
	Signature account.Signature `json:"signature"`
}

// PurchaseReply - the new owner after the transfer
type PurchaseReply struct {
	Owner *account.Account `json:"owner"`
}

// Purchase - RPC to buy a listed asset
func (m *Market) Purchase(arguments *PurchaseArguments, reply *PurchaseReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if !m.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Buyer {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.Purchase: %+v", arguments)

	err := auth.Verify(arguments.Buyer, arguments.Signature, m.IsTestingChain(),
		"Market.Purchase",
		util.ToVarint64(arguments.AssetId),
		util.ToVarint64(arguments.Payment))
	if nil != err {
		return err
	}

	err = market.Purchase(arguments.Buyer, arguments.AssetId, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Buyer
	return nil
}
