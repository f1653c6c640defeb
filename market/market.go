// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - listing and purchase of minted assets
//
// a purchase transfers ownership and splits the payment between the
// previous owner and the treasury in one database commit; a failure
// of any leg rolls the whole operation back
package market

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/messagebus"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/storage"
	"github.com/bitmark-inc/datamarkd/treasury"
)

// Listing - a posted sale price
type Listing struct {
	Price uint64 `json:"price"`
}

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the marketplace
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the marketplace
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// ListForSale - post or update the sale price of an owned asset
func ListForSale(caller *account.Account, assetId uint64, price uint64) error {

	if !roles.Has(roles.DataProvider, caller) {
		return fault.NotRoleHolder
	}

	record, err := asset.Get(assetId)
	if nil != err {
		return err
	}
	if !bytes.Equal(record.Owner.Bytes(), caller.Bytes()) {
		return fault.NotAssetOwner
	}
	if 0 == price {
		return fault.ZeroPrice
	}

	data, err := json.Marshal(Listing{Price: price})
	if nil != err {
		return err
	}
	storage.Pool.Listings.Put(asset.Key(assetId), data)

	globalData.log.Infof("listed: %d price: %d owner: %s", assetId, price, caller)

	messagebus.Send("market", messagebus.AssetListed{
		AssetId: assetId,
		Price:   price,
		Owner:   caller.String(),
	})

	return nil
}

// GetListing - fetch the current listing for an asset
func GetListing(assetId uint64) (*Listing, error) {
	data := storage.Pool.Listings.Get(asset.Key(assetId))
	if nil == data {
		return nil, fault.ListingNotFound
	}
	listing := &Listing{}
	err := json.Unmarshal(data, listing)
	if nil != err {
		return nil, err
	}
	return listing, nil
}

// Purchase - buy a listed asset
//
// ownership transfer, seller payment, treasury payment and listing
// removal are queued on one transaction; any failure aborts the lot
func Purchase(caller *account.Account, assetId uint64, paymentValue uint64) error {

	if !roles.Has(roles.Consumer, caller) {
		return fault.NotRoleHolder
	}

	listing, err := GetListing(assetId)
	if nil != err {
		return err
	}
	if paymentValue < listing.Price {
		return fault.InsufficientPayment
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = purchase(trx, caller, assetId, listing.Price, paymentValue)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("purchased: %d price: %d buyer: %s", assetId, listing.Price, caller)
	return nil
}

// queue all effects of a purchase on the supplied transaction
func purchase(trx storage.Transaction, buyer *account.Account, assetId uint64, price uint64, paymentValue uint64) error {

	record, err := asset.GetTx(trx, assetId)
	if nil != err {
		return err
	}
	seller := record.Owner

	err = asset.TransferTx(trx, assetId, buyer)
	if nil != err {
		return err
	}

	// listings do not survive an ownership transfer
	trx.Delete(storage.Pool.Listings, asset.Key(assetId))

	sellerValue, platformValue := payment.Split(price)

	err = payment.Credit(trx, seller, sellerValue)
	if nil != err {
		return err
	}
	err = payment.Credit(trx, treasury.Account(), platformValue)
	if nil != err {
		return err
	}
	if paymentValue > price {
		err = payment.Credit(trx, buyer, paymentValue-price)
		if nil != err {
			return err
		}
	}

	return nil
}
