// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subscription - time-bound access grants
//
// a subscription allows a consumer to read an asset's external
// reference without owning it; expiry is checked lazily at access
// time against the stored timestamp, no background sweep exists and
// expired records are never physically deleted
package subscription

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/messagebus"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/storage"
	"github.com/bitmark-inc/datamarkd/treasury"
)

// Record - a stored subscription
//
// the granted category is copied from the asset at subscription time
type Record struct {
	ExpiresAt int64          `json:"expiresAt"` // unix seconds
	Category  asset.Category `json:"category"`
}

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the subscription ledger
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("subscription")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the subscription ledger
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

// compose the pool key: asset id ‖ packed subscriber
func subscriptionKey(assetId uint64, subscriber *account.Account) []byte {
	key := asset.Key(assetId)
	return append(key, subscriber.Bytes()...)
}

// Subscribe - create or replace a subscription
//
// the monthly fee is split between the asset's current owner and the
// treasury; resubscribing before expiry overwrites the prior record
// rather than extending it
func Subscribe(caller *account.Account, assetId uint64, paymentValue uint64, now time.Time) error {

	if !roles.Has(roles.Consumer, caller) {
		return fault.NotRoleHolder
	}
	if !asset.Exists(assetId) {
		return fault.AssetNotFound
	}
	if paymentValue < constants.MonthlyFee {
		return fault.InsufficientPayment
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = subscribe(trx, caller, assetId, paymentValue, now)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("subscribed: %s to: %d until: %d", caller, assetId, now.Add(constants.SubscriptionDuration).Unix())

	messagebus.Send("subscription", messagebus.SubscriptionCreated{
		Subscriber:      caller.String(),
		AssetId:         assetId,
		DurationSeconds: uint64(constants.SubscriptionDuration / time.Second),
	})

	return nil
}

// queue all effects of a subscription on the supplied transaction
func subscribe(trx storage.Transaction, subscriber *account.Account, assetId uint64, paymentValue uint64, now time.Time) error {

	assetRecord, err := asset.GetTx(trx, assetId)
	if nil != err {
		return err
	}

	record := Record{
		ExpiresAt: now.Add(constants.SubscriptionDuration).Unix(),
		Category:  assetRecord.Category,
	}
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Subscriptions, subscriptionKey(assetId, subscriber), data)

	ownerValue, platformValue := payment.Split(constants.MonthlyFee)

	err = payment.Credit(trx, assetRecord.Owner, ownerValue)
	if nil != err {
		return err
	}
	err = payment.Credit(trx, treasury.Account(), platformValue)
	if nil != err {
		return err
	}
	if paymentValue > constants.MonthlyFee {
		err = payment.Credit(trx, subscriber, paymentValue-constants.MonthlyFee)
		if nil != err {
			return err
		}
	}

	return nil
}

// Get - fetch a subscription record, nil if none exists
func Get(assetId uint64, subscriber *account.Account) (*Record, error) {
	data := storage.Pool.Subscriptions.Get(subscriptionKey(assetId, subscriber))
	if nil == data {
		return nil, fault.SubscriptionNotFound
	}
	record := &Record{}
	err := json.Unmarshal(data, record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// Access - read an asset's external reference under a subscription
//
// access is granted while the current time is before the stored
// expiry and the granted category is at least as sensitive as the
// asset's current category
func Access(caller *account.Account, assetId uint64, now time.Time) (string, error) {

	if !roles.Has(roles.Consumer, caller) {
		return "", fault.NotRoleHolder
	}

	record, err := Get(assetId, caller)
	if nil != err {
		return "", err
	}

	if !now.Before(time.Unix(record.ExpiresAt, 0)) {
		return "", fault.SubscriptionExpired
	}

	assetRecord, err := asset.Get(assetId)
	if nil != err {
		return "", err
	}
	if !record.Category.Satisfies(assetRecord.Category) {
		return "", fault.InsufficientCategory
	}

	return assetRecord.Reference, nil
}
