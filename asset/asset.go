// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/messagebus"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/storage"
	"github.com/bitmark-inc/datamarkd/treasury"
)

// the counter record key
var counterKey = []byte("asset")

// Record - a stored asset
//
// the reference is set exactly once at mint time and never modified
type Record struct {
	Owner     *account.Account `json:"owner"`
	Reference string           `json:"reference"`
	Category  Category         `json:"category"`
}

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the asset registry
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("asset")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the asset registry
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

// Key - the pool key for an asset id
func Key(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// Mint - create a new asset record
//
// preconditions in order: caller holds DataProvider, payment covers
// the mint fee, reference is not empty, category is valid; all are
// checked before any mutation and the whole effect is one database
// commit
func Mint(caller *account.Account, reference string, category Category, paymentValue uint64) (uint64, error) {

	if !roles.Has(roles.DataProvider, caller) {
		return 0, fault.NotRoleHolder
	}
	if paymentValue < constants.MintFee {
		return 0, fault.InsufficientPayment
	}
	if "" == reference {
		return 0, fault.EmptyReference
	}
	if !category.IsValid() {
		return 0, fault.InvalidCategory
	}

	record := Record{
		Owner:     caller,
		Reference: reference,
		Category:  category,
	}
	data, err := json.Marshal(record)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	// allocate the next id and advance the counter
	current, _ := trx.GetN(storage.Pool.Counters, counterKey)
	assetId := current + 1
	trx.PutN(storage.Pool.Counters, counterKey, assetId)

	trx.Put(storage.Pool.Assets, Key(assetId), data)

	// the mint fee goes to the treasury in full; any excess is
	// returned to the minter as ledger balance
	err = payment.Credit(trx, treasury.Account(), constants.MintFee)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	if paymentValue > constants.MintFee {
		err = payment.Credit(trx, caller, paymentValue-constants.MintFee)
		if nil != err {
			trx.Abort()
			return 0, err
		}
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	globalData.log.Infof("minted: %d reference: %q category: %s owner: %s", assetId, reference, category, caller)

	messagebus.Send("asset", messagebus.AssetCreated{
		AssetId:   assetId,
		Reference: reference,
		Category:  category.String(),
		Creator:   caller.String(),
	})

	return assetId, nil
}

// Count - the highest allocated asset id
func Count() uint64 {
	count, _ := storage.Pool.Counters.GetN(counterKey)
	return count
}

// Exists - check an asset id has been minted
func Exists(assetId uint64) bool {
	return storage.Pool.Assets.Has(Key(assetId))
}

// Get - fetch an asset record
func Get(assetId uint64) (*Record, error) {
	data := storage.Pool.Assets.Get(Key(assetId))
	if nil == data {
		return nil, fault.AssetNotFound
	}
	record := &Record{}
	err := json.Unmarshal(data, record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// GetTx - fetch an asset record inside a transaction
func GetTx(trx storage.Transaction, assetId uint64) (*Record, error) {
	data := trx.Get(storage.Pool.Assets, Key(assetId))
	if nil == data {
		return nil, fault.AssetNotFound
	}
	record := &Record{}
	err := json.Unmarshal(data, record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// TransferTx - replace the owner of an asset inside a transaction
//
// reference and category are preserved unchanged
func TransferTx(trx storage.Transaction, assetId uint64, newOwner *account.Account) error {
	record, err := GetTx(trx, assetId)
	if nil != err {
		return err
	}
	record.Owner = newOwner

	data, err := json.Marshal(record)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Assets, Key(assetId), data)
	return nil
}
