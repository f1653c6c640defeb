// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/storage"
)

var testDir string

func TestMain(m *testing.M) {
	var err error
	testDir, err = ioutil.TempDir("", "datamarkd-storage-test")
	if nil != err {
		panic("cannot create test directory: " + err.Error())
	}

	logger.Initialise(logger.Configuration{
		Directory: testDir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err = storage.Initialise(filepath.Join(testDir, "test"), false)
	if nil != err {
		panic("storage initialise failed: " + err.Error())
	}

	rc := m.Run()

	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testDir)
	os.Exit(rc)
}

func TestPutGetDelete(t *testing.T) {
	p := storage.Pool.Assets

	key := []byte("key-one")
	value := []byte("value-one")

	p.Put(key, value)
	assert.Equal(t, value, p.Get(key), "wrong value")
	assert.True(t, p.Has(key), "missing key")

	p.Delete(key)
	assert.Nil(t, p.Get(key), "value not deleted")
	assert.False(t, p.Has(key), "key not deleted")
}

func TestPoolIsolation(t *testing.T) {
	key := []byte("shared-key")

	storage.Pool.Roles.Put(key, []byte("role"))
	defer storage.Pool.Roles.Delete(key)

	assert.Nil(t, storage.Pool.Listings.Get(key), "pools are not isolated")
}

func TestTransactionCommit(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	key := []byte("trx-key")
	trx.Put(storage.Pool.Assets, key, []byte("trx-value"))
	trx.PutN(storage.Pool.Balances, key, 12345)

	// read-your-writes before commit
	assert.Equal(t, []byte("trx-value"), trx.Get(storage.Pool.Assets, key), "pending write not visible")
	n, found := trx.GetN(storage.Pool.Balances, key)
	assert.True(t, found, "pending numeric write not visible")
	assert.Equal(t, uint64(12345), n, "wrong pending numeric value")

	// not yet visible outside the transaction
	assert.Nil(t, storage.Pool.Assets.Get(key), "uncommitted write visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, []byte("trx-value"), storage.Pool.Assets.Get(key), "committed write missing")
	n, found = storage.Pool.Balances.GetN(key)
	assert.True(t, found, "committed numeric write missing")
	assert.Equal(t, uint64(12345), n, "wrong committed numeric value")

	storage.Pool.Assets.Delete(key)
	storage.Pool.Balances.Delete(key)
}

func TestTransactionAbort(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	key := []byte("abort-key")
	trx.Put(storage.Pool.Assets, key, []byte("abort-value"))
	trx.Abort()

	assert.Nil(t, storage.Pool.Assets.Get(key), "aborted write visible")

	// the transaction must be reusable after abort
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort failed")
	assert.Nil(t, trx.Get(storage.Pool.Assets, key), "aborted write survived in cache")
	trx.Abort()
}

func TestTransactionExclusive(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")
	defer trx.Abort()

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "concurrent begin did not fail")
}

func TestTransactionDeleteVisibility(t *testing.T) {
	key := []byte("del-key")
	storage.Pool.Assets.Put(key, []byte("x"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	trx.Delete(storage.Pool.Assets, key)
	assert.Nil(t, trx.Get(storage.Pool.Assets, key), "pending delete not visible")
	assert.False(t, trx.Has(storage.Pool.Assets, key), "pending delete not visible in Has")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")
	assert.False(t, storage.Pool.Assets.Has(key), "delete not committed")
}

func TestFetch(t *testing.T) {
	p := storage.Pool.Subscriptions

	p.Put([]byte{0x01}, []byte("one"))
	p.Put([]byte{0x02}, []byte("two"))
	p.Put([]byte{0x03}, []byte("three"))
	defer func() {
		p.Delete([]byte{0x01})
		p.Delete([]byte{0x02})
		p.Delete([]byte{0x03})
	}()

	elements, err := p.Fetch([]byte{}, 2)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 2, len(elements), "wrong element count")
	assert.Equal(t, []byte{0x01}, elements[0].Key, "wrong first key")
	assert.Equal(t, []byte("one"), elements[0].Value, "wrong first value")
}
