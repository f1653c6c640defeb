// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/datamarkd/fault"
)

// Transaction - atomic database update
//
// all Put/Delete calls are queued in a batch and only hit the
// database on Commit; Abort discards everything queued so far
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB, batch *leveldb.Batch) *transactionData {
	return &transactionData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: newCache(),
	}
}

// Begin - mark the transaction as in use
func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}
	t.inUse = true
	return nil
}

// Put - queue a key/value pair write
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	prefixed := p.prefixKey(key)
	t.cache.Set(dbPut, string(prefixed), value)
	t.batch.Put(prefixed, value)
}

// PutN - queue a write of a big endian uint64 value
func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Delete - queue a key removal
func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	prefixed := p.prefixKey(key)
	t.cache.Set(dbDelete, string(prefixed), []byte{})
	t.batch.Delete(prefixed)
}

// Get - read through pending writes then the database
func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	prefixed := p.prefixKey(key)
	if entry, found := t.cache.Get(string(prefixed)); found {
		if entry.IsDeletion() {
			return nil
		}
		return entry.Value
	}

	value, err := t.db.Get(prefixed, nil)
	if leveldb.ErrNotFound == err {
		return nil
	} else if nil != err {
		return nil
	}
	return value
}

// GetN - read a big endian uint64 value
//
// second return value is false if the record was not found
func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check a key exists taking pending writes into account
func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	prefixed := p.prefixKey(key)
	if entry, found := t.cache.Get(string(prefixed)); found {
		return !entry.IsDeletion()
	}
	has, err := t.db.Has(prefixed, nil)
	if nil != err {
		return false
	}
	return has
}

// Commit - write the whole batch to the database
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	err := t.db.Write(t.batch, nil)
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	return err
}

// Abort - discard all pending writes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

// InUse - whether a transaction is currently open
func (t *transactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
