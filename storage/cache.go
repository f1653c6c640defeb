// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	gocache "github.com/patrickmn/go-cache"
)

// pending database operation recorded in the cache
type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// Cache - read-your-writes layer over a pending batch
type Cache interface {
	Set(dbOperation, string, []byte)
	Get(string) (*CacheEntry, bool)
	Clear()
}

// CacheEntry - a pending operation with its value
type CacheEntry struct {
	Operation dbOperation
	Value     []byte
}

// IsDeletion - whether this entry marks a pending delete
func (e *CacheEntry) IsDeletion() bool {
	return dbDelete == e.Operation
}

type cacheData struct {
	pending *gocache.Cache
}

func newCache() Cache {
	return &cacheData{
		pending: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

func (c *cacheData) Set(op dbOperation, key string, value []byte) {
	c.pending.Set(key, &CacheEntry{
		Operation: op,
		Value:     value,
	}, gocache.NoExpiration)
}

func (c *cacheData) Get(key string) (*CacheEntry, bool) {
	item, found := c.pending.Get(key)
	if !found {
		return nil, false
	}
	return item.(*CacheEntry), true
}

func (c *cacheData) Clear() {
	c.pending.Flush()
}
