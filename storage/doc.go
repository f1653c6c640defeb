// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database with separate pools of data within
// a single database as prefixed key->value maps
//
// all ledger mutations are performed through a single Transaction
// backed by a LevelDB batch so that an operation either commits
// every record it touches or none of them
package storage
