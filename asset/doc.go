// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the registry of minted data assets
//
// an asset record binds an owner to an opaque external storage
// reference and an access category; identifiers are allocated from a
// strictly increasing counter starting at one and are never reused
package asset
