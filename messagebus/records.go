// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// AssetCreated - emitted after a successful mint
type AssetCreated struct {
	AssetId   uint64 `json:"assetId"`
	Reference string `json:"reference"`
	Category  string `json:"category"`
	Creator   string `json:"creator"`
}

// AssetListed - emitted after a successful listing
type AssetListed struct {
	AssetId uint64 `json:"assetId"`
	Price   uint64 `json:"price"`
	Owner   string `json:"owner"`
}

// SubscriptionCreated - emitted after a successful subscription
type SubscriptionCreated struct {
	Subscriber      string `json:"subscriber"`
	AssetId         uint64 `json:"assetId"`
	DurationSeconds uint64 `json:"durationSeconds"`
}
