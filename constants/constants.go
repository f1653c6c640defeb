// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - fixed protocol parameters
//
// fee rates are deliberately constants: there is no runtime fee
// governance in the current system
package constants

import (
	"time"
)

// fees in ledger currency units
const (
	MintFee    uint64 = 1000 // paid in full to the treasury on mint
	MonthlyFee uint64 = 500  // one subscription period
)

// PlatformFeeRate - percentage of every sale or subscription payment
// retained by the treasury
const PlatformFeeRate uint64 = 5

// SubscriptionDuration - exactly thirty days
const SubscriptionDuration = 30 * 24 * time.Hour
