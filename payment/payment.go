// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - the internal value ledger
//
// records balances credited to sellers and the treasury; credits are
// queued on the same transaction as the state change they pay for so
// that ownership and payment can never diverge
package payment

import (
	"math/bits"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/storage"
)

// Split - divide a payment between seller and treasury
//
// sellerValue = amount × (100 − PlatformFeeRate) / 100 with
// truncating division; the treasury receives the remainder so the two
// parts always sum to the amount exactly
func Split(amount uint64) (sellerValue uint64, platformValue uint64) {
	hi, lo := bits.Mul64(amount, 100-constants.PlatformFeeRate)
	sellerValue, _ = bits.Div64(hi, lo, 100)
	platformValue = amount - sellerValue
	return sellerValue, platformValue
}

// Credit - queue a balance credit on a transaction
func Credit(trx storage.Transaction, acc *account.Account, amount uint64) error {
	key := acc.Bytes()
	current, _ := trx.GetN(storage.Pool.Balances, key)
	if current+amount < current {
		return fault.BalanceOverflow
	}
	trx.PutN(storage.Pool.Balances, key, current+amount)
	return nil
}

// Balance - current credited balance of an account
func Balance(acc *account.Account) uint64 {
	balance, _ := storage.Pool.Balances.GetN(acc.Bytes())
	return balance
}
