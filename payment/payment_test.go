// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"math"
	"os"
	"testing"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/storage"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("payment"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

func TestSplit(t *testing.T) {
	testData := []struct {
		amount   uint64
		seller   uint64
		platform uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{19, 18, 1},
		{20, 19, 1},
		{100, 95, 5},
		{101, 95, 6},
		{500, 475, 25},
		{1000, 950, 50},
		{999999999, 949999999, 50000000},
	}

	for i, item := range testData {
		seller, platform := payment.Split(item.amount)
		if seller != item.seller || platform != item.platform {
			t.Errorf("%d: split(%d) = %d, %d  expected: %d, %d",
				i, item.amount, seller, platform, item.seller, item.platform)
		}
		if seller+platform != item.amount {
			t.Errorf("%d: split does not sum: %d + %d ≠ %d", i, seller, platform, item.amount)
		}
	}
}

// the 128 bit intermediate keeps the split exact at the top of the range
func TestSplitLargeAmounts(t *testing.T) {
	testData := []uint64{
		math.MaxUint64,
		math.MaxUint64 - 1,
		math.MaxUint64 / 2,
		1 << 63,
	}

	for i, amount := range testData {
		seller, platform := payment.Split(amount)
		if seller+platform != amount {
			t.Errorf("%d: split does not sum for: %d", i, amount)
		}
		if seller < platform {
			t.Errorf("%d: seller share below platform share for: %d", i, amount)
		}
	}
}

func TestCreditAndBalance(t *testing.T) {
	acc, _, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	if payment.Balance(acc) != 0 {
		t.Fatal("fresh account has a balance")
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction failed: %s", err)
	}
	if err := payment.Credit(trx, acc, 70); nil != err {
		t.Fatalf("credit failed: %s", err)
	}
	// a second credit on the same transaction sees the first
	if err := payment.Credit(trx, acc, 30); nil != err {
		t.Fatalf("credit failed: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit failed: %s", err)
	}

	if payment.Balance(acc) != 100 {
		t.Errorf("balance: %d  expected: 100", payment.Balance(acc))
	}
}

func TestCreditAborted(t *testing.T) {
	acc, _, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction failed: %s", err)
	}
	if err := payment.Credit(trx, acc, 55); nil != err {
		t.Fatalf("credit failed: %s", err)
	}
	trx.Abort()

	if payment.Balance(acc) != 0 {
		t.Error("aborted credit reached the database")
	}
}

func TestCreditOverflow(t *testing.T) {
	acc, _, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction failed: %s", err)
	}
	if err := payment.Credit(trx, acc, math.MaxUint64); nil != err {
		t.Fatalf("credit failed: %s", err)
	}

	err = payment.Credit(trx, acc, 1)
	if fault.BalanceOverflow != err {
		t.Errorf("expected overflow, got: %v", err)
	}
	trx.Abort()
}
