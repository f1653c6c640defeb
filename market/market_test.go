// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"math"
	"os"
	"testing"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/market"
	"github.com/bitmark-inc/datamarkd/messagebus"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/storage"
	"github.com/bitmark-inc/datamarkd/treasury"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("market"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

// discard any queued notifications from earlier operations
func drainBus() {
	for {
		select {
		case <-messagebus.Chan():
		default:
			return
		}
	}
}

func mustMint(t *testing.T, owner *account.Account, reference string) uint64 {
	t.Helper()
	assetId, err := asset.Mint(owner, reference, asset.Public, constants.MintFee)
	if nil != err {
		t.Fatalf("mint failed: %s", err)
	}
	return assetId
}

func TestListAndPurchase(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	buyer, err := fixtures.NewParticipant(roles.Consumer)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-1")
	drainBus()

	const price = 100

	err = market.ListForSale(seller.Account(), assetId, price)
	if nil != err {
		t.Fatalf("list failed: %s", err)
	}

	message := <-messagebus.Chan()
	listed, ok := message.Item.(messagebus.AssetListed)
	if !ok {
		t.Fatalf("wrong notification type: %T", message.Item)
	}
	if listed.AssetId != assetId || price != listed.Price ||
		listed.Owner != seller.Account().String() {
		t.Errorf("wrong notification: %+v", listed)
	}

	listing, err := market.GetListing(assetId)
	if nil != err {
		t.Fatalf("get listing failed: %s", err)
	}
	if price != listing.Price {
		t.Errorf("wrong price: %d  expected: %d", listing.Price, price)
	}

	sellerBefore := payment.Balance(seller.Account())
	treasuryBefore := treasury.Balance()

	err = market.Purchase(buyer.Account(), assetId, price)
	if nil != err {
		t.Fatalf("purchase failed: %s", err)
	}

	// ownership moved to the buyer
	record, err := asset.Get(assetId)
	if nil != err {
		t.Fatalf("get failed: %s", err)
	}
	if record.Owner.String() != buyer.Account().String() {
		t.Errorf("wrong owner after purchase: %s", record.Owner)
	}

	// the listing is gone
	_, err = market.GetListing(assetId)
	if fault.ListingNotFound != err {
		t.Errorf("expected listing removed, got: %v", err)
	}

	// price 100 at a 5% platform rate: 95 to the seller, 5 to the treasury
	if payment.Balance(seller.Account()) != sellerBefore+95 {
		t.Errorf("seller balance: %d  expected: %d", payment.Balance(seller.Account()), sellerBefore+95)
	}
	if treasury.Balance() != treasuryBefore+5 {
		t.Errorf("treasury balance: %d  expected: %d", treasury.Balance(), treasuryBefore+5)
	}
}

func TestPurchaseOverpayment(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	buyer, err := fixtures.NewParticipant(roles.Consumer)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-2")

	err = market.ListForSale(seller.Account(), assetId, 200)
	if nil != err {
		t.Fatalf("list failed: %s", err)
	}

	err = market.Purchase(buyer.Account(), assetId, 230)
	if nil != err {
		t.Fatalf("purchase failed: %s", err)
	}

	// the excess over the price comes back as ledger balance
	if payment.Balance(buyer.Account()) != 30 {
		t.Errorf("buyer balance: %d  expected: 30", payment.Balance(buyer.Account()))
	}
}

func TestRelistUpdatesPrice(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-3")

	if err := market.ListForSale(seller.Account(), assetId, 100); nil != err {
		t.Fatalf("list failed: %s", err)
	}
	if err := market.ListForSale(seller.Account(), assetId, 250); nil != err {
		t.Fatalf("relist failed: %s", err)
	}

	listing, err := market.GetListing(assetId)
	if nil != err {
		t.Fatalf("get listing failed: %s", err)
	}
	if 250 != listing.Price {
		t.Errorf("wrong price: %d  expected: 250", listing.Price)
	}
}

func TestListDenied(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	other, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	consumer, err := fixtures.NewParticipant(roles.Consumer)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-4")

	// only the owner may list
	err = market.ListForSale(other.Account(), assetId, 100)
	if fault.NotAssetOwner != err {
		t.Errorf("expected owner check, got: %v", err)
	}

	// a consumer lacks the provider role
	err = market.ListForSale(consumer.Account(), assetId, 100)
	if fault.NotRoleHolder != err {
		t.Errorf("expected access denied, got: %v", err)
	}

	// a price of zero is rejected
	err = market.ListForSale(seller.Account(), assetId, 0)
	if fault.ZeroPrice != err {
		t.Errorf("expected zero price denial, got: %v", err)
	}

	// an unminted asset cannot be listed
	err = market.ListForSale(seller.Account(), 99999, 100)
	if fault.AssetNotFound != err {
		t.Errorf("expected not found, got: %v", err)
	}

	if _, err := market.GetListing(assetId); fault.ListingNotFound != err {
		t.Errorf("a denied list still created a listing: %v", err)
	}
}

func TestPurchaseDenied(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	buyer, err := fixtures.NewParticipant(roles.Consumer)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-5")

	// not listed yet
	err = market.Purchase(buyer.Account(), assetId, 100)
	if fault.ListingNotFound != err {
		t.Errorf("expected listing not found, got: %v", err)
	}

	if err := market.ListForSale(seller.Account(), assetId, 100); nil != err {
		t.Fatalf("list failed: %s", err)
	}

	// a provider lacks the consumer role
	err = market.Purchase(seller.Account(), assetId, 100)
	if fault.NotRoleHolder != err {
		t.Errorf("expected access denied, got: %v", err)
	}

	// one unit short must fail
	err = market.Purchase(buyer.Account(), assetId, 99)
	if fault.InsufficientPayment != err {
		t.Errorf("expected underpayment, got: %v", err)
	}

	// the asset stays with the seller
	record, err := asset.Get(assetId)
	if nil != err {
		t.Fatalf("get failed: %s", err)
	}
	if record.Owner.String() != seller.Account().String() {
		t.Errorf("owner changed on denied purchase: %s", record.Owner)
	}
}

func TestPurchaseRollback(t *testing.T) {
	seller, err := fixtures.NewParticipant(roles.DataProvider)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}
	buyer, err := fixtures.NewParticipant(roles.Consumer)
	if nil != err {
		t.Fatalf("participant setup failed: %s", err)
	}

	assetId := mustMint(t, seller.Account(), "sale-6")

	if err := market.ListForSale(seller.Account(), assetId, 100); nil != err {
		t.Fatalf("list failed: %s", err)
	}

	// force the seller credit to overflow so the payment leg fails
	// after the ownership transfer has already been queued
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction failed: %s", err)
	}
	trx.PutN(storage.Pool.Balances, seller.Account().Bytes(), math.MaxUint64)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit failed: %s", err)
	}

	err = market.Purchase(buyer.Account(), assetId, 100)
	if fault.BalanceOverflow != err {
		t.Fatalf("expected overflow, got: %v", err)
	}

	// nothing must have changed
	record, err := asset.Get(assetId)
	if nil != err {
		t.Fatalf("get failed: %s", err)
	}
	if record.Owner.String() != seller.Account().String() {
		t.Errorf("owner changed on aborted purchase: %s", record.Owner)
	}
	if _, err := market.GetListing(assetId); nil != err {
		t.Errorf("listing lost on aborted purchase: %v", err)
	}
	if payment.Balance(seller.Account()) != math.MaxUint64 {
		t.Error("seller balance changed on aborted purchase")
	}
}
