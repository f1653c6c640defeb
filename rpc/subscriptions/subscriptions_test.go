// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subscriptions_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/asset"
	"github.com/bitmark-inc/datamarkd/constants"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/subscriptions"
	"github.com/bitmark-inc/datamarkd/util"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("rpc-subscriptions"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

func newSubscription() *subscriptions.Subscription {
	return subscriptions.New(
		logger.New("test-rpc-subscriptions"),
		func(_ mode.Mode) bool { return true },
		func() bool { return true },
	)
}

func TestSubscriptionCreateAndAccess(t *testing.T) {
	s := newSubscription()

	provider, err := fixtures.NewParticipant(roles.DataProvider)
	assert.Nil(t, err, "participant setup failed")
	consumer, err := fixtures.NewParticipant(roles.Consumer)
	assert.Nil(t, err, "participant setup failed")

	assetId, err := asset.Mint(provider.Account(), "s3://bucket/data", asset.Public, constants.MintFee)
	assert.Nil(t, err, "mint failed")

	create := subscriptions.CreateArguments{
		Subscriber: consumer.Account(),
		AssetId:    assetId,
		Payment:    constants.MonthlyFee,
	}
	create.Signature = consumer.Sign(auth.Pack(
		"Subscription.Create",
		util.ToVarint64(create.AssetId),
		util.ToVarint64(create.Payment)))

	var createReply subscriptions.CreateReply
	err = s.Create(&create, &createReply)
	assert.Nil(t, err, "create failed")
	assert.True(t, createReply.ExpiresAt > 0, "missing expiry")

	access := subscriptions.AccessArguments{
		Subscriber: consumer.Account(),
		AssetId:    assetId,
	}
	access.Signature = consumer.Sign(auth.Pack(
		"Subscription.Access",
		util.ToVarint64(access.AssetId)))

	var accessReply subscriptions.AccessReply
	err = s.Access(&access, &accessReply)
	assert.Nil(t, err, "access failed")
	assert.Equal(t, "s3://bucket/data", accessReply.Reference, "wrong reference")
}

func TestSubscriptionAccessForged(t *testing.T) {
	s := newSubscription()

	provider, err := fixtures.NewParticipant(roles.DataProvider)
	assert.Nil(t, err, "participant setup failed")
	consumer, err := fixtures.NewParticipant(roles.Consumer)
	assert.Nil(t, err, "participant setup failed")
	intruder, err := fixtures.NewParticipant(roles.Consumer)
	assert.Nil(t, err, "participant setup failed")

	assetId, err := asset.Mint(provider.Account(), "s3://bucket/data2", asset.Public, constants.MintFee)
	assert.Nil(t, err, "mint failed")

	create := subscriptions.CreateArguments{
		Subscriber: consumer.Account(),
		AssetId:    assetId,
		Payment:    constants.MonthlyFee,
	}
	create.Signature = consumer.Sign(auth.Pack(
		"Subscription.Create",
		util.ToVarint64(create.AssetId),
		util.ToVarint64(create.Payment)))

	var createReply subscriptions.CreateReply
	err = s.Create(&create, &createReply)
	assert.Nil(t, err, "create failed")

	// an intruder cannot borrow another account's subscription
	access := subscriptions.AccessArguments{
		Subscriber: consumer.Account(),
		AssetId:    assetId,
	}
	access.Signature = intruder.Sign(auth.Pack(
		"Subscription.Access",
		util.ToVarint64(access.AssetId)))

	var accessReply subscriptions.AccessReply
	err = s.Access(&access, &accessReply)
	assert.Equal(t, fault.InvalidSignature, err, "forged access accepted")
}
