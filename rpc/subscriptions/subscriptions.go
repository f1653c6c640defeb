// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subscriptions

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/ratelimit"
	"github.com/bitmark-inc/datamarkd/subscription"
	"github.com/bitmark-inc/datamarkd/util"
)

// Subscription - type for the RPC
type Subscription struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	rateLimitSubscription = 200
	rateBurstSubscription = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Subscription {
	return &Subscription{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitSubscription, rateBurstSubscription),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// CreateArguments - signed arguments to open a subscription
type CreateArguments struct {
	Subscriber *account.Account  `json:"subscriber"`
	AssetId    uint64            `json:"assetId"`
	Payment    uint64            `json:"payment"`
	Signature  account.Signature `json:"signature"`
}

// CreateReply - expiry of the new subscription
type CreateReply struct {
	ExpiresAt int64 `json:"expiresAt"`
}

// Create - RPC to subscribe to an asset
func (s *Subscription) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Subscriber {
		return fault.MissingParameters
	}

	s.Log.Infof("Subscription.Create: %+v", arguments)

	err := auth.Verify(arguments.Subscriber, arguments.Signature, s.IsTestingChain(),
		"Subscription.Create",
		util.ToVarint64(arguments.AssetId),
		util.ToVarint64(arguments.Payment))
	if nil != err {
		return err
	}

	err = subscription.Subscribe(arguments.Subscriber, arguments.AssetId, arguments.Payment, time.Now())
	if nil != err {
		return err
	}

	record, err := subscription.Get(arguments.AssetId, arguments.Subscriber)
	if nil != err {
		return err
	}

	reply.ExpiresAt = record.ExpiresAt
	return nil
}

// AccessArguments - signed arguments to read an asset reference
type AccessArguments struct {
	Subscriber *account.Account  `json:"subscriber"`
	AssetId    uint64            `json:"assetId"`
	Signature  account.Signature `json:"signature"`
}

// AccessReply - the protected external reference
type AccessReply struct {
	Reference string `json:"reference"`
}

// Access - RPC to read an asset's external reference under a live subscription
//
// the reply releases protected data so this request is signed even
// though it changes nothing
func (s *Subscription) Access(arguments *AccessArguments, reply *AccessReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Subscriber {
		return fault.MissingParameters
	}

	s.Log.Infof("Subscription.Access: %+v", arguments)

	err := auth.Verify(arguments.Subscriber, arguments.Signature, s.IsTestingChain(),
		"Subscription.Access",
		util.ToVarint64(arguments.AssetId))
	if nil != err {
		return err
	}

	reference, err := subscription.Access(arguments.Subscriber, arguments.AssetId, time.Now())
	if nil != err {
		return err
	}

	reply.Reference = reference
	return nil
}
