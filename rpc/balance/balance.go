// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/payment"
	"github.com/bitmark-inc/datamarkd/rpc/ratelimit"
)

// Balance - type for the RPC
type Balance struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Balance {
	return &Balance{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		IsNormalMode: isNormalMode,
	}
}

// GetArguments - arguments for a balance query
type GetArguments struct {
	Account *account.Account `json:"account"`
}

// GetReply - the credited ledger balance
type GetReply struct {
	Balance uint64 `json:"balance"`
}

// Get - RPC to read the credited balance of an account
func (b *Balance) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}
	if !b.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Account {
		return fault.MissingParameters
	}

	reply.Balance = payment.Balance(arguments.Account)
	return nil
}
