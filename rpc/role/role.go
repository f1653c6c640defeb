// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package role

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/ratelimit"
)

// Role - type for the RPC
type Role struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	rateLimitRole = 200
	rateBurstRole = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Role {
	return &Role{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitRole, rateBurstRole),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// GrantArguments - signed arguments for a role grant
type GrantArguments struct {
	Admin     *account.Account  `json:"admin"`
	Role      roles.Role        `json:"role"`
	Holder    *account.Account  `json:"holder"`
	Signature account.Signature `json:"signature"`
}

// GrantReply - result of a role grant
type GrantReply struct {
	Granted bool `json:"granted"`
}

// Grant - RPC to give a role to an account
func (role *Role) Grant(arguments *GrantArguments, reply *GrantReply) error {

	if err := ratelimit.Limit(role.Limiter); nil != err {
		return err
	}
	if !role.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Admin || nil == arguments.Holder {
		return fault.MissingParameters
	}
	if !arguments.Role.IsValid() {
		return fault.InvalidRole
	}

	role.Log.Infof("Role.Grant: %+v", arguments)

	err := auth.Verify(arguments.Admin, arguments.Signature, role.IsTestingChain(),
		"Role.Grant", []byte(arguments.Role.String()), arguments.Holder.Bytes())
	if nil != err {
		return err
	}

	err = roles.Grant(arguments.Admin, arguments.Role, arguments.Holder)
	if nil != err {
		return err
	}

	reply.Granted = true
	return nil
}

// RevokeArguments - signed arguments for a role revocation
type RevokeArguments struct {
	Admin     *account.Account  `json:"admin"`
	Role      roles.Role        `json:"role"`
	Holder    *account.Account  `json:"holder"`
	Signature account.Signature `json:"signature"`
}

// RevokeReply - result of a role revocation
type RevokeReply struct {
	Revoked bool `json:"revoked"`
}

// Revoke - RPC to take a role away from an account
func (role *Role) Revoke(arguments *RevokeArguments, reply *RevokeReply) error {

	if err := ratelimit.Limit(role.Limiter); nil != err {
		return err
	}
	if !role.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Admin || nil == arguments.Holder {
		return fault.MissingParameters
	}
	if !arguments.Role.IsValid() {
		return fault.InvalidRole
	}

	role.Log.Infof("Role.Revoke: %+v", arguments)

	err := auth.Verify(arguments.Admin, arguments.Signature, role.IsTestingChain(),
		"Role.Revoke", []byte(arguments.Role.String()), arguments.Holder.Bytes())
	if nil != err {
		return err
	}

	err = roles.Revoke(arguments.Admin, arguments.Role, arguments.Holder)
	if nil != err {
		return err
	}

	reply.Revoked = true
	return nil
}

// PollArguments - arguments for a role query
type PollArguments struct {
	Account *account.Account `json:"account"`
	Role    roles.Role       `json:"role"`
}

// PollReply - result of a role query
type PollReply struct {
	HasRole bool `json:"hasRole"`
}

// Poll - RPC to check whether an account holds a role
func (role *Role) Poll(arguments *PollArguments, reply *PollReply) error {

	if err := ratelimit.Limit(role.Limiter); nil != err {
		return err
	}
	if !role.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}
	if nil == arguments.Account {
		return fault.MissingParameters
	}
	if !arguments.Role.IsValid() {
		return fault.InvalidRole
	}

	reply.HasRole = roles.Has(arguments.Role, arguments.Account)
	return nil
}
