// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/roles"
	"github.com/bitmark-inc/datamarkd/rpc/auth"
	"github.com/bitmark-inc/datamarkd/rpc/role"
)

// GrantRole - give a role to an account, signed by an admin
func (client *Client) GrantRole(admin *account.PrivateKey, r roles.Role, holder *account.Account) (*role.GrantReply, error) {

	arguments := role.GrantArguments{
		Admin:  admin.Account(),
		Role:   r,
		Holder: holder,
	}
	arguments.Signature = admin.Sign(
		auth.Pack("Role.Grant", []byte(r.String()), holder.Bytes()))

	client.printJson("Role.Grant request", arguments)

	var reply role.GrantReply
	err := client.client.Call("Role.Grant", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Role.Grant reply", reply)

	return &reply, nil
}

// RevokeRole - take a role away from an account, signed by an admin
func (client *Client) RevokeRole(admin *account.PrivateKey, r roles.Role, holder *account.Account) (*role.RevokeReply, error) {

	arguments := role.RevokeArguments{
		Admin:  admin.Account(),
		Role:   r,
		Holder: holder,
	}
	arguments.Signature = admin.Sign(
		auth.Pack("Role.Revoke", []byte(r.String()), holder.Bytes()))

	client.printJson("Role.Revoke request", arguments)

	var reply role.RevokeReply
	err := client.client.Call("Role.Revoke", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Role.Revoke reply", reply)

	return &reply, nil
}

// PollRole - check whether an account holds a role
func (client *Client) PollRole(acc *account.Account, r roles.Role) (*role.PollReply, error) {

	arguments := role.PollArguments{
		Account: acc,
		Role:    r,
	}

	client.printJson("Role.Poll request", arguments)

	var reply role.PollReply
	err := client.client.Call("Role.Poll", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Role.Poll reply", reply)

	return &reply, nil
}
