// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/rpc/balance"
)

// GetBalance - read the credited ledger balance of an account
func (client *Client) GetBalance(acc *account.Account) (*balance.GetReply, error) {

	arguments := balance.GetArguments{
		Account: acc,
	}

	client.printJson("Balance.Get request", arguments)

	var reply balance.GetReply
	err := client.client.Call("Balance.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance.Get reply", reply)

	return &reply, nil
}
