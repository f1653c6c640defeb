// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/datamarkd/rpc/node"
)

// GetNodeInfo - fetch the status of the connected datamarkd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	arguments := node.InfoArguments{}

	var reply node.InfoReply
	err := client.client.Call("Node.Info", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Node.Info reply", reply)

	return &reply, nil
}
