// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/datamarkd/counter"
	"github.com/bitmark-inc/datamarkd/mode"
	"github.com/bitmark-inc/datamarkd/rpc/assets"
	"github.com/bitmark-inc/datamarkd/rpc/balance"
	"github.com/bitmark-inc/datamarkd/rpc/marketplace"
	"github.com/bitmark-inc/datamarkd/rpc/node"
	"github.com/bitmark-inc/datamarkd/rpc/role"
	"github.com/bitmark-inc/datamarkd/rpc/subscriptions"
)

// Create - register all services on a fresh rpc server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(role.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(assets.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(marketplace.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(subscriptions.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(balance.New(log, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
