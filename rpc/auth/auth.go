// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - request authentication for the client RPC
//
// every state-changing request is signed by the calling account over
// a canonical packed form of its fields; the server rebuilds the same
// byte sequence and checks the ed25519 signature, so possession of
// the private key is proven on each call
package auth

import (
	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/util"
)

// Pack - canonical byte form of a request
//
// the method name and each field are length prefixed with a varint so
// that no two distinct requests share a packing
func Pack(method string, parts ...[]byte) []byte {
	message := util.ToVarint64(uint64(len(method)))
	message = append(message, method...)
	for _, part := range parts {
		message = append(message, util.ToVarint64(uint64(len(part)))...)
		message = append(message, part...)
	}
	return message
}

// Verify - check the signature on a request
//
// the caller's key must belong to the chain the node is running on
func Verify(caller *account.Account, signature account.Signature, testnet bool, method string, parts ...[]byte) error {
	if nil == caller {
		return fault.MissingParameters
	}
	if caller.IsTesting() != testnet {
		return fault.WrongNetworkForPublicKey
	}
	return caller.CheckSignature(Pack(method, parts...), signature)
}
