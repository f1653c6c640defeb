// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - registry chain names
package chain

// names of the networks a node can join
const (
	Datamark = "datamark" // main network
	Testing  = "testing"  // shared test network
	Local    = "local"    // local standalone network
)

// Valid - check a chain name is one of the defined networks
func Valid(name string) bool {
	switch name {
	case Datamark, Testing, Local:
		return true
	default:
		return false
	}
}
