// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/bitmark-inc/datamarkd/messagebus"
)

func TestSendReceive(t *testing.T) {
	item := messagebus.AssetCreated{
		AssetId:   1,
		Reference: "r1",
		Category:  "public",
		Creator:   "some-account",
	}

	messagebus.Send("asset", item)

	received := <-messagebus.Chan()
	if "asset" != received.From {
		t.Errorf("wrong sender: %q", received.From)
	}
	actual, ok := received.Item.(messagebus.AssetCreated)
	if !ok {
		t.Fatalf("wrong item type: %T", received.Item)
	}
	if actual != item {
		t.Errorf("wrong item: %v  expected: %v", actual, item)
	}
}
