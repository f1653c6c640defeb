// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/datamarkd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - the type of record in the queue
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing notification records
	queue = make(chan Message, queueSize)

	// count of records dropped because the queue was full
	dropCount counter.Counter
)

// Send - queue a notification record
//
// the record is dropped rather than blocking the ledger operation
// when no consumer is draining the queue
func Send(from string, item interface{}) {
	select {
	case queue <- Message{From: from, Item: item}:
	default:
		dropCount.Increment()
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// DropCount - number of dropped records since start up
func DropCount() uint64 {
	return dropCount.Uint64()
}
