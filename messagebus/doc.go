// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queue for event notifications
//
// every successful ledger operation queues one notification record;
// the publisher drains the queue and broadcasts the records
package messagebus
