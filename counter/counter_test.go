// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/datamarkd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	if !c.IsZero() {
		t.Fatal("new counter is not zero")
	}

	if 1 != c.Increment() {
		t.Error("increment did not return 1")
	}
	c.Increment()
	c.Increment()
	if 3 != c.Uint64() {
		t.Errorf("expected 3, got %d", c.Uint64())
	}
	if 2 != c.Decrement() {
		t.Error("decrement did not return 2")
	}
}

func TestCounterParallel(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const n = 100
	wg.Add(n)
	for i := 0; i < n; i += 1 {
		go func() {
			c.Increment()
			wg.Done()
		}()
	}
	wg.Wait()

	if n != c.Uint64() {
		t.Errorf("expected %d, got %d", n, c.Uint64())
	}
}
