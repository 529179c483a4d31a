// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/jaguarX024/Ship-Tracker/counter"
)

func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	mark := c1.Uint64()
	if n := c1.Add(3); 8 != n {
		t.Errorf("add returned: %d  expected: 8", n)
	}
	if n := c1.Since(mark); 3 != n {
		t.Errorf("since returned: %d  expected: 3", n)
	}

	if n := c1.Reset(); 8 != n {
		t.Errorf("reset returned: %d  expected: 8", n)
	}
	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero after reset: %d", c1.Uint64())
	}
}
