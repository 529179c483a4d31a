// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"fmt"
)

// CheckOrder - every left key is smaller and every right key larger
func (fleet *Fleet) CheckOrder() bool {
	return checkOrder(fleet.root, MinID-1, MaxID+1)
}

// internal: keys must lie strictly between low and high
func checkOrder(p *Ship, low int, high int) bool {
	if nil == p {
		return true
	}
	if p.id <= low || p.id >= high {
		fmt.Printf("order fail at ship: %d  expected range: (%d, %d)\n", p.id, low, high)
		return false
	}
	return checkOrder(p.left, low, p.id) && checkOrder(p.right, p.id, high)
}

// CheckHeights - every stored height matches the sub-tree
func (fleet *Fleet) CheckHeights() bool {
	_, ok := checkHeights(fleet.root)
	return ok
}

func checkHeights(p *Ship) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := rh + 1
	if lh > rh {
		h = lh + 1
	}
	if h != p.height {
		fmt.Printf("height fail at ship: %d  actual: %d  expected: %d\n", p.id, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - AVL condition holds at every ship
func (fleet *Fleet) CheckBalance() bool {
	return checkBalance(fleet.root)
}

func checkBalance(p *Ship) bool {
	if nil == p {
		return true
	}
	if b := balanceFactor(p); b > 1 || b < -1 {
		fmt.Printf("balance fail at ship: %d  balance: %+d\n", p.id, b)
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}
