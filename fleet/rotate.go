// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

// height of a possibly empty sub-tree
func height(p *Ship) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute height from the children
func updateHeight(p *Ship) {
	if nil == p {
		return
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
}

// left height minus right height
func balanceFactor(p *Ship) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// single rotation promoting the left child
//
//	    p          p1
//	   / \        /  \
//	  p1  c  →   a    p
//	 /  \            / \
//	a    b          b   c
func (fleet *Fleet) rotateRight(p *Ship) *Ship {
	if nil == p || nil == p.left {
		return p
	}
	p1 := p.left
	p.left = p1.right
	p1.right = p
	updateHeight(p)
	updateHeight(p1)
	fleet.rotations.Increment()
	return p1
}

// single rotation promoting the right child (mirror of rotateRight)
func (fleet *Fleet) rotateLeft(p *Ship) *Ship {
	if nil == p || nil == p.right {
		return p
	}
	p1 := p.right
	p.right = p1.left
	p1.left = p
	updateHeight(p)
	updateHeight(p1)
	fleet.rotations.Increment()
	return p1
}

// restore AVL balance at p using the balance of its heavier child
// p's children must already be balanced and p's height current
func (fleet *Fleet) rebalance(p *Ship) *Ship {
	if nil == p {
		return nil
	}
	switch b := balanceFactor(p); {
	case b > 1:
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = fleet.rotateLeft(p.left)
		}
		return fleet.rotateRight(p)
	case b < -1:
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = fleet.rotateRight(p.right)
		}
		return fleet.rotateLeft(p)
	}
	return p
}
