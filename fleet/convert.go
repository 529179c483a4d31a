// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

// reshape an arbitrary binary search tree into an AVL tree
//
// passes are repeated until one completes without any rotation
func (fleet *Fleet) transfer(p *Ship) *Ship {
	for {
		before := fleet.rotations.Uint64()
		p = fleet.rebalanceAll(p)
		if 0 == fleet.rotations.Since(before) {
			return p
		}
	}
}

// internal: bottom-up pass, children are settled before their parent
func (fleet *Fleet) rebalanceAll(p *Ship) *Ship {
	if nil == p {
		return nil
	}
	p.left = fleet.rebalanceAll(p.left)
	p.right = fleet.rebalanceAll(p.right)
	updateHeight(p)
	return fleet.settle(p)
}

// internal: rotate at p until its balance factor is within [-1, 1]
//
// both children must already be AVL trees, but the difference in their
// heights may be arbitrary; after each rotation the demoted ship is
// settled again since it can be left unbalanced
func (fleet *Fleet) settle(p *Ship) *Ship {
	for {
		switch b := balanceFactor(p); {
		case b > 1:
			if balanceFactor(p.left) < 0 {
				p.left = fleet.rotateLeft(p.left)
			}
			p = fleet.rotateRight(p)
			p.right = fleet.settle(p.right)
		case b < -1:
			if balanceFactor(p.right) > 0 {
				p.right = fleet.rotateRight(p.right)
			}
			p = fleet.rotateLeft(p)
			p.left = fleet.settle(p.left)
		default:
			return p
		}
		updateHeight(p)
	}
}
