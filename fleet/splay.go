// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

// bring the ship with id to the top of the sub-tree
//
// if id is not present the last ship visited on the search path is
// brought up instead
func (fleet *Fleet) splay(p *Ship, id int) *Ship {
	if nil == p || p.id == id {
		return p
	}

	if id < p.id {
		if nil == p.left {
			return p
		}
		if id < p.left.id {
			// zig-zig
			p.left.left = fleet.splay(p.left.left, id)
			p = fleet.rotateRight(p)
		} else if id > p.left.id {
			// zig-zag
			p.left.right = fleet.splay(p.left.right, id)
			if nil != p.left.right {
				p.left = fleet.rotateLeft(p.left)
			}
		}
		if nil == p.left {
			return p
		}
		return fleet.rotateRight(p)
	}

	if nil == p.right {
		return p
	}
	if id > p.right.id {
		// zag-zag
		p.right.right = fleet.splay(p.right.right, id)
		p = fleet.rotateLeft(p)
	} else if id < p.right.id {
		// zag-zig
		p.right.left = fleet.splay(p.right.left, id)
		if nil != p.right.left {
			p.right = fleet.rotateRight(p.right)
		}
	}
	if nil == p.right {
		return p
	}
	return fleet.rotateLeft(p)
}
