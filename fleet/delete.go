// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"github.com/jaguarX024/Ship-Tracker/fault"
)

// Remove - removes a specific ship from the fleet
//
// an absent identifier leaves the tree unchanged, including under
// Splay where no splaying is done
func (fleet *Fleet) Remove(id int) error {
	if nil == find(id, fleet.root) {
		return fault.ErrShipNotFound
	}

	switch fleet.treeType {
	case BST:
		fleet.root = fleet.remove(id, fleet.root, false)
	case AVL:
		fleet.root = fleet.remove(id, fleet.root, true)
	case Splay:
		fleet.removeSplay(id)
	default:
		return fault.ErrNoTreeType
	}
	fleet.count -= 1
	return nil
}

// internal delete routine for BST and AVL, returns the new sub-tree root
func (fleet *Fleet) remove(id int, p *Ship, balanced bool) *Ship {
	if nil == p { // key not in tree
		return nil
	}

	switch {
	case id < p.id:
		p.left = fleet.remove(id, p.left, balanced)
	case id > p.id:
		p.right = fleet.remove(id, p.right, balanced)
	default: // found: delete p
		if nil == p.left {
			q := p.right
			freeShip(p)
			return q
		}
		if nil == p.right {
			q := p.left
			freeShip(p)
			return q
		}
		// two children: take over the successor's content
		// then remove the successor from the right sub-tree
		s := p.right.first()
		p.id = s.id
		p.state = s.state
		p.right = fleet.remove(s.id, p.right, balanced)
	}

	updateHeight(p)
	if balanced {
		return fleet.rebalance(p)
	}
	return p
}

// internal delete routine for Splay, the key must be present
func (fleet *Fleet) removeSplay(id int) {
	fleet.root = fleet.splay(fleet.root, id)
	q := fleet.root
	if nil == q || q.id != id {
		return
	}

	if nil == q.left {
		fleet.root = q.right
	} else {
		// every key on the left is smaller than id so this brings
		// the maximum of the left sub-tree to its top, leaving it
		// without a right child
		r := fleet.splay(q.left, id)
		r.right = q.right
		updateHeight(r)
		fleet.root = r
	}
	freeShip(q)
}
