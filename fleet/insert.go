// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"github.com/jaguarX024/Ship-Tracker/fault"
)

// Insert - add a new ship to the fleet
//
// the ship is not added if the identifier is out of range, is already
// in the fleet or the fleet has no tree type; the error gives the
// reason and the tree is left unchanged
func (fleet *Fleet) Insert(id int, shipType ShipType, state State) error {
	if !ValidID(id) {
		return fault.ErrIdentifierOutOfRange
	}
	if nil != find(id, fleet.root) {
		return fault.ErrDuplicateIdentifier
	}

	switch fleet.treeType {
	case BST:
		fleet.root = insertBST(fleet.root, newShip(id, shipType, state))
	case AVL:
		fleet.root = fleet.insertAVL(fleet.root, newShip(id, shipType, state))
	case Splay:
		fleet.root = insertBST(fleet.root, newShip(id, shipType, state))
		fleet.root = fleet.splay(fleet.root, id)
	default:
		return fault.ErrNoTreeType
	}
	fleet.count += 1
	return nil
}

// internal: plain binary search tree insert, returns the new sub-tree root
func insertBST(p *Ship, ship *Ship) *Ship {
	if nil == p {
		return ship
	}
	if ship.id < p.id {
		p.left = insertBST(p.left, ship)
	} else {
		p.right = insertBST(p.right, ship)
	}
	updateHeight(p)
	return p
}

// internal: AVL insert, the rotation is selected by where the new key
// went below the unbalanced ship
func (fleet *Fleet) insertAVL(p *Ship, ship *Ship) *Ship {
	if nil == p {
		return ship
	}
	if ship.id < p.id {
		p.left = fleet.insertAVL(p.left, ship)
	} else {
		p.right = fleet.insertAVL(p.right, ship)
	}
	updateHeight(p)

	b := balanceFactor(p)
	switch {
	case b > 1 && ship.id < p.left.id:
		// single LL rotation
		return fleet.rotateRight(p)
	case b < -1 && ship.id > p.right.id:
		// single RR rotation
		return fleet.rotateLeft(p)
	case b > 1 && ship.id > p.left.id:
		// double LR rotation
		p.left = fleet.rotateLeft(p.left)
		return fleet.rotateRight(p)
	case b < -1 && ship.id < p.right.id:
		// double RL rotation
		p.right = fleet.rotateRight(p.right)
		return fleet.rotateLeft(p)
	}
	return p
}
