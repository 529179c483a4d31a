// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

// Find - find a specific ship, nil if not present
//
// for a Splay tree a ship that is found becomes the root
func (fleet *Fleet) Find(id int) *Ship {
	p := find(id, fleet.root)
	if nil == p {
		return nil
	}
	if Splay == fleet.treeType {
		fleet.root = fleet.splay(fleet.root, id)
		return fleet.root
	}
	return p
}

// Contains - check for a ship without changing the tree
func (fleet *Fleet) Contains(id int) bool {
	return nil != find(id, fleet.root)
}

func find(id int, p *Ship) *Ship {
	for nil != p {
		switch {
		case id < p.id:
			p = p.left
		case id > p.id:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: lowest ship in a sub-tree
func (p *Ship) first() *Ship {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest ship in a sub-tree
func (p *Ship) last() *Ship {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// First - return the ship with the lowest identifier
func (fleet *Fleet) First() *Ship {
	return fleet.root.first()
}

// Last - return the ship with the highest identifier
func (fleet *Fleet) Last() *Ship {
	return fleet.root.last()
}
