// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"sync"
)

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Ship     // linked list of reclaimed ships
var totalShips int // total ships created
var freeShips int  // number of ships in the pool

// allocate a new ship, reuses reclaimed ships if any are available
// height and links are always reset
func newShip(id int, shipType ShipType, state State) *Ship {
	m.Lock()
	if nil == pool {
		if 0 != freeShips {
			m.Unlock()
			panic("ship pool corrupt")
		}
		totalShips += 1
		m.Unlock()
		return &Ship{
			id:       id,
			shipType: shipType,
			state:    state,
			height:   defaultHeight,
		}
	}
	p := pool
	pool = p.right
	p.id = id
	p.shipType = shipType
	p.state = state
	p.height = defaultHeight
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeShips -= 1
	m.Unlock()
	return p
}

// reclaim a ship and keep it in the pool
func freeShip(ship *Ship) {
	m.Lock()
	ship.right = pool // use as free list pointer

	ship.left = nil
	ship.id = 0
	ship.shipType = DefaultType
	ship.state = DefaultState
	ship.height = defaultHeight
	freeShips += 1

	pool = ship
	m.Unlock()
}

// reclaim an entire sub-tree
func freeTree(p *Ship) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)
	freeShip(p)
}
