// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"fmt"
	"strings"

	"github.com/jaguarX024/Ship-Tracker/fault"
)

// identifier limits
const (
	MinID = 10000 // lowest valid ship identifier
	MaxID = 99999 // highest valid ship identifier
)

// State - condition of a ship
type State int

// possible states
const (
	Alive State = iota
	Lost
)

// ShipType - category of a ship
type ShipType int

// possible ship types
const (
	Cargo ShipType = iota
	Telescope
	Communicator
	FuelCarrier
	RoboCarrier
)

// ShipTypeCount - number of defined ship types
const ShipTypeCount = int(RoboCarrier) + 1

// defaults for a newly created ship
const (
	DefaultType   = Cargo
	DefaultState  = Alive
	defaultHeight = 0
)

// Ship - a node in the tree
type Ship struct {
	left     *Ship    // left sub-tree
	right    *Ship    // right sub-tree
	id       int      // key part for ordering
	shipType ShipType // category
	state    State    // alive/lost
	height   int      // height of the sub-tree rooted here, leaf is 0
}

// ID - read the identifier from a ship
func (p *Ship) ID() int {
	return p.id
}

// Type - read the category of a ship
func (p *Ship) Type() ShipType {
	return p.shipType
}

// State - read the state of a ship
func (p *Ship) State() State {
	return p.state
}

// Height - height of the sub-tree rooted at this ship
func (p *Ship) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Ship) Left() *Ship {
	return p.left
}

// Right - right child or nil
func (p *Ship) Right() *Ship {
	return p.right
}

// String - identifier and height as shown in a dump
func (p *Ship) String() string {
	return fmt.Sprintf("%d:%d", p.id, p.height)
}

// ValidID - true if the identifier is within [MinID, MaxID]
func ValidID(id int) bool {
	return id >= MinID && id <= MaxID
}

func (s State) String() string {
	switch s {
	case Alive:
		return "ALIVE"
	case Lost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

func (t ShipType) String() string {
	switch t {
	case Cargo:
		return "CARGO"
	case Telescope:
		return "TELESCOPE"
	case Communicator:
		return "COMMUNICATOR"
	case FuelCarrier:
		return "FUELCARRIER"
	case RoboCarrier:
		return "ROBOCARRIER"
	default:
		return "UNKNOWN"
	}
}

// ParseShipType - convert a name (any case) to a ship type
func ParseShipType(s string) (ShipType, error) {
	for t := Cargo; t <= RoboCarrier; t += 1 {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return DefaultType, fault.ErrInvalidShipType
}

// ParseState - convert a name (any case) to a state
func ParseState(s string) (State, error) {
	switch strings.ToUpper(s) {
	case "ALIVE":
		return Alive, nil
	case "LOST":
		return Lost, nil
	}
	return DefaultState, fault.ErrInvalidState
}
