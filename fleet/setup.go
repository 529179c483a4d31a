// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fleet

import (
	"strings"

	"github.com/jaguarX024/Ship-Tracker/counter"
	"github.com/jaguarX024/Ship-Tracker/fault"
)

// TreeType - balancing mode of a fleet
type TreeType int

// possible tree types
const (
	None TreeType = iota
	BST
	AVL
	Splay
)

func (t TreeType) String() string {
	switch t {
	case None:
		return "none"
	case BST:
		return "bst"
	case AVL:
		return "avl"
	case Splay:
		return "splay"
	default:
		return "unknown"
	}
}

// ParseTreeType - convert a name (any case) to a tree type
func ParseTreeType(s string) (TreeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "bst":
		return BST, nil
	case "avl":
		return AVL, nil
	case "splay":
		return Splay, nil
	}
	return None, fault.ErrInvalidTreeType
}

// Fleet - type to hold the root ship of a tree
type Fleet struct {
	root      *Ship
	treeType  TreeType
	count     int
	rotations counter.Counter
}

// New - create an initially empty fleet of the given tree type
func New(treeType TreeType) *Fleet {
	return &Fleet{
		root:     nil,
		treeType: treeType,
		count:    0,
	}
}

// IsEmpty - true if fleet contains no ships
func (fleet *Fleet) IsEmpty() bool {
	return nil == fleet.root
}

// Count - number of ships currently in the fleet
func (fleet *Fleet) Count() int {
	return fleet.count
}

// Root - return the root ship of the tree
func (fleet *Fleet) Root() *Ship {
	return fleet.root
}

// Type - the current tree type
func (fleet *Fleet) Type() TreeType {
	return fleet.treeType
}

// Rotations - total number of single rotations performed so far
func (fleet *Fleet) Rotations() uint64 {
	return fleet.rotations.Uint64()
}

// SetType - switch the tree type
//
// changing to AVL from any other type rebalances the existing tree,
// changing to None discards all ships, BST and Splay only change the
// type and keep the current shape
func (fleet *Fleet) SetType(treeType TreeType) {
	switch treeType {
	case AVL:
		if AVL != fleet.treeType {
			fleet.root = fleet.transfer(fleet.root)
		}
		fleet.treeType = AVL
	case None:
		fleet.Clear()
	case BST, Splay:
		fleet.treeType = treeType
	}
}

// Clear - discard all ships, the tree type becomes None
func (fleet *Fleet) Clear() {
	freeTree(fleet.root)
	fleet.root = nil
	fleet.count = 0
	fleet.treeType = None
}

// Copy - return a fully independent copy of the fleet
func (fleet *Fleet) Copy() *Fleet {
	return &Fleet{
		root:     copyTree(fleet.root),
		treeType: fleet.treeType,
		count:    fleet.count,
	}
}

// Assign - replace the contents of the fleet with a copy of source
func (fleet *Fleet) Assign(source *Fleet) {
	if fleet == source {
		return
	}
	fleet.Clear()
	fleet.treeType = source.treeType
	fleet.root = copyTree(source.root)
	fleet.count = source.count
}

// internal: duplicate every ship, heights are kept as is
func copyTree(p *Ship) *Ship {
	if nil == p {
		return nil
	}
	q := newShip(p.id, p.shipType, p.state)
	q.height = p.height
	q.left = copyTree(p.left)
	q.right = copyTree(p.right)
	return q
}
