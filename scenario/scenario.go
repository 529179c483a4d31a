// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
	"github.com/jaguarX024/Ship-Tracker/generator"
)

// Scenario - one demonstration run
type Scenario struct {
	Name    string
	Tree    fleet.TreeType
	Ships   int              // number of insert attempts
	Remove  int              // ships removed, starting from the middle insert
	Convert []fleet.TreeType // tree type changes applied in order
}

// Result - summary of a run
type Result struct {
	Name      string        `json:"name"`
	Tree      string        `json:"tree"`
	Inserted  int           `json:"inserted"`
	Rejected  int           `json:"rejected"`
	Removed   int           `json:"removed"`
	Rotations uint64        `json:"rotations"`
	Height    int           `json:"height"`
	Ships     []fleet.Entry `json:"ships"`
}

// Source - where identifiers and ship types come from
type Source struct {
	IDs   *generator.Generator
	Types *generator.Generator
}

// NewSource - generators over the valid identifier and ship type ranges
func NewSource(seed int64) (*Source, error) {
	ids, err := generator.New(fleet.MinID, fleet.MaxID, seed)
	if nil != err {
		return nil, err
	}
	types, err := generator.New(0, fleet.ShipTypeCount-1, seed)
	if nil != err {
		return nil, err
	}
	return &Source{IDs: ids, Types: types}, nil
}

// Run - execute a scenario, the final fleet is returned with the summary
func Run(log *logger.L, source *Source, reporter Reporter, s Scenario) (*fleet.Fleet, *Result, error) {
	if s.Ships < 0 || s.Remove < 0 {
		return nil, nil, fault.ErrInvalidCount
	}

	log.Infof("scenario: %q  tree: %s  ships: %d", s.Name, s.Tree, s.Ships)

	f := fleet.New(s.Tree)
	result := &Result{
		Name: s.Name,
	}

	inserted := make([]int, 0, s.Ships)
	for i := 0; i < s.Ships; i += 1 {
		id := source.IDs.Int()
		shipType := fleet.ShipType(source.Types.Int())
		if err := f.Insert(id, shipType, fleet.DefaultState); nil != err {
			log.Debugf("insert: %d  rejected: %s", id, err)
			result.Rejected += 1
			continue
		}
		log.Tracef("insert: %d  type: %s", id, shipType)
		inserted = append(inserted, id)
	}
	result.Inserted = len(inserted)

	if err := Verify(f); nil != err {
		return f, nil, err
	}
	err := reporter.Report(fmt.Sprintf("%s: after inserting %d ships", s.Name, len(inserted)), f)
	if nil != err {
		return f, nil, err
	}

	if s.Remove > 0 && len(inserted) > 0 {
		start := len(inserted) / 2
		removed := make([]int, 0, s.Remove)
	remove_loop:
		for i := 0; i < s.Remove; i += 1 {
			n := start + i
			if n >= len(inserted) {
				break remove_loop
			}
			id := inserted[n]
			if err := f.Remove(id); nil != err {
				log.Warnf("remove: %d  error: %s", id, err)
				continue remove_loop
			}
			removed = append(removed, id)
		}
		result.Removed = len(removed)

		if err := Verify(f); nil != err {
			return f, nil, err
		}
		err := reporter.Report(fmt.Sprintf("%s: after removing ships: %v", s.Name, removed), f)
		if nil != err {
			return f, nil, err
		}
	}

	for _, treeType := range s.Convert {
		from := f.Type()
		before := f.Rotations()
		f.SetType(treeType)
		log.Infof("convert: %s → %s  rotations: %d", from, treeType, f.Rotations()-before)

		if err := Verify(f); nil != err {
			return f, nil, err
		}
		err := reporter.Report(fmt.Sprintf("%s: after converting from %s to %s", s.Name, from, treeType), f)
		if nil != err {
			return f, nil, err
		}
	}

	result.Tree = f.Type().String()
	result.Rotations = f.Rotations()
	result.Ships = f.Dump()
	result.Height = -1
	if nil != f.Root() {
		result.Height = f.Root().Height()
	}
	return f, result, nil
}

// Verify - check the invariants that apply to the fleet's tree type
func Verify(f *fleet.Fleet) error {
	if !f.CheckOrder() || !f.CheckHeights() {
		return fault.ErrInvariantViolated
	}
	if fleet.AVL == f.Type() && !f.CheckBalance() {
		return fault.ErrInvariantViolated
	}
	if fleet.None == f.Type() && !f.IsEmpty() {
		return fault.ErrInvariantViolated
	}
	return nil
}
