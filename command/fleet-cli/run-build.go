// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/jaguarX024/Ship-Tracker/fleet"
)

// one ship from the command line
type shipArgument struct {
	id       int
	shipType fleet.ShipType
	state    fleet.State
}

// parse ID[:TYPE[:STATE]]
func parseShip(s string) (shipArgument, error) {
	a := shipArgument{
		shipType: fleet.DefaultType,
		state:    fleet.DefaultState,
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return a, fmt.Errorf("ship: %q has too many fields", s)
	}

	id, err := strconv.Atoi(parts[0])
	if nil != err {
		return a, fmt.Errorf("ship: %q invalid identifier: %s", s, err)
	}
	a.id = id

	if len(parts) > 1 {
		a.shipType, err = fleet.ParseShipType(parts[1])
		if nil != err {
			return a, fmt.Errorf("ship: %q error: %s", s, err)
		}
	}
	if len(parts) > 2 {
		a.state, err = fleet.ParseState(parts[2])
		if nil != err {
			return a, fmt.Errorf("ship: %q error: %s", s, err)
		}
	}
	return a, nil
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := checkTree(c.String("tree"))
	if nil != err {
		return err
	}

	if 0 == len(c.Args()) {
		return fmt.Errorf("no ships given")
	}

	ships := make([]shipArgument, 0, len(c.Args()))
	for _, s := range c.Args() {
		a, err := parseShip(s)
		if nil != err {
			return err
		}
		ships = append(ships, a)
	}

	f := fleet.New(tree)
	for _, a := range ships {
		if err := f.Insert(a.id, a.shipType, a.state); nil != err && m.verbose {
			fmt.Fprintf(m.e, "insert: %d  rejected: %s\n", a.id, err)
		}
	}

	for _, id := range c.IntSlice("remove") {
		if err := f.Remove(id); nil != err && m.verbose {
			fmt.Fprintf(m.e, "remove: %d  rejected: %s\n", id, err)
		}
	}

	for _, id := range c.IntSlice("find") {
		if p := f.Find(id); nil != p {
			fmt.Fprintf(m.w, "found: %d  type: %s  state: %s  height: %d\n", p.ID(), p.Type(), p.State(), p.Height())
		} else {
			fmt.Fprintf(m.w, "not found: %d\n", id)
		}
	}

	return finish(c, m, f)
}
