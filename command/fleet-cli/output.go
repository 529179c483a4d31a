// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
)

// fleet summary for json output
type fleetSummary struct {
	Tree      string        `json:"tree"`
	Count     int           `json:"count"`
	Height    int           `json:"height"`
	Rotations uint64        `json:"rotations"`
	Ships     []fleet.Entry `json:"ships"`
}

// only the balancing tree types make sense for building
func checkTree(name string) (fleet.TreeType, error) {
	tree, err := fleet.ParseTreeType(name)
	if nil != err {
		return fleet.None, fmt.Errorf("tree: %q error: %s", name, err)
	}
	if fleet.None == tree {
		return fleet.None, fault.ErrNoTreeType
	}
	return tree, nil
}

// apply any conversions and write the fleet in the requested format
func finish(c *cli.Context, m *metadata, f *fleet.Fleet) error {

	for _, name := range c.StringSlice("convert") {
		tree, err := fleet.ParseTreeType(name)
		if nil != err {
			return fmt.Errorf("convert: %q error: %s", name, err)
		}
		f.SetType(tree)
		if m.verbose {
			fmt.Fprintf(m.e, "converted to: %s  rotations: %d\n", tree, f.Rotations())
		}
	}

	switch format := c.String("format"); format {
	case "dump":
		fmt.Fprintf(m.w, "%s\n", f)
	case "print":
		depth := f.Print(m.w)
		if m.verbose {
			fmt.Fprintf(m.e, "depth: %d\n", depth)
		}
	case "json":
		height := -1
		if nil != f.Root() {
			height = f.Root().Height()
		}
		return printJson(m.w, fleetSummary{
			Tree:      f.Type().String(),
			Count:     f.Count(),
			Height:    height,
			Rotations: f.Rotations(),
			Ships:     f.Dump(),
		})
	default:
		return fmt.Errorf("format: %q is not one of dump/print/json", format)
	}
	return nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
