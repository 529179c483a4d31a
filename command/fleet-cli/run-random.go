// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jaguarX024/Ship-Tracker/fleet"
	"github.com/jaguarX024/Ship-Tracker/scenario"
)

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := checkTree(c.String("tree"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("count: %d must not be negative", count)
	}

	source, err := scenario.NewSource(c.Int64("seed"))
	if nil != err {
		return err
	}

	f := fleet.New(tree)
	for i := 0; i < count; i += 1 {
		id := source.IDs.Int()
		shipType := fleet.ShipType(source.Types.Int())
		if err := f.Insert(id, shipType, fleet.DefaultState); nil != err && m.verbose {
			fmt.Fprintf(m.e, "insert: %d  rejected: %s\n", id, err)
		}
	}

	return finish(c, m, f)
}
