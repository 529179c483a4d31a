// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
)

func run(t *testing.T, args ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"fleet-cli"}, args...))
	return w.String(), e.String(), err
}

func TestParseShip(t *testing.T) {
	a, err := parseShip("12345")
	assert.Nil(t, err, "plain id")
	assert.Equal(t, shipArgument{id: 12345, shipType: fleet.Cargo, state: fleet.Alive}, a, "plain id")

	a, err = parseShip("23456:telescope:lost")
	assert.Nil(t, err, "full ship")
	assert.Equal(t, shipArgument{id: 23456, shipType: fleet.Telescope, state: fleet.Lost}, a, "full ship")

	_, err = parseShip("abc")
	assert.NotNil(t, err, "bad id")

	_, err = parseShip("12345:rowboat")
	assert.NotNil(t, err, "bad type")

	_, err = parseShip("12345:cargo:sunk")
	assert.NotNil(t, err, "bad state")

	_, err = parseShip("1:2:3:4")
	assert.NotNil(t, err, "too many fields")
}

func TestBuildDump(t *testing.T) {
	out, _, err := run(t, "build", "--tree", "avl", "10001", "10002", "10003")
	assert.Nil(t, err, "build")
	assert.Equal(t, "((10001:0)10002:1(10003:0))\n", out, "dump")
}

func TestBuildRemoveAndConvert(t *testing.T) {
	out, _, err := run(t, "build", "-t", "bst", "-r", "10001", "-c", "avl", "10001", "10002", "10003", "10004")
	assert.Nil(t, err, "build")
	assert.Equal(t, "((10002:0)10003:1(10004:0))\n", out, "dump")
}

func TestBuildVerboseRejects(t *testing.T) {
	out, diag, err := run(t, "--verbose", "build", "-r", "20000", "10001", "10001", "5")
	assert.Nil(t, err, "build")
	assert.Equal(t, "(10001:0)\n", out, "dump")
	assert.Contains(t, diag, "insert: 10001  rejected: "+fault.ErrDuplicateIdentifier.Error(), "duplicate")
	assert.Contains(t, diag, "insert: 5  rejected: "+fault.ErrIdentifierOutOfRange.Error(), "range")
	assert.Contains(t, diag, "remove: 20000  rejected: "+fault.ErrShipNotFound.Error(), "absent")
}

func TestBuildFind(t *testing.T) {
	out, _, err := run(t, "build", "-t", "splay", "-l", "10001", "-l", "30000", "10001", "10002", "10003")
	assert.Nil(t, err, "build")
	assert.Equal(t, "found: 10001  type: CARGO  state: ALIVE  height: 2\nnot found: 30000\n(10001:2(10002:1(10003:0)))\n", out, "find then dump")
}

func TestBuildJSON(t *testing.T) {
	out, _, err := run(t, "build", "-t", "avl", "-f", "json", "10003", "10001", "10002")
	assert.Nil(t, err, "build")

	var summary fleetSummary
	err = json.Unmarshal([]byte(out), &summary)
	assert.Nil(t, err, "json")
	assert.Equal(t, "avl", summary.Tree, "tree")
	assert.Equal(t, 3, summary.Count, "count")
	assert.Equal(t, 1, summary.Height, "height")
	assert.Equal(t, uint64(2), summary.Rotations, "rotations")
	assert.Equal(t, []fleet.Entry{{ID: 10001, Height: 0}, {ID: 10002, Height: 1}, {ID: 10003, Height: 0}}, summary.Ships, "ships")
}

func TestBuildErrors(t *testing.T) {
	_, _, err := run(t, "build", "-t", "avl")
	assert.NotNil(t, err, "no ships")

	_, _, err = run(t, "build", "-t", "heap", "10001")
	assert.NotNil(t, err, "bad tree")

	_, _, err = run(t, "build", "-t", "none", "10001")
	assert.Equal(t, fault.ErrNoTreeType, err, "none tree")

	_, _, err = run(t, "build", "-f", "xml", "10001")
	assert.NotNil(t, err, "bad format")

	_, _, err = run(t, "build", "-c", "heap", "10001")
	assert.NotNil(t, err, "bad conversion")
}

func TestRandom(t *testing.T) {
	out1, _, err := run(t, "random", "-t", "avl", "-n", "25", "-s", "10")
	assert.Nil(t, err, "random")
	out2, _, err := run(t, "random", "-t", "avl", "-n", "25", "-s", "10")
	assert.Nil(t, err, "random")
	assert.Equal(t, out1, out2, "same seed gives same fleet")

	_, _, err = run(t, "random", "-n", "-1")
	assert.NotNil(t, err, "negative count")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "version")
}
