// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
	"github.com/jaguarX024/Ship-Tracker/generator"
	"github.com/jaguarX024/Ship-Tracker/scenario"
	"github.com/jaguarX024/Ship-Tracker/scenario/mocks"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestRunReportsEachStep(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	gomock.InOrder(
		r.EXPECT().Report(gomock.Eq("bst: after inserting 10 ships"), gomock.Any()).Return(nil),
		r.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil),
		r.EXPECT().Report(gomock.Eq("bst: after converting from bst to avl"), gomock.Any()).Return(nil),
	)

	source, err := scenario.NewSource(generator.DefaultSeed)
	assert.Nil(t, err, "source")

	s := scenario.Scenario{
		Name:    "bst",
		Tree:    fleet.BST,
		Ships:   10,
		Remove:  1,
		Convert: []fleet.TreeType{fleet.AVL},
	}
	f, result, err := scenario.Run(logger.New(category), source, r, s)
	assert.Nil(t, err, "run")

	assert.Equal(t, 10, result.Inserted+result.Rejected, "insert attempts")
	assert.Equal(t, 1, result.Removed, "removed")
	assert.Equal(t, result.Inserted-1, len(result.Ships), "remaining ships")
	assert.Equal(t, "avl", result.Tree, "final tree")
	assert.Equal(t, fleet.AVL, f.Type(), "fleet type")
	assert.True(t, f.CheckBalance(), "balance")
	assert.Equal(t, f.Root().Height(), result.Height, "height")
}

func TestRunNoRemoveNoConvert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	source, _ := scenario.NewSource(generator.DefaultSeed)
	s := scenario.Scenario{
		Name:  "avl",
		Tree:  fleet.AVL,
		Ships: 15,
	}
	_, result, err := scenario.Run(logger.New(category), source, r, s)
	assert.Nil(t, err, "run")
	assert.Equal(t, 0, result.Removed, "removed")
	assert.Equal(t, result.Inserted, len(result.Ships), "ships")
}

func TestRunReporterError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failed := errors.New("sink closed")
	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Report(gomock.Any(), gomock.Any()).Return(failed).Times(1)

	source, _ := scenario.NewSource(generator.DefaultSeed)
	s := scenario.Scenario{
		Name:   "splay",
		Tree:   fleet.Splay,
		Ships:  5,
		Remove: 2,
	}
	_, result, err := scenario.Run(logger.New(category), source, r, s)
	assert.Equal(t, failed, err, "reporter error not returned")
	assert.Nil(t, result, "result on error")
}

func TestRunNegativeCount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	source, _ := scenario.NewSource(generator.DefaultSeed)
	_, _, err := scenario.Run(logger.New(category), source, r, scenario.Scenario{Ships: -1})
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")
}

func TestRunConvertToNone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	source, _ := scenario.NewSource(3)
	s := scenario.Scenario{
		Name:    "clear",
		Tree:    fleet.Splay,
		Ships:   20,
		Convert: []fleet.TreeType{fleet.None},
	}
	f, result, err := scenario.Run(logger.New(category), source, r, s)
	assert.Nil(t, err, "run")
	assert.True(t, f.IsEmpty(), "not cleared")
	assert.Equal(t, -1, result.Height, "height of empty fleet")
	assert.Equal(t, 0, len(result.Ships), "ships")
}

func TestConsoleReporter(t *testing.T) {
	f := fleet.New(fleet.BST)
	f.Insert(50000, fleet.Cargo, fleet.Alive)
	f.Insert(40000, fleet.Cargo, fleet.Alive)

	var b bytes.Buffer
	err := scenario.NewConsoleReporter(&b).Report("title", f)
	assert.Nil(t, err, "report")
	assert.Equal(t, "\ntitle:\n\n((40000:0)50000:1)\n", b.String(), "output")
}

func TestLogReporter(t *testing.T) {
	f := fleet.New(fleet.AVL)
	f.Insert(50000, fleet.Cargo, fleet.Alive)

	err := scenario.NewLogReporter(logger.New(category)).Report("log", f)
	assert.Nil(t, err, "report")
}

func TestVerify(t *testing.T) {
	f := fleet.New(fleet.BST)
	for id := 10001; id < 10020; id += 1 {
		f.Insert(id, fleet.Cargo, fleet.Alive)
	}
	assert.Nil(t, scenario.Verify(f), "valid BST")
	assert.True(t, strings.HasPrefix(f.String(), "(10001:18"), "list shaped")
}
