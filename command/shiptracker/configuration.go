// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/jaguarX024/Ship-Tracker/configuration"
	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
	"github.com/jaguarX024/Ship-Tracker/generator"
	"github.com/jaguarX024/Ship-Tracker/scenario"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "shiptracker.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// ScenarioType - one run as written in the configuration file
type ScenarioType struct {
	Name    string   `gluamapper:"name" json:"name"`
	Tree    string   `gluamapper:"tree" json:"tree"`
	Ships   int      `gluamapper:"ships" json:"ships"`
	Remove  int      `gluamapper:"remove" json:"remove"`
	Convert []string `gluamapper:"convert" json:"convert"`
}

// Configuration - contents of the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Scenarios     []ScenarioType       `gluamapper:"scenarios" json:"scenarios"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the runs from the reference demonstration
var defaultScenarios = []ScenarioType{
	{Name: "bst", Tree: "bst", Ships: 10, Remove: 1, Convert: []string{"avl"}},
	{Name: "avl", Tree: "avl", Ships: 15},
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Seed:          generator.DefaultSeed,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	if 0 == len(options.Scenarios) {
		options.Scenarios = defaultScenarios
	}

	// reject bad scenarios before anything runs
	for _, s := range options.Scenarios {
		if _, err := s.scenario(); nil != err {
			return nil, fmt.Errorf("scenario: %q error: %s", s.Name, err)
		}
	}

	return options, nil
}

// convert to the runnable form
func (s ScenarioType) scenario() (scenario.Scenario, error) {
	tree, err := fleet.ParseTreeType(s.Tree)
	if nil != err {
		return scenario.Scenario{}, err
	}
	if fleet.None == tree {
		return scenario.Scenario{}, fault.ErrNoTreeType
	}
	if s.Ships < 0 || s.Remove < 0 {
		return scenario.Scenario{}, fault.ErrInvalidCount
	}

	convert := make([]fleet.TreeType, 0, len(s.Convert))
	for _, c := range s.Convert {
		t, err := fleet.ParseTreeType(c)
		if nil != err {
			return scenario.Scenario{}, err
		}
		convert = append(convert, t)
	}

	return scenario.Scenario{
		Name:    s.Name,
		Tree:    tree,
		Ships:   s.Ships,
		Remove:  s.Remove,
		Convert: convert,
	}, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
